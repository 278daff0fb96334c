package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
)

var spewConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

func newInspectCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "inspect ID",
		Short: "Dump a decoded asset of the asset graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], source)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Asset graph dump (defaults to the configured source)")

	return cmd
}

func runInspect(cmd *cobra.Command, rawID, source string) error {
	id, err := entities.ParseAssetID(rawID)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		graph, err := d.loadGraph(source)
		if err != nil {
			return err
		}

		kind, payload, err := graph.Asset(id)
		if errors.Is(err, ports.ErrUnknownAsset) {
			return err
		}
		printAsset(cmd.OutOrStdout(), id, kind, payload, err)
		return nil
	})
}

// printAsset writes the kind and decoded payload of an asset. A decode
// error is shown in place of the payload.
func printAsset(w io.Writer, id entities.AssetID, kind entities.AssetKind, payload any, decodeErr error) {
	fmt.Fprintf(w, "Asset: %s\n", id)
	fmt.Fprintf(w, "Kind:  %s\n", kind)

	switch {
	case decodeErr != nil:
		fmt.Fprintf(w, "Error: %v\n", decodeErr)
	case payload == nil:
		fmt.Fprintln(w, "(no payload)")
	default:
		fmt.Fprint(w, spewConfig.Sdump(payload))
	}
}
