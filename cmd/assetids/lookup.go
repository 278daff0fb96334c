package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/assetids/internal/application/handlers"
	"github.com/ersonp/assetids/internal/domain/entities"
)

func newLookupCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lookup WORLD [AREA]",
		Short: "Show the stored table of a world or one of its areas",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", fmt.Sprintf("Output format: %s", strings.Join(validLookupFormats, ", ")))

	return cmd
}

func runLookup(cmd *cobra.Command, args []string, format string) error {
	if !slices.Contains(validLookupFormats, format) {
		return fmt.Errorf("invalid format %q (valid: %s)", format, strings.Join(validLookupFormats, ", "))
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withLookupHandler(ctx, func(d *Deps, h *handlers.LookupHandler) error {
		if len(args) == 2 {
			info, err := h.Area(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if format == "text" {
				printArea(out, info)
				return nil
			}
			return encode(out, format, info)
		}

		world, err := h.World(ctx, args[0])
		if err != nil {
			return err
		}
		if format == "text" {
			printWorld(out, world)
			return nil
		}
		return encode(out, format, world)
	})
}

// encode writes v as YAML or indented JSON.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// printWorld writes one row per area of a world's dedicated table.
func printWorld(w io.Writer, world *entities.WorldModule) {
	fmt.Fprintf(w, "World: %s (module %s)\n\n", world.WorldName, world.Module)

	maps := make(map[string]entities.AssetID, len(world.Maps.Names))
	for _, n := range world.Maps.Names {
		maps[n.Name] = n.ID
	}
	docks := make(map[string]int, len(world.Docks))
	for _, a := range world.Docks {
		docks[a.Area] = len(a.Docks)
	}

	fmt.Fprintf(w, "%-40s %-12s %-12s %s\n", "AREA", "ID", "MAP", "DOCKS")
	fmt.Fprintf(w, "%-40s %-12s %-12s %s\n", "----", "--", "---", "-----")
	for _, n := range world.Areas.Names {
		mapID := "-"
		if id, ok := maps[n.Name]; ok {
			mapID = id.String()
		}
		fmt.Fprintf(w, "%-40s %-12s %-12s %d\n", n.Name, n.ID, mapID, docks[n.Name])
	}
}

// printArea writes the identifiers and dock numbers of one area.
func printArea(w io.Writer, info *handlers.AreaInfo) {
	fmt.Fprintf(w, "World:  %s\n", info.World)
	fmt.Fprintf(w, "Area:   %s\n", info.Area)
	fmt.Fprintf(w, "Symbol: %s\n", info.Symbol)
	fmt.Fprintf(w, "ID:     %s\n", info.ID)
	fmt.Fprintf(w, "Map:    %s\n", info.MapID)

	if len(info.Docks) == 0 {
		fmt.Fprintln(w, "Docks:  none")
		return
	}
	fmt.Fprintln(w, "Docks:")
	for _, d := range info.Docks {
		fmt.Fprintf(w, "  %2d  %s\n", d.Number, d.Name)
	}
}
