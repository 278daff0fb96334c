package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/assetids/internal/application/handlers"
	"github.com/ersonp/assetids/internal/domain/entities"
)

func newWorldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worlds",
		Short: "List the worlds of the stored global table",
		Args:  cobra.NoArgs,
		RunE:  runWorlds,
	}
}

func runWorlds(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withLookupHandler(ctx, func(d *Deps, h *handlers.LookupHandler) error {
		global, err := h.Worlds(ctx)
		if err != nil {
			return err
		}
		printWorlds(cmd.OutOrStdout(), global)
		return nil
	})
}

// printWorlds writes one row per world of the global table.
func printWorlds(w io.Writer, global *entities.GlobalModule) {
	if len(global.Worlds.Names) == 0 {
		fmt.Fprintln(w, "No worlds stored.")
		return
	}

	maps := make(map[string]entities.AssetID, len(global.Maps.Names))
	for _, n := range global.Maps.Names {
		maps[n.Name] = n.ID
	}
	modules := make(map[string]string, len(global.Dedicated))
	for _, d := range global.Dedicated {
		modules[d.WorldName] = d.Module
	}

	fmt.Fprintf(w, "%-30s %-30s %-12s %s\n", "NAME", "MODULE", "WORLD", "MAP")
	fmt.Fprintf(w, "%-30s %-30s %-12s %s\n", "----", "------", "-----", "---")

	for _, n := range global.Worlds.Names {
		mapID := "-"
		if id, ok := maps[n.Name]; ok {
			mapID = id.String()
		}
		fmt.Fprintf(w, "%-30s %-30s %-12s %s\n", n.Name, modules[n.Name], n.ID, mapID)
	}
}
