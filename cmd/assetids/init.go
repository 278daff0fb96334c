package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize an assetids workspace",
		Long:  "Creates a .assetids directory with a default configuration for the selected game.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	if config.Exists(base) {
		return fmt.Errorf("assetids already initialized in %s", base)
	}

	game := config.Default().Game
	if globalGame != "" {
		parsed, err := entities.ParseGame(globalGame)
		if err != nil {
			return err
		}
		game = string(parsed)
	}

	if err := config.WriteDefault(base, game); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", config.ConfigFilePath(base))
	fmt.Fprintf(out, "Point 'source' at a decoded asset dump, then run 'assetids generate'.\n")
	return nil
}
