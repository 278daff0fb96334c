// Package main provides the entry point for the assetids CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version         = "0.1.0-dev"
	globalGame      string
	globalConfigDir string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "assetids",
		Short:         "Generate world, area and dock identifier tables from a game asset graph",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalGame, "game", "g", "", "Game to operate on (defaults to the configured game)")
	rootCmd.PersistentFlags().StringVar(&globalConfigDir, "config-dir", "", "Directory holding .assetids (defaults to the current directory)")

	rootCmd.AddCommand(
		newInitCmd(),
		newGenerateCmd(),
		newWorldsCmd(),
		newLookupCmd(),
		newInspectCmd(),
		newProfilesCmd(),
		newServeCmd(),
	)

	return rootCmd
}
