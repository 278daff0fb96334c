package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/assetids/internal/application/handlers"
	"github.com/ersonp/assetids/internal/infrastructure/codegen"
	"github.com/ersonp/assetids/internal/infrastructure/config"
)

type generateFlags struct {
	source  string
	output  string
	format  string
	dryRun  bool
	noStore bool
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Extract identifier tables and write them as source files",
		Long: `Walks every world of the asset graph, resolves display names, builds the
dock tables and writes one global table plus one dedicated table per world.
Worlds that fail are reported and the command exits non-zero; the remaining
worlds are still written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.source, "source", "s", "", "Asset graph dump (defaults to the configured source)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output directory (defaults to the configured output dir)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", fmt.Sprintf("Output format: %s", strings.Join(codegen.Formats(), ", ")))
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Extract and report without writing files or storing the run")
	cmd.Flags().BoolVar(&flags.noStore, "no-store", false, "Write files without storing the run")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	ctx := cmd.Context()

	return withGenerateHandler(ctx, flags, func(d *Deps, h *handlers.GenerateHandler) error {
		outputDir := flags.output
		if outputDir == "" {
			outputDir = d.Config.Output.Dir
		}

		result, err := h.Handle(ctx, handlers.GenerateOptions{
			OutputDir: config.Resolve(d.BasePath, outputDir),
			DryRun:    flags.dryRun,
		})
		if err != nil {
			return err
		}

		printGenerateResult(cmd.OutOrStdout(), result)

		if result.Failed() {
			return fmt.Errorf("%d of %d worlds failed", len(result.Failures), len(result.Failures)+len(result.Output.Worlds))
		}
		return nil
	})
}

// printGenerateResult writes a human-readable summary of a run.
func printGenerateResult(w io.Writer, result *handlers.GenerateResult) {
	out := result.Output
	fmt.Fprintf(w, "Extracted %d worlds for %s\n", len(out.Worlds), out.Game)

	for _, world := range out.Worlds {
		fmt.Fprintf(w, "  %-30s %-30s %4d areas\n", world.WorldName, world.Module, len(world.Areas.Names))
	}

	for _, s := range result.Skipped {
		fmt.Fprintf(w, "Skipped world %s: %s\n", s.WorldID, s.Reason)
	}
	for _, f := range result.Failures {
		name := f.WorldName
		if name == "" {
			name = "?"
		}
		fmt.Fprintf(w, "FAILED world %s (%s): %v\n", f.WorldID, name, f.Err)
	}

	if len(result.Files) > 0 {
		fmt.Fprintf(w, "Wrote %d files\n", len(result.Files))
	}
	if result.Run != nil {
		fmt.Fprintf(w, "Stored run %s\n", result.Run.ID)
	}
}
