package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
	"github.com/ersonp/assetids/internal/domain/services"
)

// GenerateHandler runs a full extraction: extract, emit, write and store.
type GenerateHandler struct {
	extractionService *services.ExtractionService
	emitter           *services.TableEmitter
	writer            ports.TableWriter
	store             ports.TableStore
}

// NewGenerateHandler creates a new generate handler. writer and store may
// be nil to skip writing files or persisting the run.
func NewGenerateHandler(extractionService *services.ExtractionService, emitter *services.TableEmitter, writer ports.TableWriter, store ports.TableStore) *GenerateHandler {
	return &GenerateHandler{
		extractionService: extractionService,
		emitter:           emitter,
		writer:            writer,
		store:             store,
	}
}

// GenerateOptions controls generation behavior.
type GenerateOptions struct {
	OutputDir string
	DryRun    bool // Extract and emit only; write and store nothing
}

// GenerateResult contains the result of a generation run.
type GenerateResult struct {
	Output   *entities.Output
	Files    []string
	Run      *ports.StoredRun
	Skipped  []entities.SkippedWorld
	Failures []entities.WorldFailure
}

// Failed reports whether any world failed to extract.
func (r *GenerateResult) Failed() bool {
	return len(r.Failures) > 0
}

// Handle runs the pipeline. Worlds that fail are reported in the result;
// the remaining worlds are still written and stored.
func (h *GenerateHandler) Handle(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	extracted, err := h.extractionService.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extracting tables: %w", err)
	}

	output, err := h.emitter.Emit(extracted)
	if err != nil {
		return nil, fmt.Errorf("emitting tables: %w", err)
	}

	result := &GenerateResult{
		Output:   output,
		Skipped:  extracted.Skipped,
		Failures: extracted.Failures,
	}
	if opts.DryRun {
		return result, nil
	}

	if h.writer != nil {
		files, err := h.writer.Write(opts.OutputDir, output)
		if err != nil {
			return nil, fmt.Errorf("writing %s tables: %w", h.writer.Format(), err)
		}
		result.Files = files
	}

	if h.store != nil {
		run, err := h.store.SaveRun(ctx, output)
		if err != nil {
			return nil, fmt.Errorf("storing run: %w", err)
		}
		result.Run = run
	}

	return result, nil
}
