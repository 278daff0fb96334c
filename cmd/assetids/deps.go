package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/assetids/internal/application/handlers"
	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
	"github.com/ersonp/assetids/internal/domain/services"
	"github.com/ersonp/assetids/internal/infrastructure/assetgraph/dump"
	"github.com/ersonp/assetids/internal/infrastructure/codegen"
	"github.com/ersonp/assetids/internal/infrastructure/config"
	"github.com/ersonp/assetids/internal/infrastructure/logging"
	"github.com/ersonp/assetids/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds the settings shared by every command.
type Deps struct {
	Config   *config.Config
	BasePath string
	Game     entities.Game
	Logger   *zap.Logger
}

// basePath returns the directory holding .assetids.
func basePath() (string, error) {
	if globalConfigDir != "" {
		return globalConfigDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// withDeps loads config, resolves the game and builds the logger, then
// calls the provided function.
func withDeps(fn func(*Deps) error) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	gameName := cfg.Game
	if globalGame != "" {
		gameName = globalGame
	}
	game, err := entities.ParseGame(gameName)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return fn(&Deps{
		Config:   cfg,
		BasePath: base,
		Game:     game,
		Logger:   logger,
	})
}

// loadGraph loads the asset graph dump, falling back to the configured
// source when source is empty.
func (d *Deps) loadGraph(source string) (*dump.Graph, error) {
	if source == "" {
		source = d.Config.Source
	}
	path := config.Resolve(d.BasePath, source)

	graph, err := dump.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading asset graph: %w", err)
	}
	if graph.Game() != "" && graph.Game() != string(d.Game) {
		d.Logger.Warn("asset graph names a different game",
			zap.String("path", path),
			zap.String("dump_game", graph.Game()),
			zap.String("game", string(d.Game)))
	}
	d.Logger.Debug("loaded asset graph", zap.String("path", path), zap.Int("assets", graph.Len()))
	return graph, nil
}

// openStore opens the table store and ensures its schema.
func (d *Deps) openStore(ctx context.Context) (*sqlite.Repository, error) {
	repo, err := sqlite.NewRepository(config.StoreConfig{
		Path: config.Resolve(d.BasePath, d.Config.Store.Path),
	})
	if err != nil {
		return nil, fmt.Errorf("creating sqlite repository: %w", err)
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("ensuring sqlite schema: %w", err)
	}
	return repo, nil
}

// withLookupHandler provides a LookupHandler backed by the table store.
func withLookupHandler(ctx context.Context, fn func(*Deps, *handlers.LookupHandler) error) error {
	return withDeps(func(d *Deps) error {
		repo, err := d.openStore(ctx)
		if err != nil {
			return err
		}
		defer repo.Close()

		return fn(d, handlers.NewLookupHandler(d.Game, repo))
	})
}

// withGenerateHandler builds the full extraction pipeline for generate.
func withGenerateHandler(ctx context.Context, flags generateFlags, fn func(*Deps, *handlers.GenerateHandler) error) error {
	return withDeps(func(d *Deps) error {
		graph, err := d.loadGraph(flags.source)
		if err != nil {
			return err
		}

		overrides, err := config.OverridesFor(d.BasePath, d.Config, d.Game)
		if err != nil {
			return fmt.Errorf("loading overrides: %w", err)
		}

		format := flags.format
		if format == "" {
			format = d.Config.Output.Format
		}
		writer, err := codegen.ForFormat(format)
		if err != nil {
			return err
		}

		var store ports.TableStore
		if !flags.noStore && !flags.dryRun {
			repo, err := d.openStore(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()
			store = repo
		}

		extractionService := services.NewExtractionService(d.Game, graph, overrides, d.Logger)
		handler := handlers.NewGenerateHandler(extractionService, services.NewTableEmitter(), writer, store)
		return fn(d, handler)
	})
}
