// Package services contains domain business logic.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
)

// DuplicateSuffix is appended to a name that is already taken in its table.
const DuplicateSuffix = "_2"

// ExtractionService walks an asset graph and builds the naming tables of
// every world it contains.
type ExtractionService struct {
	game     entities.Game
	graph    ports.AssetGraph
	resolver *NameResolver
	docks    *DockTableBuilder
	log      *zap.Logger
}

// NewExtractionService creates a new extraction service for one title.
func NewExtractionService(game entities.Game, graph ports.AssetGraph, overrides entities.TitleOverrides, log *zap.Logger) *ExtractionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExtractionService{
		game:     game,
		graph:    graph,
		resolver: NewNameResolver(graph, overrides),
		docks:    NewDockTableBuilder(graph),
		log:      log,
	}
}

// Extract runs the pipeline over every world descriptor of the graph.
//
// Worlds without a resolvable name are skipped. A world whose areas violate
// a structural invariant is recorded as a failure and left out of the
// tables; the remaining worlds still complete. Only errors enumerating the
// graph, or cancellation, abort the run.
func (s *ExtractionService) Extract(ctx context.Context) (*entities.ExtractionResult, error) {
	ids, err := s.graph.AssetIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	result := &entities.ExtractionResult{
		Game:  s.game,
		Index: entities.NewGlobalIndex(),
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		kind, err := s.graph.AssetKind(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("reading kind of asset %s: %w", id, err)
		}
		if kind.Normalize() != entities.KindWorld {
			continue
		}

		tables, err := s.extractWorld(ctx, id, result.Index)
		switch {
		case errors.Is(err, ErrWorldNameUnresolved):
			s.log.Warn("skipping world: no name found", zap.Stringer("id", id))
			result.Skipped = append(result.Skipped, entities.SkippedWorld{WorldID: id, Reason: err.Error()})
		case err != nil:
			name := ""
			if tables != nil {
				name = tables.WorldName
			}
			s.log.Error("world failed", zap.Stringer("id", id), zap.String("world", name), zap.Error(err))
			result.Failures = append(result.Failures, entities.WorldFailure{WorldID: id, WorldName: name, Err: err})
		default:
			s.log.Debug("world extracted",
				zap.Stringer("id", id),
				zap.String("world", tables.WorldName),
				zap.Int("areas", len(tables.Areas)))
			result.Worlds = append(result.Worlds, tables)
		}
	}

	return result, nil
}

// extractWorld builds the tables of one world and registers it in index.
// On failure after the name is known, the partial tables are returned so the
// caller can name the world in diagnostics.
func (s *ExtractionService) extractWorld(ctx context.Context, id entities.AssetID, index *entities.GlobalIndex) (*entities.WorldTables, error) {
	world, err := s.graph.World(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("decoding world %s: %w", id, err)
	}

	worldName, err := s.resolver.ResolveWorldName(ctx, world)
	if err != nil {
		return nil, err
	}

	worldName, err = uniqueName(index.Worlds, worldName)
	if err != nil {
		tables := entities.NewWorldTables(id, worldName)
		return tables, &StructuralError{WorldID: id, World: worldName, Reason: err.Error()}
	}

	tables := entities.NewWorldTables(id, worldName)
	for _, area := range world.Areas {
		if err := s.extractArea(ctx, tables, area); err != nil {
			return tables, err
		}
	}

	index.Worlds[worldName] = id
	index.Maps[worldName] = world.WorldMapID
	return tables, nil
}

// extractArea resolves one area's name and docks into tables.
func (s *ExtractionService) extractArea(ctx context.Context, tables *entities.WorldTables, area entities.AreaEntry) error {
	name, err := s.resolver.ResolveAreaName(ctx, area)
	if err != nil {
		return err
	}

	name, err = uniqueName(tables.Areas, name)
	if err != nil {
		return &StructuralError{
			WorldID: tables.WorldID,
			World:   tables.WorldName,
			AreaID:  area.ID,
			Area:    name,
			Reason:  err.Error(),
		}
	}

	docks, err := s.docks.Build(ctx, area)
	if err != nil {
		var structural *StructuralError
		if errors.As(err, &structural) {
			structural.WorldID = tables.WorldID
			structural.World = tables.WorldName
			structural.Area = name
		}
		return err
	}

	tables.Areas[name] = area.ID
	tables.Maps[name] = area.MapID
	tables.Docks[name] = docks
	return nil
}

// uniqueName returns name, or name with DuplicateSuffix when name is taken.
// It fails when the suffixed name is taken as well.
func uniqueName(taken entities.NameTable, name string) (string, error) {
	if _, exists := taken[name]; !exists {
		return name, nil
	}
	candidate := name + DuplicateSuffix
	if _, exists := taken[candidate]; exists {
		return name, fmt.Errorf("name %q collides even after renaming to %q", name, candidate)
	}
	return candidate, nil
}
