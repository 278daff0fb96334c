package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
	"github.com/ersonp/assetids/internal/domain/services"
)

var (
	// ErrNoRun is returned when no run has been stored for the game.
	ErrNoRun = errors.New("no stored run (run 'assetids generate' first)")
	// ErrAreaNotFound is returned when a world has no area of the given name.
	ErrAreaNotFound = errors.New("area not found")
)

// AreaInfo describes one area of a world's dedicated table.
type AreaInfo struct {
	World  string               `json:"world" yaml:"world"`
	Area   string               `json:"area" yaml:"area"`
	Symbol string               `json:"symbol" yaml:"symbol"`
	ID     entities.AssetID     `json:"id" yaml:"id"`
	MapID  entities.AssetID     `json:"map_id" yaml:"map_id"`
	Docks  []entities.DockEntry `json:"docks" yaml:"docks"`
}

// LookupHandler answers queries over the stored tables of one game. World
// tables are loaded from the store on first access and cached.
type LookupHandler struct {
	game  entities.Game
	store ports.TableStore

	mu       sync.Mutex
	global   *entities.GlobalModule
	registry *services.WorldRegistry
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(game entities.Game, store ports.TableStore) *LookupHandler {
	return &LookupHandler{
		game:  game,
		store: store,
	}
}

// Game returns the title the handler serves.
func (h *LookupHandler) Game() entities.Game {
	return h.game
}

// load reads the global table and registers a lazy factory per world.
func (h *LookupHandler) load(ctx context.Context) (*entities.GlobalModule, *services.WorldRegistry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.registry != nil {
		return h.global, h.registry, nil
	}

	global, err := h.store.LoadGlobal(ctx, h.game)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s tables: %w", h.game, err)
	}
	if global == nil {
		return nil, nil, fmt.Errorf("%s: %w", h.game, ErrNoRun)
	}

	registry := services.NewWorldRegistry()
	for _, d := range global.Dedicated {
		worldName := d.WorldName
		registry.Register(worldName, d.Module, func(ctx context.Context) (*entities.WorldModule, error) {
			return h.store.LoadWorld(ctx, h.game, worldName)
		})
	}

	h.global = global
	h.registry = registry
	return global, registry, nil
}

// Worlds returns the global table.
func (h *LookupHandler) Worlds(ctx context.Context) (*entities.GlobalModule, error) {
	global, _, err := h.load(ctx)
	return global, err
}

// World returns the dedicated table of a world.
func (h *LookupHandler) World(ctx context.Context, worldName string) (*entities.WorldModule, error) {
	_, registry, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	return registry.Load(ctx, worldName)
}

// Area returns the identifiers and docks of one area.
func (h *LookupHandler) Area(ctx context.Context, worldName, areaName string) (*AreaInfo, error) {
	world, err := h.World(ctx, worldName)
	if err != nil {
		return nil, err
	}

	info := &AreaInfo{World: world.WorldName, Area: areaName, Docks: []entities.DockEntry{}}
	found := false
	for i, n := range world.Areas.Names {
		if n.Name == areaName {
			info.ID = n.ID
			info.Symbol = world.Areas.Constants[i].Symbol
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("world %q area %q: %w", worldName, areaName, ErrAreaNotFound)
	}
	for _, n := range world.Maps.Names {
		if n.Name == areaName {
			info.MapID = n.ID
			break
		}
	}
	for _, a := range world.Docks {
		if a.Area == areaName {
			info.Docks = append(info.Docks, a.Docks...)
			break
		}
	}
	return info, nil
}
