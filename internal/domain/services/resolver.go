package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
)

// NameResolver resolves display names of worlds and areas.
type NameResolver struct {
	graph     ports.AssetGraph
	overrides entities.TitleOverrides
}

// NewNameResolver creates a resolver over graph. The override tables are
// copied and never modified afterwards.
func NewNameResolver(graph ports.AssetGraph, overrides entities.TitleOverrides) *NameResolver {
	return &NameResolver{
		graph:     graph,
		overrides: overrides.Clone(),
	}
}

// ResolveWorldName returns the display name of a world: its string table
// first, then the manual world override. Returns ErrWorldNameUnresolved when
// neither names the world.
func (r *NameResolver) ResolveWorldName(ctx context.Context, world *entities.World) (string, error) {
	name, err := r.graph.String(ctx, world.NameID)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, ports.ErrUnknownAsset) {
		return "", fmt.Errorf("reading name of world %s: %w", world.ID, err)
	}

	if custom, ok := r.overrides.Worlds[world.ID]; ok {
		return custom, nil
	}
	return "", fmt.Errorf("world %s: no name found: %w", world.ID, ErrWorldNameUnresolved)
}

// ResolveAreaName returns the display name of an area. A manual override
// keyed by the area's ID wins; otherwise the string table is used, falling
// back to the internal name.
func (r *NameResolver) ResolveAreaName(ctx context.Context, area entities.AreaEntry) (string, error) {
	if custom, ok := r.overrides.Areas[area.ID]; ok {
		return custom, nil
	}

	name, err := r.graph.String(ctx, area.NameID)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, ports.ErrUnknownAsset) {
		return "", fmt.Errorf("reading name of area %s: %w", area.ID, err)
	}
	return area.InternalName, nil
}
