// Package mocks provides in-memory implementations of the domain ports for tests.
package mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
)

// AssetGraph is a mock implementation of ports.AssetGraph.
type AssetGraph struct {
	Kinds   map[entities.AssetID]entities.AssetKind
	Worlds  map[entities.AssetID]*entities.World
	Areas   map[entities.AssetID]*entities.Area
	Strings map[entities.AssetID]string
	Err     error
}

// NewAssetGraph creates a new empty mock AssetGraph.
func NewAssetGraph() *AssetGraph {
	return &AssetGraph{
		Kinds:   make(map[entities.AssetID]entities.AssetKind),
		Worlds:  make(map[entities.AssetID]*entities.World),
		Areas:   make(map[entities.AssetID]*entities.Area),
		Strings: make(map[entities.AssetID]string),
	}
}

// AddWorld registers a world descriptor.
func (m *AssetGraph) AddWorld(w *entities.World) {
	m.Kinds[w.ID] = entities.KindWorld
	m.Worlds[w.ID] = w
}

// AddArea registers an area payload.
func (m *AssetGraph) AddArea(a *entities.Area) {
	m.Kinds[a.ID] = entities.KindArea
	m.Areas[a.ID] = a
}

// AddString registers a string table with a single primary string.
func (m *AssetGraph) AddString(id entities.AssetID, s string) {
	m.Kinds[id] = entities.KindStringTable
	m.Strings[id] = s
}

// AddAsset registers an asset of an arbitrary kind with no payload.
func (m *AssetGraph) AddAsset(id entities.AssetID, kind entities.AssetKind) {
	m.Kinds[id] = kind
}

// AssetIDs returns every registered identifier in ascending order.
func (m *AssetGraph) AssetIDs(_ context.Context) ([]entities.AssetID, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]entities.AssetID, 0, len(m.Kinds))
	for id := range m.Kinds {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// AssetKind returns the kind of a registered asset.
func (m *AssetGraph) AssetKind(_ context.Context, id entities.AssetID) (entities.AssetKind, error) {
	kind, ok := m.Kinds[id]
	if !ok {
		return "", fmt.Errorf("asset %s: %w", id, ports.ErrUnknownAsset)
	}
	return kind, nil
}

// World returns a registered world descriptor.
func (m *AssetGraph) World(_ context.Context, id entities.AssetID) (*entities.World, error) {
	w, ok := m.Worlds[id]
	if !ok {
		return nil, fmt.Errorf("world %s: %w", id, ports.ErrUnknownAsset)
	}
	return w, nil
}

// Area returns a registered area payload.
func (m *AssetGraph) Area(_ context.Context, id entities.AssetID) (*entities.Area, error) {
	a, ok := m.Areas[id]
	if !ok {
		return nil, fmt.Errorf("area %s: %w", id, ports.ErrUnknownAsset)
	}
	return a, nil
}

// String returns a registered string table's primary string.
func (m *AssetGraph) String(_ context.Context, id entities.AssetID) (string, error) {
	s, ok := m.Strings[id]
	if !ok {
		return "", fmt.Errorf("string table %s: %w", id, ports.ErrUnknownAsset)
	}
	return s, nil
}
