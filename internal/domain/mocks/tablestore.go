package mocks

import (
	"context"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
)

// TableStore is a mock implementation of ports.TableStore.
type TableStore struct {
	Outputs    map[entities.Game]*entities.Output
	Err        error
	SaveCalls  int
	WorldLoads map[string]int
}

// NewTableStore creates a new mock TableStore.
func NewTableStore() *TableStore {
	return &TableStore{
		Outputs:    make(map[entities.Game]*entities.Output),
		WorldLoads: make(map[string]int),
	}
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *TableStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the database connection.
func (m *TableStore) Close() error {
	return nil
}

// SaveRun replaces the stored output of a game.
func (m *TableStore) SaveRun(_ context.Context, output *entities.Output) (*ports.StoredRun, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.SaveCalls++
	m.Outputs[output.Game] = output
	return &ports.StoredRun{ID: "run-1", Game: output.Game, Worlds: len(output.Worlds)}, nil
}

// LatestRun returns the stored run of a game.
func (m *TableStore) LatestRun(_ context.Context, game entities.Game) (*ports.StoredRun, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out, ok := m.Outputs[game]
	if !ok {
		return nil, nil
	}
	return &ports.StoredRun{ID: "run-1", Game: game, Worlds: len(out.Worlds)}, nil
}

// LoadGlobal returns the stored global table of a game.
func (m *TableStore) LoadGlobal(_ context.Context, game entities.Game) (*entities.GlobalModule, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out, ok := m.Outputs[game]
	if !ok {
		return nil, nil
	}
	global := out.Global
	return &global, nil
}

// LoadWorld returns the stored dedicated table of a world.
func (m *TableStore) LoadWorld(_ context.Context, game entities.Game, worldName string) (*entities.WorldModule, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.WorldLoads[worldName]++
	out, ok := m.Outputs[game]
	if !ok {
		return nil, nil
	}
	for i := range out.Worlds {
		if out.Worlds[i].WorldName == worldName {
			world := out.Worlds[i]
			return &world, nil
		}
	}
	return nil, nil
}
