package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/mocks"
	"github.com/ersonp/assetids/internal/domain/ports"
)

func TestDockTableBuilder_Build(t *testing.T) {
	tests := []struct {
		name     string
		docks    []entities.Dock
		expected entities.DockTable
		wantErr  string
	}{
		{
			name:     "contiguous ordinals",
			docks:    []entities.Dock{{Name: "A", Number: 0}, {Name: "B", Number: 1}, {Name: "C", Number: 2}},
			expected: entities.DockTable{"A": 0, "B": 1, "C": 2},
		},
		{
			name:     "unordered but contiguous",
			docks:    []entities.Dock{{Name: "C", Number: 2}, {Name: "A", Number: 0}, {Name: "B", Number: 1}},
			expected: entities.DockTable{"A": 0, "B": 1, "C": 2},
		},
		{
			name:     "no docks",
			expected: entities.DockTable{},
		},
		{
			name:    "gap in ordinals",
			docks:   []entities.Dock{{Name: "A", Number: 0}, {Name: "B", Number: 1}, {Name: "C", Number: 3}},
			wantErr: "not contiguous",
		},
		{
			name:    "not zero based",
			docks:   []entities.Dock{{Name: "A", Number: 1}},
			wantErr: "not contiguous",
		},
		{
			name:    "duplicate ordinal",
			docks:   []entities.Dock{{Name: "A", Number: 0}, {Name: "B", Number: 0}, {Name: "C", Number: 2}},
			wantErr: "not contiguous",
		},
		{
			name:    "duplicate name",
			docks:   []entities.Dock{{Name: "A", Number: 0}, {Name: "A", Number: 1}},
			wantErr: "duplicate dock name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mocks.NewAssetGraph()
			g.AddArea(dockArea(0x500, tt.docks...))
			b := NewDockTableBuilder(g)

			table, err := b.Build(context.Background(), entities.AreaEntry{ID: 0x500})
			if tt.wantErr != "" {
				require.Error(t, err)
				var structural *StructuralError
				require.ErrorAs(t, err, &structural)
				assert.Equal(t, entities.AssetID(0x500), structural.AreaID)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, table)
		})
	}
}

func TestDockTableBuilder_Build_NoLayers(t *testing.T) {
	g := mocks.NewAssetGraph()
	g.AddArea(&entities.Area{ID: 0x600})

	table, err := NewDockTableBuilder(g).Build(context.Background(), entities.AreaEntry{ID: 0x600})
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestDockTableBuilder_Build_MalformedDock(t *testing.T) {
	g := mocks.NewAssetGraph()
	g.AddArea(&entities.Area{ID: 0x700, ScriptLayers: []entities.ScriptLayer{{
		Instances: []entities.ObjectInstance{{ID: 1, TypeName: "DOCK", Name: "No Number"}},
	}}})

	_, err := NewDockTableBuilder(g).Build(context.Background(), entities.AreaEntry{ID: 0x700})
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Contains(t, err.Error(), "missing dock_number")
}

func TestDockTableBuilder_Build_MissingArea(t *testing.T) {
	g := mocks.NewAssetGraph()

	_, err := NewDockTableBuilder(g).Build(context.Background(), entities.AreaEntry{ID: 0x800})
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrUnknownAsset)
}
