package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/mocks"
	"github.com/ersonp/assetids/internal/domain/services"
)

// addWorld registers a world with one named area holding a single dock.
func addWorld(g *mocks.AssetGraph, id entities.AssetID, name, area string) {
	world := &entities.World{ID: id, NameID: id + 1, WorldMapID: id + 2}
	if name != "" {
		g.AddString(world.NameID, name)
	}
	areaID := id + 0x10
	world.Areas = []entities.AreaEntry{{ID: areaID, NameID: areaID + 1, InternalName: "internal", MapID: areaID + 2}}
	g.AddString(areaID+1, area)
	g.AddArea(&entities.Area{ID: areaID, ScriptLayers: []entities.ScriptLayer{{
		Name: "Default",
		Instances: []entities.ObjectInstance{
			{ID: 1, TypeName: entities.DockTypeName, Name: "Dock A", Properties: map[string]any{"dock_number": 0}},
		},
	}}})
	g.AddWorld(world)
}

func newGenerateHandler(g *mocks.AssetGraph, writer *mocks.TableWriter, store *mocks.TableStore) *GenerateHandler {
	svc := services.NewExtractionService(entities.GameEchoes, g, entities.TitleOverrides{}, nil)
	var h *GenerateHandler
	switch {
	case writer != nil && store != nil:
		h = NewGenerateHandler(svc, services.NewTableEmitter(), writer, store)
	case writer != nil:
		h = NewGenerateHandler(svc, services.NewTableEmitter(), writer, nil)
	case store != nil:
		h = NewGenerateHandler(svc, services.NewTableEmitter(), nil, store)
	default:
		h = NewGenerateHandler(svc, services.NewTableEmitter(), nil, nil)
	}
	return h
}

func TestGenerateHandler_Handle(t *testing.T) {
	g := mocks.NewAssetGraph()
	addWorld(g, 0x1000, "Temple Grounds", "Landing Site")
	addWorld(g, 0x2000, "Agon Wastes", "Mining Plaza")

	writer := &mocks.TableWriter{}
	store := mocks.NewTableStore()
	handler := newGenerateHandler(g, writer, store)

	result, err := handler.Handle(context.Background(), GenerateOptions{OutputDir: "/out"})
	require.NoError(t, err)

	assert.False(t, result.Failed())
	assert.Equal(t, []string{"/out/world", "/out/agon_wastes", "/out/temple_grounds"}, result.Files)
	require.NotNil(t, result.Run)
	assert.Equal(t, 2, result.Run.Worlds)
	assert.Same(t, result.Output, writer.Written)
	assert.Equal(t, "/out", writer.Dir)
	assert.Equal(t, 1, store.SaveCalls)
	assert.Same(t, result.Output, store.Outputs[entities.GameEchoes])
}

func TestGenerateHandler_Handle_DryRun(t *testing.T) {
	g := mocks.NewAssetGraph()
	addWorld(g, 0x1000, "Temple Grounds", "Landing Site")

	writer := &mocks.TableWriter{}
	store := mocks.NewTableStore()
	handler := newGenerateHandler(g, writer, store)

	result, err := handler.Handle(context.Background(), GenerateOptions{OutputDir: "/out", DryRun: true})
	require.NoError(t, err)

	require.Len(t, result.Output.Worlds, 1)
	assert.Nil(t, writer.Written)
	assert.Equal(t, 0, store.SaveCalls)
	assert.Nil(t, result.Run)
}

func TestGenerateHandler_Handle_ReportsFailures(t *testing.T) {
	g := mocks.NewAssetGraph()
	addWorld(g, 0x1000, "Temple Grounds", "Landing Site")
	addWorld(g, 0x2000, "", "Mining Plaza")
	g.Areas[0x1010].ScriptLayers[0].Instances = append(g.Areas[0x1010].ScriptLayers[0].Instances,
		entities.ObjectInstance{ID: 2, TypeName: entities.DockTypeName, Name: "Dock B", Properties: map[string]any{"dock_number": 5}})
	addWorld(g, 0x3000, "Agon Wastes", "Mining Plaza")

	writer := &mocks.TableWriter{}
	handler := newGenerateHandler(g, writer, nil)

	result, err := handler.Handle(context.Background(), GenerateOptions{OutputDir: "/out"})
	require.NoError(t, err)

	assert.True(t, result.Failed())
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Temple Grounds", result.Failures[0].WorldName)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, entities.AssetID(0x2000), result.Skipped[0].WorldID)

	require.NotNil(t, writer.Written)
	require.Len(t, writer.Written.Worlds, 1)
	assert.Equal(t, "Agon Wastes", writer.Written.Worlds[0].WorldName)
	assert.Nil(t, result.Run)
}

func TestGenerateHandler_Handle_AreaSymbolFailureIsolated(t *testing.T) {
	g := mocks.NewAssetGraph()
	addWorld(g, 0x1000, "Temple Grounds", "Landing Site")
	addWorld(g, 0x2000, "Agon Wastes", "42")
	writer := &mocks.TableWriter{}
	store := mocks.NewTableStore()

	result, err := newGenerateHandler(g, writer, store).Handle(context.Background(), GenerateOptions{OutputDir: "/out"})
	require.NoError(t, err)

	assert.True(t, result.Failed())
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Agon Wastes", result.Failures[0].WorldName)

	require.NotNil(t, writer.Written)
	require.Len(t, writer.Written.Worlds, 1)
	assert.Equal(t, "Temple Grounds", writer.Written.Worlds[0].WorldName)
	assert.Equal(t, []entities.DedicatedEntry{{WorldName: "Temple Grounds", Module: "temple_grounds"}}, writer.Written.Global.Dedicated)
	assert.Equal(t, []entities.NameEntry{{Name: "Temple Grounds", ID: 0x1000}}, writer.Written.Global.Worlds.Names)
}

func TestGenerateHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(g *mocks.AssetGraph, w *mocks.TableWriter, s *mocks.TableStore)
		wantErr string
	}{
		{
			name:    "graph error",
			setup:   func(g *mocks.AssetGraph, _ *mocks.TableWriter, _ *mocks.TableStore) { g.Err = errors.New("bad dump") },
			wantErr: "extracting tables",
		},
		{
			name:    "writer error",
			setup:   func(_ *mocks.AssetGraph, w *mocks.TableWriter, _ *mocks.TableStore) { w.Err = errors.New("disk full") },
			wantErr: "writing mock tables",
		},
		{
			name:    "store error",
			setup:   func(_ *mocks.AssetGraph, _ *mocks.TableWriter, s *mocks.TableStore) { s.Err = errors.New("locked") },
			wantErr: "storing run",
		},
		{
			name: "symbol collision",
			setup: func(g *mocks.AssetGraph, _ *mocks.TableWriter, _ *mocks.TableStore) {
				addWorld(g, 0x5000, "Temple Grounds!", "Other")
			},
			wantErr: "emitting tables",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mocks.NewAssetGraph()
			addWorld(g, 0x1000, "Temple Grounds", "Landing Site")
			writer := &mocks.TableWriter{}
			store := mocks.NewTableStore()
			tt.setup(g, writer, store)

			_, err := newGenerateHandler(g, writer, store).Handle(context.Background(), GenerateOptions{OutputDir: "/out"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
