package services

import (
	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/mocks"
)

// testArea describes one area added by addTestWorld.
type testArea struct {
	id    entities.AssetID
	name  string
	docks []entities.Dock
}

// addTestWorld registers a named world whose areas each carry a string table
// name and a default layer holding the given docks.
func addTestWorld(g *mocks.AssetGraph, id entities.AssetID, name string, areas ...testArea) *entities.World {
	world := &entities.World{
		ID:         id,
		NameID:     id + 1,
		WorldMapID: id + 2,
	}
	if name != "" {
		g.AddString(world.NameID, name)
	}
	for i, a := range areas {
		entry := entities.AreaEntry{
			ID:           a.id,
			NameID:       a.id + 1,
			InternalName: "internal_" + a.name,
			MapID:        id + 0x100 + entities.AssetID(i),
		}
		g.AddString(entry.NameID, a.name)
		g.AddArea(dockArea(a.id, a.docks...))
		world.Areas = append(world.Areas, entry)
	}
	g.AddWorld(world)
	return world
}

// dockArea builds an area whose default layer holds the given docks and
// whose second layer holds a stray dock that must be ignored.
func dockArea(id entities.AssetID, docks ...entities.Dock) *entities.Area {
	layer := entities.ScriptLayer{Name: "Default"}
	layer.Instances = append(layer.Instances, entities.ObjectInstance{ID: 1, TypeName: "ACTR", Name: "Actor"})
	for i, d := range docks {
		layer.Instances = append(layer.Instances, entities.ObjectInstance{
			ID:         uint32(i + 2),
			TypeName:   entities.DockTypeName,
			Name:       d.Name,
			Properties: map[string]any{"dock_number": d.Number},
		})
	}
	extra := entities.ScriptLayer{
		Name: "Second",
		Instances: []entities.ObjectInstance{{
			ID:         100,
			TypeName:   entities.DockTypeName,
			Name:       "Ignored",
			Properties: map[string]any{"dock_number": 99},
		}},
	}
	return &entities.Area{ID: id, ScriptLayers: []entities.ScriptLayer{layer, extra}}
}
