package main

import (
	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/mocks"
)

// templeGrounds is a stored output with one world of two areas.
func templeGrounds() *entities.Output {
	return &entities.Output{
		Game: entities.GameEchoes,
		Global: entities.GlobalModule{
			Worlds: entities.TableListing{
				Suffix:    entities.SuffixWorld,
				Constants: []entities.ConstantEntry{{Symbol: "TEMPLE_GROUNDS_MLVL", ID: 0x3BFA3EFF}},
				Names:     []entities.NameEntry{{Name: "Temple Grounds", ID: 0x3BFA3EFF}},
			},
			Maps: entities.TableListing{
				Suffix:    entities.SuffixWorldMap,
				Constants: []entities.ConstantEntry{{Symbol: "TEMPLE_GROUNDS_MAPW", ID: 0x233E42BE}},
				Names:     []entities.NameEntry{{Name: "Temple Grounds", ID: 0x233E42BE}},
			},
			Dedicated: []entities.DedicatedEntry{{WorldName: "Temple Grounds", Module: "temple_grounds"}},
		},
		Worlds: []entities.WorldModule{{
			WorldName: "Temple Grounds",
			Module:    "temple_grounds",
			Areas: entities.TableListing{
				Suffix: entities.SuffixArea,
				Constants: []entities.ConstantEntry{
					{Symbol: "HIVE_CHAMBER_A_MREA", ID: 0x2101},
					{Symbol: "LANDING_SITE_MREA", ID: 0x1101},
				},
				Names: []entities.NameEntry{
					{Name: "Hive Chamber A", ID: 0x2101},
					{Name: "Landing Site", ID: 0x1101},
				},
			},
			Maps: entities.TableListing{
				Suffix:    entities.SuffixAreaMap,
				Constants: []entities.ConstantEntry{{Symbol: "LANDING_SITE_MAPA", ID: 0x1102}},
				Names:     []entities.NameEntry{{Name: "Landing Site", ID: 0x1102}},
			},
			Docks: []entities.AreaDocks{
				{Area: "Hive Chamber A", Docks: []entities.DockEntry{}},
				{Area: "Landing Site", Docks: []entities.DockEntry{
					{Name: "Dock to Service Access", Number: 0},
					{Name: "Dock to Hive Transport Area", Number: 1},
				}},
			},
		}},
	}
}

func newTestStore() *mocks.TableStore {
	store := mocks.NewTableStore()
	store.Outputs[entities.GameEchoes] = templeGrounds()
	return store
}
