package services

import (
	"fmt"
	"sort"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// TableEmitter turns extracted tables into the sorted logical output.
// It performs no I/O.
type TableEmitter struct{}

// NewTableEmitter creates a new TableEmitter.
func NewTableEmitter() *TableEmitter {
	return &TableEmitter{}
}

// Emit builds the global table and one dedicated table per world. A world
// whose own tables cannot be emitted is appended to result.Failures and left
// out of the global table; errors in the global table fail the whole run.
func (e *TableEmitter) Emit(result *entities.ExtractionResult) (*entities.Output, error) {
	out := &entities.Output{Game: result.Game}

	sorted := make([]*entities.WorldTables, len(result.Worlds))
	copy(sorted, result.Worlds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].WorldName < sorted[j].WorldName })

	failed := make(map[string]bool)
	for _, w := range sorted {
		module, err := e.emitWorld(w)
		if err != nil {
			failed[w.WorldName] = true
			result.Failures = append(result.Failures, entities.WorldFailure{
				WorldID:   w.WorldID,
				WorldName: w.WorldName,
				Err:       fmt.Errorf("world %q: %w", w.WorldName, err),
			})
			continue
		}
		out.Worlds = append(out.Worlds, *module)
	}

	indexWorlds := withoutNames(result.Index.Worlds, failed)
	worlds, err := listTable("worlds", indexWorlds, entities.SuffixWorld)
	if err != nil {
		return nil, err
	}
	maps, err := listTable("world maps", withoutNames(result.Index.Maps, failed), entities.SuffixWorldMap)
	if err != nil {
		return nil, err
	}
	out.Global = entities.GlobalModule{Worlds: worlds, Maps: maps}

	modules := make(map[string]string, len(indexWorlds))
	for _, name := range indexWorlds.SortedKeys() {
		module := ModuleName(name)
		if module == "" {
			return nil, &SymbolError{Table: "dedicated tables", Key: name}
		}
		if other, taken := modules[module]; taken {
			return nil, &SymbolError{Table: "dedicated tables", Key: name, Symbol: module, Other: other}
		}
		modules[module] = name
		out.Global.Dedicated = append(out.Global.Dedicated, entities.DedicatedEntry{WorldName: name, Module: module})
	}

	return out, nil
}

// withoutNames returns a copy of names minus the excluded keys.
func withoutNames(names entities.NameTable, excluded map[string]bool) entities.NameTable {
	kept := make(entities.NameTable, len(names))
	for name, id := range names {
		if !excluded[name] {
			kept[name] = id
		}
	}
	return kept
}

func (e *TableEmitter) emitWorld(w *entities.WorldTables) (*entities.WorldModule, error) {
	areas, err := listTable("areas", w.Areas, entities.SuffixArea)
	if err != nil {
		return nil, err
	}
	maps, err := listTable("area maps", w.Maps, entities.SuffixAreaMap)
	if err != nil {
		return nil, err
	}

	module := &entities.WorldModule{
		WorldName: w.WorldName,
		Module:    ModuleName(w.WorldName),
		Areas:     areas,
		Maps:      maps,
	}

	areaNames := make([]string, 0, len(w.Docks))
	for name := range w.Docks {
		areaNames = append(areaNames, name)
	}
	sort.Strings(areaNames)

	for _, name := range areaNames {
		listing := entities.AreaDocks{Area: name, Docks: []entities.DockEntry{}}
		for _, d := range w.Docks[name].ByNumber() {
			listing.Docks = append(listing.Docks, entities.DockEntry{Name: d.Name, Number: d.Number})
		}
		module.Docks = append(module.Docks, listing)
	}
	return module, nil
}

// listTable projects a NameTable into sorted constants and names.
func listTable(table string, names entities.NameTable, suffix string) (entities.TableListing, error) {
	listing := entities.TableListing{
		Suffix:    suffix,
		Constants: make([]entities.ConstantEntry, 0, len(names)),
		Names:     make([]entities.NameEntry, 0, len(names)),
	}
	symbols := make(map[string]string, len(names))

	for _, key := range names.SortedKeys() {
		id := names[key]
		symbol := FilterName(key)
		if symbol == "" {
			return listing, &SymbolError{Table: table, Key: key}
		}
		if other, taken := symbols[symbol]; taken {
			return listing, &SymbolError{Table: table, Key: key, Symbol: symbol + suffix, Other: other}
		}
		symbols[symbol] = key

		listing.Constants = append(listing.Constants, entities.ConstantEntry{Symbol: symbol + suffix, ID: id})
		listing.Names = append(listing.Names, entities.NameEntry{Name: key, ID: id})
	}
	return listing, nil
}
