package entities

import "sort"

// NameTable maps a display name to an asset identifier.
type NameTable map[string]AssetID

// SortedKeys returns the table's names in ascending order.
func (t NameTable) SortedKeys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DockTable maps a dock name to its ordinal within one area.
type DockTable map[string]int

// ByNumber returns the docks ordered by ordinal, ties broken by name.
func (t DockTable) ByNumber() []Dock {
	docks := make([]Dock, 0, len(t))
	for name, number := range t {
		docks = append(docks, Dock{Name: name, Number: number})
	}
	sort.Slice(docks, func(i, j int) bool {
		if docks[i].Number != docks[j].Number {
			return docks[i].Number < docks[j].Number
		}
		return docks[i].Name < docks[j].Name
	})
	return docks
}

// WorldTables holds the accumulated tables of a single world.
type WorldTables struct {
	WorldID   AssetID
	WorldName string
	Areas     NameTable
	Maps      NameTable
	Docks     map[string]DockTable
}

// NewWorldTables creates empty accumulators for a world.
func NewWorldTables(id AssetID, name string) *WorldTables {
	return &WorldTables{
		WorldID:   id,
		WorldName: name,
		Areas:     make(NameTable),
		Maps:      make(NameTable),
		Docks:     make(map[string]DockTable),
	}
}

// AreaNames returns the world's area names in ascending order.
func (w *WorldTables) AreaNames() []string {
	return w.Areas.SortedKeys()
}

// GlobalIndex holds the title-wide tables.
type GlobalIndex struct {
	Worlds NameTable
	Maps   NameTable
}

// NewGlobalIndex creates an empty global index.
func NewGlobalIndex() *GlobalIndex {
	return &GlobalIndex{
		Worlds: make(NameTable),
		Maps:   make(NameTable),
	}
}

// SkippedWorld records a world left out because its name could not be resolved.
type SkippedWorld struct {
	WorldID AssetID
	Reason  string
}

// WorldFailure records a world whose processing aborted.
type WorldFailure struct {
	WorldID   AssetID
	WorldName string
	Err       error
}

// ExtractionResult is the outcome of one extraction run.
type ExtractionResult struct {
	Game     Game
	Index    *GlobalIndex
	Worlds   []*WorldTables
	Skipped  []SkippedWorld
	Failures []WorldFailure
}

// World returns the tables for the named world, or nil.
func (r *ExtractionResult) World(name string) *WorldTables {
	for _, w := range r.Worlds {
		if w.WorldName == name {
			return w
		}
	}
	return nil
}
