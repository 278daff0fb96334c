package entities

// Table suffixes used for constant symbols.
const (
	SuffixWorld    = "_MLVL"
	SuffixWorldMap = "_MAPW"
	SuffixArea     = "_MREA"
	SuffixAreaMap  = "_MAPA"
)

// ConstantEntry is one symbol-to-identifier constant.
type ConstantEntry struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	ID     AssetID `json:"id" yaml:"id"`
}

// NameEntry is one display-name-to-identifier mapping.
type NameEntry struct {
	Name string  `json:"name" yaml:"name"`
	ID   AssetID `json:"id" yaml:"id"`
}

// TableListing is both projections of one NameTable, sorted by key.
type TableListing struct {
	Suffix    string          `json:"suffix" yaml:"suffix"`
	Constants []ConstantEntry `json:"constants" yaml:"constants"`
	Names     []NameEntry     `json:"names" yaml:"names"`
}

// DockEntry is one dock of an area listing.
type DockEntry struct {
	Name   string `json:"name" yaml:"name"`
	Number int    `json:"number" yaml:"number"`
}

// AreaDocks lists the docks of one area sorted by ordinal.
type AreaDocks struct {
	Area  string      `json:"area" yaml:"area"`
	Docks []DockEntry `json:"docks" yaml:"docks"`
}

// DedicatedEntry locates the dedicated table of a world.
type DedicatedEntry struct {
	WorldName string `json:"world_name" yaml:"world_name"`
	Module    string `json:"module" yaml:"module"`
}

// GlobalModule is the title-wide output table.
type GlobalModule struct {
	Worlds    TableListing     `json:"worlds" yaml:"worlds"`
	Maps      TableListing     `json:"maps" yaml:"maps"`
	Dedicated []DedicatedEntry `json:"dedicated" yaml:"dedicated"`
}

// WorldModule is the dedicated output table of one world.
type WorldModule struct {
	WorldName string       `json:"world_name" yaml:"world_name"`
	Module    string       `json:"module" yaml:"module"`
	Areas     TableListing `json:"areas" yaml:"areas"`
	Maps      TableListing `json:"maps" yaml:"maps"`
	Docks     []AreaDocks  `json:"docks" yaml:"docks"`
}

// DockNumber returns the ordinal of a dock in an area.
func (m *WorldModule) DockNumber(area, dock string) (int, bool) {
	for _, a := range m.Docks {
		if a.Area != area {
			continue
		}
		for _, d := range a.Docks {
			if d.Name == dock {
				return d.Number, true
			}
		}
	}
	return 0, false
}

// Output is the complete logical output of a run.
type Output struct {
	Game   Game          `json:"game" yaml:"game"`
	Global GlobalModule  `json:"global" yaml:"global"`
	Worlds []WorldModule `json:"worlds" yaml:"worlds"`
}
