// Package entities contains the domain types shared across the extraction pipeline.
package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AssetID is an opaque 32-bit identifier naming one asset within a title.
type AssetID uint32

// String formats the ID as 8-digit uppercase hexadecimal.
func (id AssetID) String() string {
	return fmt.Sprintf("0x%08X", uint32(id))
}

// ParseAssetID parses a decimal or 0x-prefixed hexadecimal identifier.
func ParseAssetID(s string) (AssetID, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid asset id %q: %w", s, err)
	}
	return AssetID(v), nil
}

// UnmarshalJSON accepts both numbers and hex strings.
func (id *AssetID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseAssetID(s)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}
	var n uint32
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid asset id %s", string(data))
	}
	*id = AssetID(n)
	return nil
}

// UnmarshalYAML accepts both integer (including 0x literals) and string scalars.
func (id *AssetID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: asset id must be a scalar", node.Line)
	}
	parsed, err := ParseAssetID(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*id = parsed
	return nil
}

// MarshalYAML writes the ID in its hexadecimal form.
func (id AssetID) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}

// AssetKind is the four-character type tag of an asset.
type AssetKind string

// Asset kinds consulted by the pipeline.
const (
	KindWorld       AssetKind = "MLVL"
	KindArea        AssetKind = "MREA"
	KindStringTable AssetKind = "STRG"
	KindWorldMap    AssetKind = "MAPW"
	KindAreaMap     AssetKind = "MAPA"
)

// Normalize returns the kind in its canonical upper-case form.
func (k AssetKind) Normalize() AssetKind {
	return AssetKind(strings.ToUpper(strings.TrimSpace(string(k))))
}

// World is a decoded world descriptor.
type World struct {
	ID         AssetID     `json:"id" yaml:"id"`
	NameID     AssetID     `json:"name_id" yaml:"name_id"`
	WorldMapID AssetID     `json:"world_map_id" yaml:"world_map_id"`
	Areas      []AreaEntry `json:"areas" yaml:"areas"`
}

// AreaEntry describes one area as listed by its world.
type AreaEntry struct {
	ID           AssetID `json:"id" yaml:"id"`
	NameID       AssetID `json:"name_id" yaml:"name_id"`
	InternalName string  `json:"internal_name" yaml:"internal_name"`
	MapID        AssetID `json:"map_id" yaml:"map_id"`
}

// Area is a decoded area payload.
type Area struct {
	ID           AssetID       `json:"id" yaml:"id"`
	ScriptLayers []ScriptLayer `json:"layers" yaml:"layers"`
}

// DefaultLayer returns the first script layer, if any.
func (a *Area) DefaultLayer() (ScriptLayer, bool) {
	if a == nil || len(a.ScriptLayers) == 0 {
		return ScriptLayer{}, false
	}
	return a.ScriptLayers[0], true
}

// ScriptLayer is an ordered bucket of placed object instances.
type ScriptLayer struct {
	Name      string           `json:"name" yaml:"name"`
	Instances []ObjectInstance `json:"instances" yaml:"instances"`
}
