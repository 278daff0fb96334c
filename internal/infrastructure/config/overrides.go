package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// builtinOverrides holds the names of worlds whose string table is missing
// or blank on the disc.
var builtinOverrides = map[entities.Game]entities.TitleOverrides{
	entities.GameEchoes: {
		Worlds: map[entities.AssetID]string{
			0x69802220: "FrontEnd",
			0xA50A80CC: "M01_SidehopperStation",
			0xAE171602: "M02_Spires",
			0xE3B0C703: "M03_CrossfireChaos",
			0x233E42BE: "M04_Pipeline",
			0x406ADD7F: "M05_SpiderComplex",
			0x7E19ED26: "M06_ShootingGallery",
		},
	},
}

// BuiltinOverrides returns a copy of the shipped overrides for a game.
func BuiltinOverrides(game entities.Game) entities.TitleOverrides {
	return builtinOverrides[game].Clone()
}

// overridesFile is the on-disk shape of an overrides file: one section per
// game, identifiers written as hex strings.
type overridesFile map[string]overridesSection

type overridesSection struct {
	Worlds map[string]string `yaml:"worlds" toml:"worlds"`
	Areas  map[string]string `yaml:"areas" toml:"areas"`
}

// LoadOverrides reads an overrides file. The format is chosen by extension:
// .toml uses TOML, .yaml, .yml and .json use YAML.
func LoadOverrides(path string) (map[entities.Game]entities.TitleOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides file: %w", err)
	}

	var file overridesFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("parsing overrides file %s: %w", path, err)
		}
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing overrides file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported overrides format %q (supported: .yaml, .yml, .json, .toml)", ext)
	}

	result := make(map[entities.Game]entities.TitleOverrides, len(file))
	for _, key := range sortedKeys(file) {
		game, err := entities.ParseGame(key)
		if err != nil {
			return nil, fmt.Errorf("overrides file %s: %w", path, err)
		}
		section := file[key]
		worlds, err := parseIDTable(section.Worlds)
		if err != nil {
			return nil, fmt.Errorf("overrides file %s: %s worlds: %w", path, game, err)
		}
		areas, err := parseIDTable(section.Areas)
		if err != nil {
			return nil, fmt.Errorf("overrides file %s: %s areas: %w", path, game, err)
		}
		result[game] = entities.TitleOverrides{Worlds: worlds, Areas: areas}
	}
	return result, nil
}

func parseIDTable(raw map[string]string) (map[entities.AssetID]string, error) {
	table := make(map[entities.AssetID]string, len(raw))
	for key, name := range raw {
		id, err := entities.ParseAssetID(key)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("empty name for %s", id)
		}
		table[id] = name
	}
	return table, nil
}

func sortedKeys(file overridesFile) []string {
	keys := make([]string, 0, len(file))
	for k := range file {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge layers extra over base. Entries in extra win.
func Merge(base, extra entities.TitleOverrides) entities.TitleOverrides {
	merged := base.Clone()
	for id, name := range extra.Worlds {
		merged.Worlds[id] = name
	}
	for id, name := range extra.Areas {
		merged.Areas[id] = name
	}
	return merged
}

// OverridesFor returns the built-in overrides of game merged with the
// configured overrides file, if any.
func OverridesFor(basePath string, cfg *Config, game entities.Game) (entities.TitleOverrides, error) {
	overrides := BuiltinOverrides(game)
	if cfg.Overrides == "" {
		return overrides, nil
	}

	loaded, err := LoadOverrides(Resolve(basePath, cfg.Overrides))
	if err != nil {
		return entities.TitleOverrides{}, err
	}
	return Merge(overrides, loaded[game]), nil
}
