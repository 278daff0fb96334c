package entities

import (
	"fmt"
	"strings"
)

// Game identifies a supported title.
type Game string

// Supported titles.
const (
	GamePrime      Game = "prime"
	GameEchoes     Game = "echoes"
	GameCorruption Game = "corruption"
)

// AllGames lists the supported titles.
var AllGames = []Game{GamePrime, GameEchoes, GameCorruption}

// ParseGame parses a title name case-insensitively.
func ParseGame(s string) (Game, error) {
	g := Game(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllGames {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown game %q (valid: %s)", s, joinGames())
}

func joinGames() string {
	names := make([]string, len(AllGames))
	for i, g := range AllGames {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

// TitleOverrides are manual names for one title, keyed by structural identifier.
type TitleOverrides struct {
	Worlds map[AssetID]string
	Areas  map[AssetID]string
}

// Clone returns a deep copy so callers cannot mutate shared tables.
func (o TitleOverrides) Clone() TitleOverrides {
	c := TitleOverrides{
		Worlds: make(map[AssetID]string, len(o.Worlds)),
		Areas:  make(map[AssetID]string, len(o.Areas)),
	}
	for k, v := range o.Worlds {
		c.Worlds[k] = v
	}
	for k, v := range o.Areas {
		c.Areas[k] = v
	}
	return c
}
