package services

import (
	"errors"
	"fmt"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// ErrWorldNameUnresolved is returned when neither the string table nor the
// title overrides name a world.
var ErrWorldNameUnresolved = errors.New("world name unresolved")

// StructuralError reports source data that violates an invariant the
// pipeline relies on. It is never recovered from silently.
type StructuralError struct {
	WorldID entities.AssetID
	World   string
	AreaID  entities.AssetID
	Area    string
	Reason  string
}

func (e *StructuralError) Error() string {
	switch {
	case e.Area != "":
		return fmt.Sprintf("world %q (%s) area %q (%s): %s", e.World, e.WorldID, e.Area, e.AreaID, e.Reason)
	case e.AreaID != 0:
		return fmt.Sprintf("world %q (%s) area %s: %s", e.World, e.WorldID, e.AreaID, e.Reason)
	default:
		return fmt.Sprintf("world %q (%s): %s", e.World, e.WorldID, e.Reason)
	}
}

// SymbolError reports a table key that cannot be turned into a unique symbol.
type SymbolError struct {
	Table  string
	Key    string
	Symbol string
	Other  string
}

func (e *SymbolError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("table %s: name %q yields an empty symbol", e.Table, e.Key)
	}
	return fmt.Sprintf("table %s: names %q and %q both yield symbol %s", e.Table, e.Other, e.Key, e.Symbol)
}
