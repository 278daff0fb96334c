package entities

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// DockTypeName is the object type tag of door transitions.
const DockTypeName = "DOCK"

// dockNumberProperty is the property key carrying a dock's ordinal.
const dockNumberProperty = "dock_number"

// ErrNotDock is returned when a non-dock instance is read as a dock.
var ErrNotDock = errors.New("instance is not a dock")

// ObjectInstance is a typed object placed in a script layer.
type ObjectInstance struct {
	ID         uint32         `json:"id" yaml:"id"`
	TypeName   string         `json:"type" yaml:"type"`
	Name       string         `json:"name" yaml:"name"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Dock is the decoded view of a DOCK instance.
type Dock struct {
	Name   string
	Number int
}

// IsDock reports whether the instance is a door transition.
func (o ObjectInstance) IsDock() bool {
	return o.TypeName == DockTypeName
}

// AsDock returns the instance's dock properties.
func (o ObjectInstance) AsDock() (Dock, error) {
	if !o.IsDock() {
		return Dock{}, fmt.Errorf("instance 0x%08X (%s): %w", o.ID, o.TypeName, ErrNotDock)
	}
	raw, ok := o.Properties[dockNumberProperty]
	if !ok {
		return Dock{}, fmt.Errorf("dock %q (0x%08X): missing %s", o.Name, o.ID, dockNumberProperty)
	}
	number, err := toInt(raw)
	if err != nil {
		return Dock{}, fmt.Errorf("dock %q (0x%08X): %s: %w", o.Name, o.ID, dockNumberProperty, err)
	}
	return Dock{Name: o.Name, Number: number}, nil
}

// toInt normalizes the numeric types produced by the JSON and YAML decoders.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("value %d out of range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("value %v is not an integer", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("value %q is not an integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}
