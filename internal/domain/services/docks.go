package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
)

// DockTableBuilder collects the docks of an area's default script layer.
type DockTableBuilder struct {
	graph ports.AssetGraph
}

// NewDockTableBuilder creates a new DockTableBuilder.
func NewDockTableBuilder(graph ports.AssetGraph) *DockTableBuilder {
	return &DockTableBuilder{graph: graph}
}

// Build decodes the area and returns its dock table. Only the first script
// layer is consulted. Duplicate dock names and ordinals that are not exactly
// 0..k-1 yield a *StructuralError.
func (b *DockTableBuilder) Build(ctx context.Context, entry entities.AreaEntry) (entities.DockTable, error) {
	area, err := b.graph.Area(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("decoding area %s: %w", entry.ID, err)
	}

	docks := make(entities.DockTable)
	layer, ok := area.DefaultLayer()
	if !ok {
		return docks, nil
	}

	for _, obj := range layer.Instances {
		if !obj.IsDock() {
			continue
		}
		dock, err := obj.AsDock()
		if err != nil {
			return nil, &StructuralError{AreaID: entry.ID, Reason: err.Error()}
		}
		if prev, exists := docks[dock.Name]; exists {
			return nil, &StructuralError{
				AreaID: entry.ID,
				Reason: fmt.Sprintf("duplicate dock name %q (numbers %d and %d)", dock.Name, prev, dock.Number),
			}
		}
		docks[dock.Name] = dock.Number
	}

	if err := validateDockNumbers(docks); err != nil {
		return nil, &StructuralError{AreaID: entry.ID, Reason: err.Error()}
	}
	return docks, nil
}

// validateDockNumbers checks that the ordinals are exactly 0..k-1.
func validateDockNumbers(docks entities.DockTable) error {
	numbers := make([]int, 0, len(docks))
	for _, n := range docks {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	for i, n := range numbers {
		if n != i {
			return fmt.Errorf("dock numbers %v are not contiguous from 0 (expected %d at position %d)", numbers, i, i)
		}
	}
	return nil
}
