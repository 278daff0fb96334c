// Package analyzers provides all custom static analyzers for assetids.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/assetids/tools/assetids-lint/analyzers/maprange"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		maprange.Analyzer,
	}
}
