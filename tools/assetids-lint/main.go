// assetids-lint is a custom static analyzer for deterministic table emission.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/assetids/tools/assetids-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
