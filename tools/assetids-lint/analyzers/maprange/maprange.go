// Package maprange detects output written from inside a range over a map.
// Map iteration order is random, so generated tables written this way
// differ between runs.
package maprange

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects writes inside map range loops.
var Analyzer = &analysis.Analyzer{
	Name:     "maprange",
	Doc:      "detects output written while ranging over a map",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// fmtPrinters are the fmt functions that write output.
var fmtPrinters = map[string]bool{
	"Fprint":   true,
	"Fprintf":  true,
	"Fprintln": true,
	"Print":    true,
	"Printf":   true,
	"Println":  true,
}

// writeMethods are method names that append to an output stream.
var writeMethods = map[string]bool{
	"Write":       true,
	"WriteString": true,
	"WriteByte":   true,
	"WriteRune":   true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		rangeStmt, ok := n.(*ast.RangeStmt)
		if !ok {
			return
		}

		if !isMap(pass.TypesInfo.TypeOf(rangeStmt.X)) {
			return
		}

		ast.Inspect(rangeStmt.Body, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.FuncLit:
				// Closures run later, not once per key
				return false
			case *ast.CallExpr:
				if isOutputCall(pass, node) {
					pass.Reportf(node.Pos(),
						"output written while ranging over a map - collect and sort the keys first")
				}
			}
			return true
		})
	})

	return nil, nil
}

func isMap(t types.Type) bool {
	if t == nil {
		return false
	}
	_, ok := t.Underlying().(*types.Map)
	return ok
}

func isOutputCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	if fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func); ok {
		if pkg := fn.Pkg(); pkg != nil && pkg.Path() == "fmt" {
			return fmtPrinters[fn.Name()]
		}
	}

	if selection, ok := pass.TypesInfo.Selections[sel]; ok && selection.Kind() == types.MethodVal {
		return writeMethods[sel.Sel.Name]
	}
	return false
}
