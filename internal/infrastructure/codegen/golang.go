package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path"
	"strings"
	"unicode"

	"github.com/ersonp/assetids/internal/domain/entities"
)

const (
	goHeader    = "// Code generated by " + generator + ". DO NOT EDIT.\n"
	goWorldFile = "world.go"
)

// GoWriter writes a package named after the game holding the global table,
// with one sub-package per world.
type GoWriter struct{}

// Format returns the writer's format name.
func (w *GoWriter) Format() string {
	return "go"
}

// Write replaces every previously generated Go file in dir.
func (w *GoWriter) Write(dir string, output *entities.Output) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	global, err := renderGoGlobal(output)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", goWorldFile, err)
	}
	names := []string{goWorldFile}
	files := map[string][]byte{goWorldFile: global}

	for i := range output.Worlds {
		world := &output.Worlds[i]
		pkg := goIdent(strings.ToLower(world.Module))
		name := path.Join(pkg, pkg+".go")
		if _, exists := files[name]; exists {
			return nil, fmt.Errorf("world %q: package %s already written", world.WorldName, pkg)
		}
		src, err := renderGoWorld(pkg, world)
		if err != nil {
			return nil, fmt.Errorf("rendering world %q: %w", world.WorldName, err)
		}
		names = append(names, name)
		files[name] = src
	}

	if err := prune(dir, ".go", goHeader); err != nil {
		return nil, err
	}
	return writeFiles(dir, names, files)
}

func renderGoGlobal(output *entities.Output) ([]byte, error) {
	pkg := goIdent(strings.ToLower(string(output.Game)))
	decl := newGoDecls()

	var buf bytes.Buffer
	buf.WriteString(goHeader)
	fmt.Fprintf(&buf, "\n// Package %s holds the world and world map identifiers of %s.\n", pkg, output.Game)
	fmt.Fprintf(&buf, "package %s\n", pkg)

	if err := decl.table(&buf, output.Global.Worlds); err != nil {
		return nil, err
	}
	if err := decl.table(&buf, output.Global.Maps); err != nil {
		return nil, err
	}

	buf.WriteString("\n// DedicatedPackages maps a world name to the package holding its tables.\n")
	buf.WriteString("var DedicatedPackages = map[string]string{\n")
	for _, d := range output.Global.Dedicated {
		fmt.Fprintf(&buf, "\t%q: %q,\n", d.WorldName, goIdent(strings.ToLower(d.Module)))
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func renderGoWorld(pkg string, m *entities.WorldModule) ([]byte, error) {
	decl := newGoDecls()

	var buf bytes.Buffer
	buf.WriteString(goHeader)
	fmt.Fprintf(&buf, "\n// Package %s holds the area identifiers of %s.\n", pkg, m.WorldName)
	fmt.Fprintf(&buf, "package %s\n", pkg)

	if err := decl.table(&buf, m.Areas); err != nil {
		return nil, err
	}
	if err := decl.table(&buf, m.Maps); err != nil {
		return nil, err
	}

	buf.WriteString("\n// DockNames maps an area name to its docks and their ordinals.\n")
	buf.WriteString("var DockNames = map[string]map[string]int{\n")
	for _, area := range m.Docks {
		fmt.Fprintf(&buf, "\t%q: {\n", area.Area)
		for _, d := range area.Docks {
			fmt.Fprintf(&buf, "\t\t%q: %d,\n", d.Name, d.Number)
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

// goDecls tracks the identifiers declared in one generated file.
type goDecls struct {
	seen map[string]string
}

func newGoDecls() *goDecls {
	return &goDecls{seen: make(map[string]string)}
}

func (g *goDecls) declare(ident, name string) error {
	if other, exists := g.seen[ident]; exists {
		return fmt.Errorf("names %q and %q both yield identifier %s", other, name, ident)
	}
	g.seen[ident] = name
	return nil
}

// table writes the constants of one table followed by its NameToID map.
func (g *goDecls) table(buf *bytes.Buffer, t entities.TableListing) error {
	buf.WriteString("\nconst (\n")
	for i, c := range t.Constants {
		ident := goIdent(c.Symbol)
		if err := g.declare(ident, t.Names[i].Name); err != nil {
			return err
		}
		fmt.Fprintf(buf, "\t%s uint32 = %s\n", ident, c.ID)
	}
	buf.WriteString(")\n")

	mapName := "NameToID" + goIdent(strings.TrimPrefix(t.Suffix, "_"))
	if err := g.declare(mapName, mapName); err != nil {
		return err
	}
	fmt.Fprintf(buf, "\n// %s maps a name to its identifier.\n", mapName)
	fmt.Fprintf(buf, "var %s = map[string]uint32{\n", mapName)
	for _, n := range t.Names {
		fmt.Fprintf(buf, "\t%q: %s,\n", n.Name, n.ID)
	}
	buf.WriteString("}\n")
	return nil
}

// goIdent replaces every rune that cannot appear in a Go identifier.
func goIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
}
