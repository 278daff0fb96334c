package codegen

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/ersonp/assetids/internal/domain/entities"
)

const (
	pythonHeader    = "# Generated by " + generator + "\n"
	pythonWorldFile = "world.py"
)

const pythonLoader = `

def load_dedicated_file(world_name: str):
    import importlib
    return importlib.import_module(
        _DEDICATED_FILES[world_name],
        ".".join(__name__.split(".")[:-1]),
    )
`

// PythonWriter writes a world.py global table and one module per world.
type PythonWriter struct{}

// Format returns the writer's format name.
func (w *PythonWriter) Format() string {
	return "python"
}

// Write replaces every previously generated Python file in dir.
func (w *PythonWriter) Write(dir string, output *entities.Output) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	names := []string{pythonWorldFile}
	files := map[string][]byte{pythonWorldFile: renderPythonGlobal(&output.Global)}
	for i := range output.Worlds {
		world := &output.Worlds[i]
		name := world.Module + ".py"
		if _, exists := files[name]; exists {
			return nil, fmt.Errorf("world %q: module %s already written", world.WorldName, name)
		}
		names = append(names, name)
		files[name] = renderPythonWorld(world)
	}

	if err := prune(dir, ".py", pythonHeader); err != nil {
		return nil, err
	}
	return writeFiles(dir, names, files)
}

func renderPythonGlobal(g *entities.GlobalModule) []byte {
	var buf bytes.Buffer
	writePythonTable(&buf, g.Worlds)
	writePythonTable(&buf, g.Maps)

	buf.WriteString("\n_DEDICATED_FILES = {\n")
	for _, d := range g.Dedicated {
		fmt.Fprintf(&buf, "    %s: \".%s\",\n", pyQuote(d.WorldName), d.Module)
	}
	buf.WriteString("}\n")
	buf.WriteString(pythonLoader)
	return buf.Bytes()
}

func renderPythonWorld(m *entities.WorldModule) []byte {
	var buf bytes.Buffer
	writePythonTable(&buf, m.Areas)
	writePythonTable(&buf, m.Maps)

	buf.WriteString("\nDOCK_NAMES = {\n")
	for _, area := range m.Docks {
		fmt.Fprintf(&buf, "    %s: {\n", pyQuote(area.Area))
		for _, d := range area.Docks {
			fmt.Fprintf(&buf, "        %s: %d,\n", pyQuote(d.Name), d.Number)
		}
		buf.WriteString("    },\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

// writePythonTable writes the constants of one table followed by its
// NAME_TO_ID mapping.
func writePythonTable(buf *bytes.Buffer, t entities.TableListing) {
	buf.WriteString(pythonHeader)
	buf.WriteString("\n")
	for i, c := range t.Constants {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "%s = %s", c.Symbol, c.ID)
	}
	buf.WriteString("\n")

	fmt.Fprintf(buf, "\nNAME_TO_ID%s = {\n", t.Suffix)
	for _, n := range t.Names {
		fmt.Fprintf(buf, "    %s: %s,\n", pyQuote(n.Name), n.ID)
	}
	buf.WriteString("}\n")
}

// pyQuote returns s as a double-quoted Python string literal. Quotes,
// backslashes and non-printable runes are escaped.
func pyQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case unicode.IsPrint(r):
				b.WriteRune(r)
			case r <= 0xFFFF:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
