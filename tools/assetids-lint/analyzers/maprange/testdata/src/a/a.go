package a

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

type NameTable map[string]uint32

func badFprintf(w io.Writer, names map[string]uint32) {
	for name, id := range names {
		fmt.Fprintf(w, "%s = 0x%08X\n", name, id) // want "output written while ranging over a map"
	}
}

func badNamedMap(w io.Writer, table NameTable) {
	for name := range table {
		fmt.Fprintln(w, name) // want "output written while ranging over a map"
	}
}

func badBuilder(names map[string]int) string {
	var b strings.Builder
	for name := range names {
		b.WriteString(name) // want "output written while ranging over a map"
	}
	return b.String()
}

func badBuffer(docks map[string]int) []byte {
	var buf bytes.Buffer
	for _, n := range docks {
		buf.WriteByte(byte(n)) // want "output written while ranging over a map"
	}
	return buf.Bytes()
}

func badNested(w io.Writer, docks map[string]map[string]int) {
	for area, table := range docks {
		for dock := range table {
			fmt.Fprintf(w, "%s/%s\n", area, dock) // want "output written while ranging over a map" "output written while ranging over a map"
		}
	}
}

func goodSorted(w io.Writer, names map[string]uint32) {
	keys := make([]string, 0, len(names))
	for name := range names {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s = 0x%08X\n", k, names[k])
	}
}

func goodSlice(w io.Writer, names []string) {
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func goodSprintf(ids map[string]uint32) map[string]string {
	out := make(map[string]string, len(ids))
	for name, id := range ids {
		out[name] = fmt.Sprintf("0x%08X", id)
	}
	return out
}

func goodClosure(w io.Writer, names map[string]uint32) []func() {
	var fns []func()
	for name := range names {
		fns = append(fns, func() { fmt.Fprintln(w, name) })
	}
	return fns
}
