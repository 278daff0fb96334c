// Package codegen renders extracted tables as source files.
package codegen

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ersonp/assetids/internal/domain/ports"
)

// generator names the tool in generated file headers.
const generator = "assetids"

// ForFormat returns the table writer for the given output format.
// Supported formats: "python", "go".
func ForFormat(format string) (ports.TableWriter, error) {
	switch strings.ToLower(format) {
	case "python", "py":
		return &PythonWriter{}, nil
	case "go", "golang":
		return &GoWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{"go", "python"}
}

// prune removes previously generated files from dir: files up to one
// directory deep with the given extension whose content starts with header.
// Subdirectories left empty are removed as well.
func prune(dir, ext, header string) error {
	var dirs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		depth := strings.Count(rel, string(filepath.Separator))
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if depth > 0 {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
			return nil
		}
		if filepath.Ext(path) != ext {
			return nil
		}
		generated, err := hasHeader(path, header)
		if err != nil {
			return err
		}
		if !generated {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing stale %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("pruning %s: %w", dir, err)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))
	for _, d := range dirs {
		entries, err := os.ReadDir(d)
		if err != nil {
			return fmt.Errorf("pruning %s: %w", d, err)
		}
		if len(entries) == 0 {
			if err := os.Remove(d); err != nil {
				return fmt.Errorf("removing empty %s: %w", d, err)
			}
		}
	}
	return nil
}

func hasHeader(path, header string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, len(header))
	n, _ := io.ReadFull(f, buf)
	return bytes.Equal(buf[:n], []byte(header)), nil
}

// writeFiles writes every file of files (relative path to content) under
// dir and returns the written paths in order.
func writeFiles(dir string, names []string, files map[string][]byte) ([]string, error) {
	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(path, files[name], 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
