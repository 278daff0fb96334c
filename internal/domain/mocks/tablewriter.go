package mocks

import (
	"path/filepath"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// TableWriter is a mock implementation of ports.TableWriter that records its input.
type TableWriter struct {
	Written *entities.Output
	Dir     string
	Err     error
}

// Format returns the mock format name.
func (m *TableWriter) Format() string {
	return "mock"
}

// Write records the output and reports one path per table.
func (m *TableWriter) Write(dir string, output *entities.Output) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Written = output
	m.Dir = dir
	paths := []string{filepath.Join(dir, "world")}
	for _, w := range output.Worlds {
		paths = append(paths, filepath.Join(dir, w.Module))
	}
	return paths, nil
}
