package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses asset dumps from YAML format.
type YAMLParser struct{}

// Parse reads a single YAML document from the reader and returns the parsed dump.
func (p *YAMLParser) Parse(r io.Reader) (*RawDump, error) {
	var dump RawDump

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&dump); err != nil {
		if errors.Is(err, io.EOF) {
			return &dump, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	setIndexes(&dump)
	return &dump, nil
}
