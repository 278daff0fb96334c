package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses asset dumps from JSON format.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the parsed dump.
func (p *JSONParser) Parse(r io.Reader) (*RawDump, error) {
	var dump RawDump

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&dump); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	setIndexes(&dump)
	return &dump, nil
}
