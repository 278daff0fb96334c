// Package parsers decodes asset dumps from their on-disk formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// RawDump is an asset dump as read from disk, before validation.
type RawDump struct {
	Game   string     `json:"game" yaml:"game"`
	Assets []RawAsset `json:"assets" yaml:"assets"`
}

// RawAsset is one entry of a dump. Exactly one payload field is expected to
// match Kind; payloads of kinds the pipeline does not consult are ignored.
type RawAsset struct {
	ID      entities.AssetID `json:"id" yaml:"id"`
	Kind    string           `json:"kind" yaml:"kind"`
	World   *entities.World  `json:"world,omitempty" yaml:"world,omitempty"`
	Area    *entities.Area   `json:"area,omitempty" yaml:"area,omitempty"`
	Strings *RawStrings      `json:"strings,omitempty" yaml:"strings,omitempty"`
	Index   int              `json:"-" yaml:"-"` // Position in the asset list (set by parser)
}

// RawStrings is a string table payload. Either Tables holds decoded strings,
// or Raw holds base64 bytes in the named Encoding.
type RawStrings struct {
	Tables   [][]string `json:"tables,omitempty" yaml:"tables,omitempty"`
	Encoding string     `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Raw      string     `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Parser defines the interface for parsing asset dumps.
type Parser interface {
	Parse(r io.Reader) (*RawDump, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".yaml", ".yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// setIndexes numbers the assets from 1 in list order.
func setIndexes(dump *RawDump) {
	for i := range dump.Assets {
		dump.Assets[i].Index = i + 1
	}
}
