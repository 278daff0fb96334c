package dump

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/infrastructure/parsers"
)

// ErrEmptyStringTable is returned for a string table that holds no strings.
var ErrEmptyStringTable = errors.New("string table is empty")

// decoder turns the payload of one raw asset into its decoded form.
type decoder func(asset *parsers.RawAsset) (any, error)

var decoders = make(map[entities.AssetKind]decoder)

// setDecoder registers the decoder of an asset kind.
func setDecoder(kind entities.AssetKind, d decoder) {
	decoders[kind.Normalize()] = d
}

func init() {
	setDecoder(entities.KindWorld, decodeWorld)
	setDecoder(entities.KindArea, decodeArea)
	setDecoder(entities.KindStringTable, decodeStrings)
}

func decodeWorld(asset *parsers.RawAsset) (any, error) {
	if asset.World == nil {
		return nil, errors.New("missing world payload")
	}
	world := *asset.World
	world.ID = asset.ID
	return &world, nil
}

func decodeArea(asset *parsers.RawAsset) (any, error) {
	if asset.Area == nil {
		return nil, errors.New("missing area payload")
	}
	area := *asset.Area
	area.ID = asset.ID
	return &area, nil
}

// stringTable is the decoded form of a string table: its primary string,
// or an error explaining why it has none.
type stringTable struct {
	Primary string
	Err     error
}

func decodeStrings(asset *parsers.RawAsset) (any, error) {
	s := asset.Strings
	if s == nil {
		return nil, errors.New("missing strings payload")
	}

	if s.Raw != "" {
		raw, err := base64.StdEncoding.DecodeString(s.Raw)
		if err != nil {
			return nil, fmt.Errorf("decoding base64: %w", err)
		}
		enc, err := LookupEncoding(s.Encoding)
		if err != nil {
			return nil, err
		}
		primary, err := decodeString(enc, raw)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", s.Encoding, err)
		}
		return &stringTable{Primary: primary}, nil
	}

	if len(s.Tables) == 0 || len(s.Tables[0]) == 0 {
		return &stringTable{Err: ErrEmptyStringTable}, nil
	}
	return &stringTable{Primary: s.Tables[0][0]}, nil
}
