// Package dump serves an asset graph from a decoded asset dump file.
package dump

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
	"github.com/ersonp/assetids/internal/infrastructure/parsers"
)

// Graph is an in-memory ports.AssetGraph built from a dump. It is
// read-only after construction and safe for concurrent use.
type Graph struct {
	game    string
	ids     []entities.AssetID
	kinds   map[entities.AssetID]entities.AssetKind
	decoded map[entities.AssetID]any
}

var _ ports.AssetGraph = (*Graph)(nil)

// Load reads and decodes the dump at path. The format is chosen from the
// file extension.
func Load(path string) (*Graph, error) {
	parser := parsers.ForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported dump format: %s (supported: .json, .yaml, .yml)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	defer f.Close()

	raw, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading dump %s: %w", path, err)
	}
	return New(raw)
}

// New decodes every asset of raw. Duplicate identifiers and malformed
// payloads of known kinds are errors. Assets of other kinds are kept with
// their kind only.
func New(raw *parsers.RawDump) (*Graph, error) {
	g := &Graph{
		game:    raw.Game,
		kinds:   make(map[entities.AssetID]entities.AssetKind, len(raw.Assets)),
		decoded: make(map[entities.AssetID]any),
	}

	for i := range raw.Assets {
		asset := &raw.Assets[i]
		kind := entities.AssetKind(asset.Kind).Normalize()
		if kind == "" {
			return nil, fmt.Errorf("asset #%d (%s): missing kind", asset.Index, asset.ID)
		}
		if prev, exists := g.kinds[asset.ID]; exists {
			return nil, fmt.Errorf("asset #%d: duplicate id %s (already a %s)", asset.Index, asset.ID, prev)
		}
		g.kinds[asset.ID] = kind
		g.ids = append(g.ids, asset.ID)

		d, ok := decoders[kind]
		if !ok {
			continue
		}
		value, err := d(asset)
		if err != nil {
			return nil, fmt.Errorf("asset #%d (%s %s): %w", asset.Index, kind, asset.ID, err)
		}
		g.decoded[asset.ID] = value
	}

	sort.Slice(g.ids, func(i, j int) bool { return g.ids[i] < g.ids[j] })
	return g, nil
}

// Game returns the title named by the dump, if any.
func (g *Graph) Game() string {
	return g.game
}

// Len returns the number of assets in the graph.
func (g *Graph) Len() int {
	return len(g.ids)
}

// AssetIDs returns every identifier in ascending order.
func (g *Graph) AssetIDs(ctx context.Context) ([]entities.AssetID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := make([]entities.AssetID, len(g.ids))
	copy(ids, g.ids)
	return ids, nil
}

// AssetKind returns the kind tag of an asset.
func (g *Graph) AssetKind(_ context.Context, id entities.AssetID) (entities.AssetKind, error) {
	kind, ok := g.kinds[id]
	if !ok {
		return "", fmt.Errorf("asset %s: %w", id, ports.ErrUnknownAsset)
	}
	return kind, nil
}

// World returns a world descriptor.
func (g *Graph) World(_ context.Context, id entities.AssetID) (*entities.World, error) {
	w, err := lookup[*entities.World](g, id, entities.KindWorld)
	if err != nil {
		return nil, err
	}
	c := *w
	c.Areas = append([]entities.AreaEntry(nil), w.Areas...)
	return &c, nil
}

// Area returns an area and its script layers.
func (g *Graph) Area(_ context.Context, id entities.AssetID) (*entities.Area, error) {
	return lookup[*entities.Area](g, id, entities.KindArea)
}

// String returns the primary string of a string table.
func (g *Graph) String(_ context.Context, id entities.AssetID) (string, error) {
	t, err := lookup[*stringTable](g, id, entities.KindStringTable)
	if err != nil {
		return "", err
	}
	if t.Err != nil {
		return "", fmt.Errorf("string table %s: %w", id, t.Err)
	}
	return t.Primary, nil
}

// Asset returns the decoded payload of any asset, or nil for kinds that
// carry no payload.
func (g *Graph) Asset(id entities.AssetID) (entities.AssetKind, any, error) {
	kind, ok := g.kinds[id]
	if !ok {
		return "", nil, fmt.Errorf("asset %s: %w", id, ports.ErrUnknownAsset)
	}
	if t, ok := g.decoded[id].(*stringTable); ok {
		if t.Err != nil {
			return kind, nil, t.Err
		}
		return kind, t.Primary, nil
	}
	return kind, g.decoded[id], nil
}

// lookup returns the decoded payload of id, checking its kind.
func lookup[T any](g *Graph, id entities.AssetID, want entities.AssetKind) (T, error) {
	var zero T
	kind, ok := g.kinds[id]
	if !ok {
		return zero, fmt.Errorf("asset %s: %w", id, ports.ErrUnknownAsset)
	}
	if kind != want {
		return zero, fmt.Errorf("asset %s is a %s, not a %s", id, kind, want)
	}
	v, ok := g.decoded[id].(T)
	if !ok {
		return zero, fmt.Errorf("asset %s: no decoded %s payload", id, want)
	}
	return v, nil
}
