// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"errors"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// ErrUnknownAsset is returned when a reference points to an identifier absent from the graph.
var ErrUnknownAsset = errors.New("unknown asset id")

// AssetGraph is a read-only view over every asset of one game title.
// Implementations must not mutate the graph while a run is in progress.
type AssetGraph interface {
	// AssetIDs enumerates every asset identifier in the graph.
	AssetIDs(ctx context.Context) ([]entities.AssetID, error)

	// AssetKind returns the kind tag of an asset.
	AssetKind(ctx context.Context, id entities.AssetID) (entities.AssetKind, error)

	// World decodes a world descriptor.
	World(ctx context.Context, id entities.AssetID) (*entities.World, error)

	// Area decodes an area and its script layers.
	Area(ctx context.Context, id entities.AssetID) (*entities.Area, error)

	// String resolves a string table to its primary string.
	// Returns an error wrapping ErrUnknownAsset when id is not in the graph.
	String(ctx context.Context, id entities.AssetID) (string, error)
}
