package ports

import (
	"context"
	"time"

	"github.com/ersonp/assetids/internal/domain/entities"
)

// TableWriter serializes a run's logical output.
type TableWriter interface {
	// Format returns the writer's output format name.
	Format() string

	// Write replaces any previously generated tables in dir with output.
	// It returns the paths it wrote.
	Write(dir string, output *entities.Output) ([]string, error)
}

// StoredRun describes a persisted extraction run.
type StoredRun struct {
	ID        string
	Game      entities.Game
	Worlds    int
	CreatedAt time.Time
}

// TableStore persists the tables of the latest run per title.
type TableStore interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// SaveRun replaces the stored tables of output.Game with output.
	SaveRun(ctx context.Context, output *entities.Output) (*StoredRun, error)

	// LatestRun returns the stored run of a game, or nil if none exists.
	LatestRun(ctx context.Context, game entities.Game) (*StoredRun, error)

	// LoadGlobal returns the stored global table of a game, or nil if none exists.
	LoadGlobal(ctx context.Context, game entities.Game) (*entities.GlobalModule, error)

	// LoadWorld returns the stored dedicated table of a world, or nil if none exists.
	LoadWorld(ctx context.Context, game entities.Game, worldName string) (*entities.WorldModule, error)
}
