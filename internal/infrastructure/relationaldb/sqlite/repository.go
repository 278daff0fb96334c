// Package sqlite provides a SQLite implementation of the TableStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/assetids/internal/domain/entities"
	"github.com/ersonp/assetids/internal/domain/ports"
	"github.com/ersonp/assetids/internal/infrastructure/config"
)

const memoryPath = ":memory:"

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.TableStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

var _ ports.TableStore = (*Repository)(nil)

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.StoreConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if cfg.Path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to :memory: opens a separate database
	if cfg.Path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- One row per game: the latest run
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		game TEXT NOT NULL UNIQUE,
		worlds INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Global table entries (_MLVL and _MAPW); module is set on _MLVL rows
	CREATE TABLE IF NOT EXISTS world_tables (
		run_id TEXT NOT NULL,
		suffix TEXT NOT NULL,
		name TEXT NOT NULL,
		symbol TEXT NOT NULL,
		asset_id INTEGER NOT NULL,
		module TEXT,
		PRIMARY KEY (run_id, suffix, name)
	);

	-- Dedicated table entries (_MREA and _MAPA)
	CREATE TABLE IF NOT EXISTS area_tables (
		run_id TEXT NOT NULL,
		world_name TEXT NOT NULL,
		suffix TEXT NOT NULL,
		name TEXT NOT NULL,
		symbol TEXT NOT NULL,
		asset_id INTEGER NOT NULL,
		PRIMARY KEY (run_id, world_name, suffix, name)
	);

	CREATE TABLE IF NOT EXISTS dock_tables (
		run_id TEXT NOT NULL,
		world_name TEXT NOT NULL,
		area_name TEXT NOT NULL,
		dock_name TEXT NOT NULL,
		dock_number INTEGER NOT NULL,
		PRIMARY KEY (run_id, world_name, area_name, dock_name)
	);
	CREATE INDEX IF NOT EXISTS idx_dock_tables_area ON dock_tables(run_id, world_name, area_name);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveRun replaces the stored tables of output.Game in a single transaction.
func (r *Repository) SaveRun(ctx context.Context, output *entities.Output) (*ports.StoredRun, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteRuns(ctx, tx, output.Game); err != nil {
		return nil, err
	}

	run := &ports.StoredRun{
		ID:        generateUUID(),
		Game:      output.Game,
		Worlds:    len(output.Worlds),
		CreatedAt: timeNow(),
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, game, worlds, created_at) VALUES (?, ?, ?, ?)`,
		run.ID, string(run.Game), run.Worlds, run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}

	if err := saveGlobal(ctx, tx, run.ID, &output.Global); err != nil {
		return nil, err
	}
	for i := range output.Worlds {
		if err := saveWorld(ctx, tx, run.ID, &output.Worlds[i]); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing run: %w", err)
	}
	return run, nil
}

// deleteRuns removes every stored run of a game with its tables.
func deleteRuns(ctx context.Context, tx *sql.Tx, game entities.Game) error {
	for _, table := range []string{"dock_tables", "area_tables", "world_tables"} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE run_id IN (SELECT id FROM runs WHERE game = ?)`, table)
		if _, err := tx.ExecContext(ctx, query, string(game)); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE game = ?`, string(game)); err != nil {
		return fmt.Errorf("clearing runs: %w", err)
	}
	return nil
}

func saveGlobal(ctx context.Context, tx *sql.Tx, runID string, global *entities.GlobalModule) error {
	modules := make(map[string]string, len(global.Dedicated))
	for _, d := range global.Dedicated {
		modules[d.WorldName] = d.Module
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO world_tables (run_id, suffix, name, symbol, asset_id, module)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing world insert: %w", err)
	}
	defer stmt.Close()

	for _, listing := range []entities.TableListing{global.Worlds, global.Maps} {
		for i, name := range listing.Names {
			var module sql.NullString
			if listing.Suffix == entities.SuffixWorld {
				if m, ok := modules[name.Name]; ok {
					module = sql.NullString{String: m, Valid: true}
				}
			}
			_, err := stmt.ExecContext(ctx, runID, listing.Suffix, name.Name, listing.Constants[i].Symbol, int64(name.ID), module)
			if err != nil {
				return fmt.Errorf("saving world entry %q: %w", name.Name, err)
			}
		}
	}
	return nil
}

func saveWorld(ctx context.Context, tx *sql.Tx, runID string, world *entities.WorldModule) error {
	areaStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO area_tables (run_id, world_name, suffix, name, symbol, asset_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing area insert: %w", err)
	}
	defer areaStmt.Close()

	for _, listing := range []entities.TableListing{world.Areas, world.Maps} {
		for i, name := range listing.Names {
			_, err := areaStmt.ExecContext(ctx, runID, world.WorldName, listing.Suffix, name.Name, listing.Constants[i].Symbol, int64(name.ID))
			if err != nil {
				return fmt.Errorf("saving area entry %q of world %q: %w", name.Name, world.WorldName, err)
			}
		}
	}

	dockStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dock_tables (run_id, world_name, area_name, dock_name, dock_number)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing dock insert: %w", err)
	}
	defer dockStmt.Close()

	for _, area := range world.Docks {
		for _, d := range area.Docks {
			_, err := dockStmt.ExecContext(ctx, runID, world.WorldName, area.Area, d.Name, d.Number)
			if err != nil {
				return fmt.Errorf("saving dock %q of area %q: %w", d.Name, area.Area, err)
			}
		}
	}
	return nil
}

// LatestRun returns the stored run of a game, or nil if none exists.
func (r *Repository) LatestRun(ctx context.Context, game entities.Game) (*ports.StoredRun, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, game, worlds, created_at
		FROM runs
		WHERE game = ?
	`, string(game))

	var run ports.StoredRun
	var storedGame string
	err := row.Scan(&run.ID, &storedGame, &run.Worlds, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	run.Game = entities.Game(storedGame)
	return &run, nil
}

// LoadGlobal returns the stored global table of a game, or nil if none exists.
func (r *Repository) LoadGlobal(ctx context.Context, game entities.Game) (*entities.GlobalModule, error) {
	run, err := r.LatestRun(ctx, game)
	if err != nil || run == nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT suffix, name, symbol, asset_id, module
		FROM world_tables
		WHERE run_id = ?
		ORDER BY suffix, name
	`, run.ID)
	if err != nil {
		return nil, fmt.Errorf("querying world tables: %w", err)
	}
	defer rows.Close()

	global := &entities.GlobalModule{
		Worlds: newListing(entities.SuffixWorld),
		Maps:   newListing(entities.SuffixWorldMap),
	}
	for rows.Next() {
		var suffix, name, symbol string
		var id int64
		var module sql.NullString
		if err := rows.Scan(&suffix, &name, &symbol, &id, &module); err != nil {
			return nil, fmt.Errorf("scanning world entry: %w", err)
		}
		switch suffix {
		case entities.SuffixWorld:
			appendEntry(&global.Worlds, name, symbol, id)
			if module.Valid {
				global.Dedicated = append(global.Dedicated, entities.DedicatedEntry{WorldName: name, Module: module.String})
			}
		case entities.SuffixWorldMap:
			appendEntry(&global.Maps, name, symbol, id)
		}
	}
	return global, rows.Err()
}

// LoadWorld returns the stored dedicated table of a world, or nil if none exists.
func (r *Repository) LoadWorld(ctx context.Context, game entities.Game, worldName string) (*entities.WorldModule, error) {
	run, err := r.LatestRun(ctx, game)
	if err != nil || run == nil {
		return nil, err
	}

	var module sql.NullString
	err = r.db.QueryRowContext(ctx, `
		SELECT module FROM world_tables
		WHERE run_id = ? AND suffix = ? AND name = ?
	`, run.ID, entities.SuffixWorld, worldName).Scan(&module)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning world: %w", err)
	}

	world := &entities.WorldModule{
		WorldName: worldName,
		Module:    module.String,
		Areas:     newListing(entities.SuffixArea),
		Maps:      newListing(entities.SuffixAreaMap),
		Docks:     []entities.AreaDocks{},
	}
	if err := r.loadAreas(ctx, run.ID, world); err != nil {
		return nil, err
	}
	if err := r.loadDocks(ctx, run.ID, world); err != nil {
		return nil, err
	}
	return world, nil
}

func (r *Repository) loadAreas(ctx context.Context, runID string, world *entities.WorldModule) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT suffix, name, symbol, asset_id
		FROM area_tables
		WHERE run_id = ? AND world_name = ?
		ORDER BY suffix, name
	`, runID, world.WorldName)
	if err != nil {
		return fmt.Errorf("querying area tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var suffix, name, symbol string
		var id int64
		if err := rows.Scan(&suffix, &name, &symbol, &id); err != nil {
			return fmt.Errorf("scanning area entry: %w", err)
		}
		switch suffix {
		case entities.SuffixArea:
			appendEntry(&world.Areas, name, symbol, id)
		case entities.SuffixAreaMap:
			appendEntry(&world.Maps, name, symbol, id)
		}
	}
	return rows.Err()
}

// loadDocks rebuilds the dock listing of every area of world. Areas without
// docks get an empty listing.
func (r *Repository) loadDocks(ctx context.Context, runID string, world *entities.WorldModule) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT area_name, dock_name, dock_number
		FROM dock_tables
		WHERE run_id = ? AND world_name = ?
		ORDER BY area_name, dock_number, dock_name
	`, runID, world.WorldName)
	if err != nil {
		return fmt.Errorf("querying dock tables: %w", err)
	}
	defer rows.Close()

	byArea := make(map[string][]entities.DockEntry)
	for rows.Next() {
		var area string
		var d entities.DockEntry
		if err := rows.Scan(&area, &d.Name, &d.Number); err != nil {
			return fmt.Errorf("scanning dock: %w", err)
		}
		byArea[area] = append(byArea[area], d)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, area := range world.Areas.Names {
		docks := byArea[area.Name]
		if docks == nil {
			docks = []entities.DockEntry{}
		}
		world.Docks = append(world.Docks, entities.AreaDocks{Area: area.Name, Docks: docks})
	}
	return nil
}

func newListing(suffix string) entities.TableListing {
	return entities.TableListing{
		Suffix:    suffix,
		Constants: []entities.ConstantEntry{},
		Names:     []entities.NameEntry{},
	}
}

func appendEntry(listing *entities.TableListing, name, symbol string, id int64) {
	assetID := entities.AssetID(uint32(id))
	listing.Constants = append(listing.Constants, entities.ConstantEntry{Symbol: symbol, ID: assetID})
	listing.Names = append(listing.Names, entities.NameEntry{Name: name, ID: assetID})
}
