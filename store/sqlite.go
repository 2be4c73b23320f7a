package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/sudoku/solve"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists puzzles in a single-table SQLite database. The
// driver is pure Go (modernc.org/sqlite), so no cgo is involved.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the database at path and
// migrates its schema. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return s, nil
}

// migrate creates the puzzles table if it does not exist.
func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id         TEXT PRIMARY KEY,
		seed       INTEGER NOT NULL,
		tier       INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		snapshot   BLOB NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save persists p, assigning ID and CreatedAt when unset. Saving an
// existing ID overwrites the previous record.
func (s *SQLiteStore) Save(ctx context.Context, p *Puzzle) error {
	if p == nil || len(p.Snapshot) == 0 {
		return ErrNilPuzzle
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO puzzles (id, seed, tier, created_at, snapshot)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Seed, int(p.Tier), p.CreatedAt, p.Snapshot,
	)
	return err
}

// Load retrieves a puzzle by ID.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, seed, tier, created_at, snapshot FROM puzzles WHERE id = ?`, id)

	var p Puzzle
	var tier int
	if err := row.Scan(&p.ID, &p.Seed, &tier, &p.CreatedAt, &p.Snapshot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: load %q: %w", id, err)
	}
	p.Tier = solve.Tier(tier)
	return &p, nil
}

// List returns metadata for all stored puzzles, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]Meta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tier, created_at FROM puzzles ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		var m Meta
		var tier int
		if err := rows.Scan(&m.ID, &tier, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: list scan: %w", err)
		}
		m.Tier = solve.Tier(tier)
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
