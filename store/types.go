// Package store defines the persistence contract and sentinel errors
// for puzzle storage.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/sudoku/solve"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates the requested puzzle ID does not exist.
	ErrNotFound = errors.New("store: puzzle not found")
	// ErrNilPuzzle indicates Save was handed nothing to persist.
	ErrNilPuzzle = errors.New("store: puzzle is nil or has an empty snapshot")
)

// Puzzle is a persisted puzzle: the serialized board snapshot plus the
// metadata that produced it. Snapshot is stored and returned verbatim —
// board.Deserialize(p.Snapshot) reproduces the saved board bit-for-bit.
type Puzzle struct {
	ID        string
	Seed      int64
	Tier      solve.Tier
	CreatedAt time.Time
	Snapshot  []byte
}

// Meta is a lightweight listing entry.
type Meta struct {
	ID        string
	Tier      solve.Tier
	CreatedAt time.Time
}

// Store persists and retrieves puzzles.
type Store interface {
	// Save persists p, assigning a fresh UUID when p.ID is empty and a
	// creation time when p.CreatedAt is zero.
	Save(ctx context.Context, p *Puzzle) error
	// Load retrieves a puzzle by ID; ErrNotFound when absent.
	Load(ctx context.Context, id string) (*Puzzle, error)
	// List returns metadata for every stored puzzle, newest first.
	List(ctx context.Context) ([]Meta, error)
	// Close releases underlying resources.
	Close() error
}
