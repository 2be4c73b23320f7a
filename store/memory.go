package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps puzzles in process memory. Useful for tests and for
// callers that only need a session-scoped cache.
type MemoryStore struct {
	mu      sync.RWMutex
	puzzles map[string]*Puzzle
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{puzzles: make(map[string]*Puzzle)}
}

// Save stores a deep copy of p, assigning ID and CreatedAt when unset.
func (m *MemoryStore) Save(ctx context.Context, p *Puzzle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil || len(p.Snapshot) == 0 {
		return ErrNilPuzzle
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	cp := *p
	cp.Snapshot = append([]byte(nil), p.Snapshot...)

	m.mu.Lock()
	m.puzzles[cp.ID] = &cp
	m.mu.Unlock()
	return nil
}

// Load retrieves a puzzle by ID.
func (m *MemoryStore) Load(ctx context.Context, id string) (*Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	p, ok := m.puzzles[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	cp := *p
	cp.Snapshot = append([]byte(nil), p.Snapshot...)
	return &cp, nil
}

// List returns metadata for all stored puzzles, newest first.
func (m *MemoryStore) List(ctx context.Context) ([]Meta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	metas := make([]Meta, 0, len(m.puzzles))
	for _, p := range m.puzzles {
		metas = append(metas, Meta{ID: p.ID, Tier: p.Tier, CreatedAt: p.CreatedAt})
	}
	m.mu.RUnlock()

	sort.Slice(metas, func(i, j int) bool {
		if metas[i].CreatedAt.Equal(metas[j].CreatedAt) {
			return metas[i].ID < metas[j].ID
		}
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }
