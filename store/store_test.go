package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/generate"
	"github.com/katalvlaran/sudoku/solve"
	"github.com/katalvlaran/sudoku/store"
)

// snapshotFixture serializes a freshly generated puzzle.
func snapshotFixture(t *testing.T, seed int64, tier solve.Tier) []byte {
	t.Helper()
	b, err := generate.GeneratePuzzle(tier, seed)
	require.NoError(t, err)
	raw, err := b.Serialize()
	require.NoError(t, err)
	return raw
}

// runStoreTests exercises the Store contract against any implementation.
func runStoreTests(t *testing.T, open func(t *testing.T) store.Store) {
	ctx := context.Background()

	t.Run("SaveNil", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		assert.ErrorIs(t, s.Save(ctx, nil), store.ErrNilPuzzle)
		assert.ErrorIs(t, s.Save(ctx, &store.Puzzle{}), store.ErrNilPuzzle)
	})

	t.Run("SaveAssignsIdentity", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		p := &store.Puzzle{
			Seed:     42,
			Tier:     solve.TierBeginner,
			Snapshot: snapshotFixture(t, 42, solve.TierBeginner),
		}
		require.NoError(t, s.Save(ctx, p))
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("SaveLoadRoundTrip", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		snap := snapshotFixture(t, 42, solve.TierMedium)
		p := &store.Puzzle{Seed: 42, Tier: solve.TierMedium, Snapshot: snap}
		require.NoError(t, s.Save(ctx, p))

		got, err := s.Load(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, int64(42), got.Seed)
		assert.Equal(t, solve.TierMedium, got.Tier)
		assert.Equal(t, snap, got.Snapshot)
		assert.WithinDuration(t, p.CreatedAt, got.CreatedAt, time.Second)

		// The snapshot round-trips through the board codec.
		b, err := board.Deserialize(got.Snapshot)
		require.NoError(t, err)
		assert.True(t, b.IsValid())
	})

	t.Run("LoadMissing", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		got, err := s.Load(ctx, "no-such-id")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		snap := snapshotFixture(t, 42, solve.TierBeginner)
		p := &store.Puzzle{ID: "fixed", Seed: 1, Tier: solve.TierBeginner, Snapshot: snap}
		require.NoError(t, s.Save(ctx, p))

		p.Seed = 2
		p.Tier = solve.TierExpert
		require.NoError(t, s.Save(ctx, p))

		got, err := s.Load(ctx, "fixed")
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Seed)
		assert.Equal(t, solve.TierExpert, got.Tier)

		metas, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, metas, 1)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		snap := snapshotFixture(t, 42, solve.TierBeginner)
		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		for i, id := range []string{"a", "b", "c"} {
			p := &store.Puzzle{
				ID:        id,
				Seed:      int64(i),
				Tier:      solve.TierBeginner,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
				Snapshot:  snap,
			}
			require.NoError(t, s.Save(ctx, p))
		}

		metas, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, metas, 3)
		assert.Equal(t, "c", metas[0].ID)
		assert.Equal(t, "b", metas[1].ID)
		assert.Equal(t, "a", metas[2].ID)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) store.Store {
		return store.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, func(t *testing.T) store.Store {
		s, err := store.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return s
	})
}

// TestMemoryStore_Isolation: mutating a loaded puzzle never leaks back
// into the store.
func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	defer s.Close()

	snap := snapshotFixture(t, 42, solve.TierBeginner)
	p := &store.Puzzle{Snapshot: snap, Tier: solve.TierBeginner}
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	got.Snapshot[0] ^= 0xFF

	again, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, snap, again.Snapshot)
}
