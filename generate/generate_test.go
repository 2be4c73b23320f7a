package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/generate"
	"github.com/katalvlaran/sudoku/solve"
)

func TestGenerate_InvalidTier(t *testing.T) {
	g := generate.New(1)

	for _, tier := range []solve.Tier{solve.TierUnknown, solve.Tier(-1), solve.Tier(6)} {
		b, err := g.Generate(tier)
		assert.Nil(t, b, "tier %d", tier)
		assert.ErrorIs(t, err, generate.ErrInvalidTier, "tier %d", tier)
	}
}

// TestGenerate_Beginner: a generated puzzle is valid, uniquely
// solvable, and every surviving value is flagged as a given.
func TestGenerate_Beginner(t *testing.T) {
	g := generate.New(42)
	b, err := g.Generate(solve.TierBeginner)
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.True(t, b.IsValid())
	assert.False(t, b.IsComplete())
	assert.True(t, solve.NewSolver().HasUniqueSolution(b))

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Value(r, c) != board.Empty {
				assert.True(t, b.IsGiven(r, c), "cell (%d,%d)", r, c)
			} else {
				assert.False(t, b.IsGiven(r, c), "cell (%d,%d)", r, c)
			}
		}
	}
}

// TestGenerate_Reproducible: the same seed yields byte-identical
// puzzles.
func TestGenerate_Reproducible(t *testing.T) {
	first, err := generate.New(42).Generate(solve.TierMedium)
	require.NoError(t, err)
	second, err := generate.New(42).Generate(solve.TierMedium)
	require.NoError(t, err)

	raw1, err := first.Serialize()
	require.NoError(t, err)
	raw2, err := second.Serialize()
	require.NoError(t, err)
	assert.Equal(t, raw1, raw2)

	other, err := generate.New(7).Generate(solve.TierMedium)
	require.NoError(t, err)
	raw3, err := other.Serialize()
	require.NoError(t, err)
	assert.NotEqual(t, raw1, raw3)
}

// TestGenerate_TierMonotonic: across tiers 1→5, given-cell counts are
// non-increasing on average.
func TestGenerate_TierMonotonic(t *testing.T) {
	seeds := []int64{11, 23, 42}
	givens := func(tier solve.Tier) int {
		total := 0
		for _, seed := range seeds {
			b, err := generate.New(seed).Generate(tier)
			require.NoError(t, err)
			total += board.CellCount - b.EmptyCount()
		}
		return total
	}

	g1 := givens(solve.TierBeginner)
	g3 := givens(solve.TierMedium)
	g5 := givens(solve.TierExpert)

	assert.GreaterOrEqual(t, g1, g3)
	assert.GreaterOrEqual(t, g3, g5)
}

// TestGenerate_DifficultyWithinOne: a generated puzzle grades within one
// tier of the request.
func TestGenerate_DifficultyWithinOne(t *testing.T) {
	for _, seed := range []int64{1, 8} {
		g := generate.New(seed)
		for tier := solve.TierBeginner; tier <= solve.TierExpert; tier++ {
			b, err := g.Generate(tier)
			require.NoError(t, err, "seed %d tier %v", seed, tier)

			s := solve.NewSolver()
			s.SetBoard(b)
			rated, err := s.CalculateDifficulty()
			require.NoError(t, err, "seed %d tier %v", seed, tier)
			require.NotEqual(t, solve.TierUnknown, rated, "seed %d tier %v: puzzle did not grade", seed, tier)

			dist := int(rated) - int(tier)
			if dist < 0 {
				dist = -dist
			}
			assert.LessOrEqual(t, dist, 1, "seed %d: requested %v, rated %v", seed, tier, rated)
		}
	}
}

// TestGenerate_SolvableWithDefaults: every generated puzzle solves under
// the default options, backjumping included.
func TestGenerate_SolvableWithDefaults(t *testing.T) {
	for _, seed := range []int64{2, 5} {
		for _, tier := range []solve.Tier{solve.TierHard, solve.TierExpert} {
			b, err := generate.New(seed).Generate(tier)
			require.NoError(t, err)

			s := solve.NewSolver()
			s.SetBoard(b)
			res, err := s.Solve(solve.DefaultOptions())
			require.NoError(t, err)
			assert.True(t, res.Solved, "seed %d tier %v: default solve lost the solution", seed, tier)
			assert.Equal(t, solve.ReasonSolved, res.Reason)
		}
	}
}

// TestGenerate_RemovalBound: tier 1 clears at most its removal target.
func TestGenerate_RemovalBound(t *testing.T) {
	b, err := generate.New(3).Generate(solve.TierBeginner)
	require.NoError(t, err)
	assert.LessOrEqual(t, b.EmptyCount(), 40)
	assert.Greater(t, b.EmptyCount(), 0)
}

func TestGeneratePuzzle(t *testing.T) {
	b, err := generate.GeneratePuzzle(solve.TierEasy, 42)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, solve.NewSolver().HasUniqueSolution(b))

	again, err := generate.GeneratePuzzle(solve.TierEasy, 42)
	require.NoError(t, err)
	raw1, err := b.Serialize()
	require.NoError(t, err)
	raw2, err := again.Serialize()
	require.NoError(t, err)
	assert.Equal(t, raw1, raw2)
}
