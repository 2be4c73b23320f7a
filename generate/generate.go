package generate

import (
	"math/rand"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solve"
)

// Generator produces puzzles with a unique solution. All randomness
// flows from the seed passed to New, so a Generator is a reproducible
// puzzle stream: the same seed yields the same boards in the same order.
type Generator struct {
	rng    *rand.Rand
	solver *solve.Solver
}

// New returns a Generator over a deterministic RNG. Seed 0 selects the
// fixed default stream.
func New(seed int64) *Generator {
	return &Generator{
		rng:    rngFromSeed(seed),
		solver: solve.NewSolver(),
	}
}

// GeneratePuzzle is the one-call form: a fresh Generator seeded with
// seed, asked for one puzzle at tier.
func GeneratePuzzle(tier solve.Tier, seed int64) (*board.Board, error) {
	return New(seed).Generate(tier)
}

// Generate builds one puzzle whose graded difficulty lands within one
// tier of the request.
//
// It solves a randomly seeded empty board into a full solution, then
// carves it: removals follow a random permutation of all 81 cells, each
// kept only while the puzzle retains a unique solution, and once the
// tier's removal floor is passed, the puzzle is regraded after every
// removal and carving stops as soon as the grade reaches the request.
// A carve that exhausts every cell without reaching the grade, or that
// overshoots it by more than one tier, is retried with a fresh
// permutation; after the retry budget the closest-graded puzzle wins.
func (g *Generator) Generate(tier solve.Tier) (*board.Board, error) {
	if tier < solve.TierBeginner || tier > solve.TierExpert {
		return nil, ErrInvalidTier
	}

	full, err := g.fullBoard()
	if err != nil {
		return nil, err
	}

	var best *board.Board
	bestDist := int(solve.TierExpert) + 1
	for attempt := 0; attempt < maxCarveAttempts; attempt++ {
		puzzle, rated, err := g.carve(full, tier)
		if err != nil {
			return nil, err
		}
		d := tierDistance(rated, tier)
		if d <= 1 {
			return puzzle, nil
		}
		if d < bestDist {
			best, bestDist = puzzle, d
		}
	}
	return best, nil
}

// carve runs one carving pass over a fresh clone of full and returns
// the resulting puzzle with its graded tier. Every surviving value is
// flagged as a given.
func (g *Generator) carve(full *board.Board, tier solve.Tier) (*board.Board, solve.Tier, error) {
	puzzle := full.Clone()
	floor := removalFloor(tier)
	removed := 0
	rated := solve.TierUnknown

	for _, cell := range cellPermutation(g.rng) {
		v := puzzle.Value(cell.Row, cell.Col)
		if v == board.Empty {
			continue
		}
		puzzle.ClearValue(cell.Row, cell.Col)
		if !g.solver.HasUniqueSolution(puzzle) {
			// Removal opened a second solution; restore.
			puzzle.SetValue(cell.Row, cell.Col, v)
			continue
		}
		removed++
		if removed < floor {
			continue
		}
		r, err := g.grade(puzzle)
		if err != nil {
			return nil, solve.TierUnknown, err
		}
		rated = r
		if rated >= tier {
			break
		}
	}

	if rated == solve.TierUnknown {
		// Carving exhausted below the floor; grade what remains.
		r, err := g.grade(puzzle)
		if err != nil {
			return nil, solve.TierUnknown, err
		}
		rated = r
	}

	puzzle.MarkGivens()
	return puzzle, rated, nil
}

// grade rates the puzzle as a solver would encounter it.
func (g *Generator) grade(puzzle *board.Board) (solve.Tier, error) {
	g.solver.SetBoard(puzzle)
	return g.solver.CalculateDifficulty()
}

// tierDistance is the absolute tier difference.
func tierDistance(a, b solve.Tier) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

// fullBoard produces a completely solved board by placing one random
// value on an empty board and solving from there. An unsolvable seed
// should not occur on an empty board; the loop retries regardless.
func (g *Generator) fullBoard() (*board.Board, error) {
	s := solve.NewSolver()
	for attempt := 0; attempt < maxSeedAttempts; attempt++ {
		b := board.New()
		r := g.rng.Intn(board.Size)
		c := g.rng.Intn(board.Size)
		v := g.rng.Intn(board.MaxValue) + 1
		b.SetValue(r, c, v)

		s.SetBoard(b)
		res, err := s.Solve(solve.DefaultOptions())
		if err != nil {
			return nil, err
		}
		if res.Solved {
			return res.Solutions[0], nil
		}
	}
	return nil, ErrSeedExhausted
}
