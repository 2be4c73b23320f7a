// Package generate defines sentinel errors and tier targets for puzzle
// generation.
package generate

import (
	"errors"

	"github.com/katalvlaran/sudoku/solve"
)

// Sentinel errors for generation.
var (
	// ErrInvalidTier indicates a difficulty tier outside 1–5.
	ErrInvalidTier = errors.New("generate: difficulty tier must be between 1 and 5")
	// ErrSeedExhausted indicates the full-board retry budget ran out.
	ErrSeedExhausted = errors.New("generate: could not build a solved board from random seeds")
)

// maxSeedAttempts bounds the full-board retry loop. A single placement
// on an empty board is always completable, so one attempt suffices in
// practice; the bound exists to make the loop provably finite.
const maxSeedAttempts = 32

// maxCarveAttempts bounds the carving retry loop: how many fresh cell
// permutations a Generate call may try before settling for the
// closest-graded puzzle.
const maxCarveAttempts = 16

// baseRemovals is the carving floor for TierBeginner; each tier above
// it carves removalStep cells deeper before grading begins.
const (
	baseRemovals = 40
	removalStep  = 5
)

// removalFloor maps a tier to the minimum number of cells carving
// empties before the grade is consulted: 40, 45, 50, 55, 60 for tiers
// 1–5. The floor keeps low tiers from stopping on a near-full board and
// pushes high tiers deep enough that grading has something to measure.
func removalFloor(t solve.Tier) int {
	return baseRemovals + removalStep*(int(t)-1)
}
