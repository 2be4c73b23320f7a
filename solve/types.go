// Package solve defines options, results, and sentinel errors for the
// propagation and search engine.
package solve

import (
	"errors"
	"time"

	"github.com/katalvlaran/sudoku/board"
)

// ErrNoBoard is returned when Solve or CalculateDifficulty runs before
// any board has been assigned with SetBoard.
var ErrNoBoard = errors.New("solve: no board set")

// Result reasons. Reason is informational; callers branch on Solved and
// Count, not on string comparison.
const (
	// ReasonSolved marks a successful single-solution outcome.
	ReasonSolved = "solved"
	// ReasonMultipleSolutions marks a multi-solution outcome (FindAll).
	ReasonMultipleSolutions = "multiple solutions"
	// ReasonNoSolution marks exhaustion without any solution.
	ReasonNoSolution = "no solution found"
	// ReasonInvalidBoard marks a board that failed IsValid before search.
	ReasonInvalidBoard = "Invalid initial board"
)

// Options configures a Solve call.
//
// Fields:
//   - RecordSteps    — append a Step to the trace for every technique
//     application and search attempt, in firing order.
//   - FindAll        — keep searching after the first solution and
//     accumulate up to MaxSolutions of them.
//   - MaxSolutions   — accumulation bound in FindAll mode; values below 2
//     are raised to 2 (enough to disprove uniqueness).
//   - UseBackjumping — skip choice points not implicated in a failure
//     using conflict sets. Ignored in FindAll mode, where exhaustive
//     sibling coverage is required.
type Options struct {
	RecordSteps    bool
	FindAll        bool
	MaxSolutions   int
	UseBackjumping bool
}

// DefaultOptions returns the standard configuration: no trace, single
// solution, accumulation bound 2, backjumping enabled.
func DefaultOptions() Options {
	return Options{
		RecordSteps:    false,
		FindAll:        false,
		MaxSolutions:   2,
		UseBackjumping: true,
	}
}

// Stats captures performance characteristics of one Solve call,
// reported after the fact.
type Stats struct {
	// Nodes is the number of value attempts made by the search.
	Nodes int
	// Backjumps counts choice points skipped by conflict analysis.
	Backjumps int
	// Duration is wall-clock time of the whole call.
	Duration time.Duration
}

// Result is the outcome of one Solve call.
type Result struct {
	// Solved reports whether at least one solution was found.
	Solved bool
	// Solutions holds the solved boards, independent of the input board.
	Solutions []*board.Board
	// Count is len(Solutions).
	Count int
	// Reason describes the outcome in words; see the Reason constants.
	Reason string
	// Stats carries node count, backjumps, and duration.
	Stats Stats
}
