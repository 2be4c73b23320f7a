// Package solve combines constraint propagation with heuristic
// backtracking search over the board package's Sudoku model.
//
// What:
//
//   - Propagate applies deduction techniques — naked singles, hidden
//     singles, naked pairs — in a fixed order until fixpoint or
//     contradiction, optionally recording an ordered Step trace.
//   - Solver runs propagation first, then recursive search: MRV cell
//     selection with a degree tie-break, LCV value ordering, independent
//     board clones per branch, and conflict-directed backjumping.
//   - HasUniqueSolution proves or disproves uniqueness by searching for
//     a second solution (bounded accumulation, cap 2).
//   - CalculateDifficulty grades a board into tiers 1–5 from the solving
//     trace.
//
// Why:
//
//   - Hints: the Step trace replays exactly the deductions a human
//     technique sequence would make, in a reproducible order.
//   - Generation: uniqueness checking is the inner loop of puzzle carving.
//   - Grading: the backtracking share of the trace separates puzzles that
//     yield to logic from ones that require guessing.
//
// Determinism:
//
//	Technique order is fixed (naked singles row-major, hidden singles over
//	rows then columns then boxes, naked pairs last; any progress restarts
//	the cycle), and value ordering breaks ties by ascending value. The
//	same board always produces the same trace — this ordering is
//	load-bearing for hint rendering and difficulty scoring.
//
// Complexity:
//
//	One propagation pass is O(Size³); search is exponential in the worst
//	case. solve reports Nodes and Duration after the fact but never
//	self-limits — callers needing bounded latency impose their own budget.
//
// Errors:
//
//   - ErrNoBoard: Solve or CalculateDifficulty invoked before SetBoard.
//
// Unsolvable and non-unique boards are normal results (Result.Reason),
// never errors.
package solve
