// Package sudoku is a constraint-satisfaction engine for classic 9×9
// Sudoku — a board model with O(1) conflict checks, a solver combining
// constraint propagation with heuristic backtracking, and a generator
// producing puzzles with a provably unique solution.
//
// 🚀 What is sudoku?
//
//	A small, deterministic, dependency-light engine that brings together:
//		• Board: grid values, given flags, per-unit occupancy bitsets,
//		  per-cell candidate masks — every mutation keeps them consistent
//		• Propagation: naked singles, hidden singles, naked pairs,
//		  applied in a fixed order until fixpoint or contradiction
//		• Search: MRV + degree cell selection, LCV value ordering,
//		  recursion over independent clones, conflict-directed backjumping
//		• Generation: seeded full-board fill, uniqueness-preserving cell
//		  removal, trace-based difficulty grading (tiers 1–5)
//		• Storage: in-memory and SQLite stores for serialized snapshots
//
// ✨ Why choose sudoku?
//
//   - Deterministic – same board (and same seed) ⇒ identical traces, puzzles
//   - Safe by construction – branches clone, no shared mutable board state
//   - Honest results – conflicts and unsolvable boards are values, not errors
//   - Reproducible – an explicit seedable RNG is threaded through generation
//
// Everything is organized under four subpackages:
//
//	board/    — the canonical Board state and its invariant-holding mutators
//	solve/    — propagation techniques, backtracking search, difficulty
//	generate/ — seeded puzzle generation with unique-solution guarantee
//	store/    — persistence collaborators for serialized board snapshots
//
// Quick ASCII example:
//
//	    ┌───────┬───────┬───────┐
//	    │ 5 3 · │ · 7 · │ · · · │
//	    │ 6 · · │ 1 9 5 │ · · · │
//	    │ · 9 8 │ · · · │ · 6 · │
//	    ├───────┼───────┼───────┤  …a puzzle with one solution,
//	    │ 8 · · │ · 6 · │ · · 3 │   recovered by propagation plus
//	    │ 4 · · │ 8 · 3 │ · · 1 │   a handful of search nodes.
//	    │ 7 · · │ · 2 · │ · · 6 │
//	    └───────┴───────┴───────┘
//
// Dive into the per-package doc.go files for the exact invariants,
// complexity notes, and error contracts.
//
//	go get github.com/katalvlaran/sudoku
package sudoku
