// Package board models the canonical 9×9 Sudoku state with O(1)
// conflict checks and invariant-holding mutators.
//
// What:
//
//   - Board couples four structures that move in lockstep: the value grid,
//     the given mask, three per-unit occupancy bitsets (rows, columns,
//     boxes), and a per-cell candidate table.
//   - SetValue/ClearValue keep every structure consistent on each mutation;
//     duplicate placements are rejected against the unit bitsets in O(1).
//   - Clone produces a fully independent copy, the basis for speculative
//     search branches in solve.
//   - Serialize/Deserialize round-trip the complete state losslessly for
//     external persistence collaborators.
//
// Why:
//
//   - Solvers: candidate masks and occupancy bitsets make propagation and
//     heuristic search cheap and allocation-free.
//   - UIs: conflicts surface as boolean results, never panics or errors,
//     so interactive input can probe moves freely.
//   - Persistence: the snapshot is the single boundary contract toward
//     storage layers.
//
// Invariants (held after every mutation):
//
//   - A filled cell has an empty candidate mask.
//   - An empty cell's candidate mask equals exactly the values absent from
//     its row, column, and box.
//   - No value occurs twice in any unit; enforced at write time.
//   - A given cell's value only changes through full board replacement.
//
// Complexity:
//
//   - SetValue/ClearValue: O(1) conflict check, O(Size) peer recompute.
//   - IsValid/IsComplete:  O(Size²).
//   - Clone:               O(Size²) flat copy, single allocation.
//
// Errors:
//
//   - ErrInvalidPosition: row or column outside 0–8.
//   - ErrInvalidValue: value outside the accepted range.
//   - ErrInvalidShape: constructor input is not 9×9.
//
// Conflicts (placing a duplicate in a unit) and writes to given cells are
// expected outcomes, reported as a false boolean, never as an error.
package board
