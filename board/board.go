package board

// Board is the canonical 9×9 Sudoku state. The value grid, given mask,
// unit occupancy bitsets, and candidate table are mutated only together,
// so a consistent view is available after every call.
//
// The zero value is not usable; construct with New or FromGrid.
type Board struct {
	grid  [Size][Size]uint8
	given [Size][Size]bool

	rowBits [Size]CandidateMask
	colBits [Size]CandidateMask
	boxBits [Size]CandidateMask

	cand [Size][Size]CandidateMask
}

// New returns an empty board: no values, no givens, every cell open to
// all nine candidates.
func New() *Board {
	b := &Board{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.cand[r][c] = fullMask
		}
	}
	return b
}

// FromGrid builds a board from a 9×9 value grid; every non-zero entry
// becomes a given. Shape violations return ErrInvalidShape and values
// outside 0–9 return ErrInvalidValue.
//
// Values are written directly rather than through SetValue, so an input
// containing a duplicated value survives into the grid; the duplicate
// collapses in the unit bitsets and IsValid reports the corruption.
// Solvers are expected to check IsValid before trusting such a board.
func FromGrid(grid [][]int) (*Board, error) {
	if len(grid) != Size {
		return nil, ErrInvalidShape
	}
	for _, row := range grid {
		if len(row) != Size {
			return nil, ErrInvalidShape
		}
	}
	b := &Board{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := grid[r][c]
			if v < Empty || v > MaxValue {
				return nil, ErrInvalidValue
			}
			if v == Empty {
				continue
			}
			b.grid[r][c] = uint8(v)
			b.given[r][c] = true
			b.rowBits[r] |= maskOf(v)
			b.colBits[c] |= maskOf(v)
			b.boxBits[boxIndex(r, c)] |= maskOf(v)
		}
	}
	b.recomputeAll()
	return b, nil
}

// Value returns the value at (r, c), 0 for an empty cell.
// The position must be in range.
func (b *Board) Value(r, c int) int {
	return int(b.grid[r][c])
}

// IsGiven reports whether (r, c) holds a given. The position must be in range.
func (b *Board) IsGiven(r, c int) bool {
	return b.given[r][c]
}

// Mask returns the candidate mask of (r, c); zero for a filled cell.
// The position must be in range.
func (b *Board) Mask(r, c int) CandidateMask {
	return b.cand[r][c]
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.grid[r][c] == Empty {
				n++
			}
		}
	}
	return n
}

// SetValue places v at (r, c) as an ordinary (non-given) value.
//
// Out-of-range positions return ErrInvalidPosition and values outside
// 0–9 return ErrInvalidValue. v == 0 clears the cell. Writing to a given
// cell, or placing a value already present in the cell's row, column, or
// box, returns false with no mutation. On success every peer cell's
// candidates are recomputed and the call returns true.
func (b *Board) SetValue(r, c, v int) (bool, error) {
	return b.place(r, c, v, false)
}

// SetGiven places v at (r, c) and flags the cell as a given. Unlike
// SetValue it may overwrite an existing given; conflict checking is
// otherwise identical.
func (b *Board) SetGiven(r, c, v int) (bool, error) {
	return b.place(r, c, v, true)
}

func (b *Board) place(r, c, v int, asGiven bool) (bool, error) {
	if !inRange(r, c) {
		return false, ErrInvalidPosition
	}
	if v < Empty || v > MaxValue {
		return false, ErrInvalidValue
	}
	if b.given[r][c] && !asGiven {
		return false, nil
	}
	if v == Empty {
		return b.clear(r, c, asGiven)
	}

	// Conflict check against the unit bitsets, excluding the cell's own
	// current value so overwrites stay O(1).
	occupied := b.rowBits[r] | b.colBits[c] | b.boxBits[boxIndex(r, c)]
	if old := int(b.grid[r][c]); old != Empty {
		if old == v {
			if asGiven {
				b.given[r][c] = true
				return true, nil
			}
			return false, nil
		}
		occupied &^= maskOf(old)
	}
	if occupied.Has(v) {
		return false, nil
	}

	if old := int(b.grid[r][c]); old != Empty {
		b.clearBits(r, c, old)
	}
	b.grid[r][c] = uint8(v)
	b.given[r][c] = asGiven
	b.rowBits[r] |= maskOf(v)
	b.colBits[c] |= maskOf(v)
	b.boxBits[boxIndex(r, c)] |= maskOf(v)
	b.cand[r][c] = 0
	b.recomputePeers(r, c)
	return true, nil
}

// ClearValue empties (r, c). Clearing an already-empty cell succeeds as
// a no-op; clearing a given fails with false. Out-of-range positions
// return ErrInvalidPosition.
func (b *Board) ClearValue(r, c int) (bool, error) {
	if !inRange(r, c) {
		return false, ErrInvalidPosition
	}
	return b.clear(r, c, false)
}

func (b *Board) clear(r, c int, evenGiven bool) (bool, error) {
	if b.grid[r][c] == Empty {
		return true, nil
	}
	if b.given[r][c] && !evenGiven {
		return false, nil
	}
	b.clearBits(r, c, int(b.grid[r][c]))
	b.grid[r][c] = Empty
	b.given[r][c] = false
	b.recomputeCell(r, c)
	b.recomputePeers(r, c)
	return true, nil
}

func (b *Board) clearBits(r, c, v int) {
	b.rowBits[r] &^= maskOf(v)
	b.colBits[c] &^= maskOf(v)
	b.boxBits[boxIndex(r, c)] &^= maskOf(v)
}

// Candidates returns the candidate values of (r, c) as an ascending list;
// an empty list for a filled cell. Out-of-range positions return
// ErrInvalidPosition.
func (b *Board) Candidates(r, c int) ([]int, error) {
	if !inRange(r, c) {
		return nil, ErrInvalidPosition
	}
	return b.cand[r][c].Values(), nil
}

// AddCandidate sets value v as a candidate of the empty cell (r, c).
// Filled cells are untouchable: the call returns false. Candidate edits
// are overrides on top of the derived set and are discarded by the next
// recompute of the cell.
func (b *Board) AddCandidate(r, c, v int) (bool, error) {
	if !inRange(r, c) {
		return false, ErrInvalidPosition
	}
	if v < MinValue || v > MaxValue {
		return false, ErrInvalidValue
	}
	if b.grid[r][c] != Empty {
		return false, nil
	}
	b.cand[r][c] |= maskOf(v)
	return true, nil
}

// RemoveCandidate removes value v from the candidates of the empty cell
// (r, c). Filled cells are untouchable: the call returns false.
func (b *Board) RemoveCandidate(r, c, v int) (bool, error) {
	if !inRange(r, c) {
		return false, ErrInvalidPosition
	}
	if v < MinValue || v > MaxValue {
		return false, ErrInvalidValue
	}
	if b.grid[r][c] != Empty {
		return false, nil
	}
	b.cand[r][c] &^= maskOf(v)
	return true, nil
}

// IsValid cross-checks every unit's occupancy bitset against the count
// of filled cells actually in that unit. A mismatch means the grid holds
// a duplicate the bitsets could not represent — state that bypassed
// SetValue — and the board is reported invalid.
func (b *Board) IsValid() bool {
	for i := 0; i < Size; i++ {
		rowFilled, colFilled := 0, 0
		for j := 0; j < Size; j++ {
			if b.grid[i][j] != Empty {
				rowFilled++
			}
			if b.grid[j][i] != Empty {
				colFilled++
			}
		}
		if b.rowBits[i].Count() != rowFilled || b.colBits[i].Count() != colFilled {
			return false
		}

		boxFilled := 0
		br, bc := (i/BoxSize)*BoxSize, (i%BoxSize)*BoxSize
		for dr := 0; dr < BoxSize; dr++ {
			for dc := 0; dc < BoxSize; dc++ {
				if b.grid[br+dr][bc+dc] != Empty {
					boxFilled++
				}
			}
		}
		if b.boxBits[i].Count() != boxFilled {
			return false
		}
	}
	return true
}

// IsComplete reports whether the board is valid and has no empty cells.
func (b *Board) IsComplete() bool {
	return b.EmptyCount() == 0 && b.IsValid()
}

// Clone returns a fully independent copy: mutating the clone never
// affects the source and vice versa. All state lives in value arrays,
// so a flat struct copy suffices.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// MarkGivens re-flags every non-empty cell as a given. The generator
// calls this once carving is done so the published puzzle's clues are
// immutable to play.
func (b *Board) MarkGivens() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.given[r][c] = b.grid[r][c] != Empty
		}
	}
}

// recomputeCell rederives the candidate mask of (r, c) from the unit
// bitsets: empty cells admit exactly the values absent from their three
// units, filled cells admit nothing.
func (b *Board) recomputeCell(r, c int) {
	if b.grid[r][c] != Empty {
		b.cand[r][c] = 0
		return
	}
	b.cand[r][c] = fullMask &^ (b.rowBits[r] | b.colBits[c] | b.boxBits[boxIndex(r, c)])
}

// recomputePeers rederives candidates for every still-empty cell sharing
// a row, column, or box with (r, c). Box cells overlap the row and
// column; recompute is idempotent so the overlap is harmless.
func (b *Board) recomputePeers(r, c int) {
	for i := 0; i < Size; i++ {
		if i != c && b.grid[r][i] == Empty {
			b.recomputeCell(r, i)
		}
		if i != r && b.grid[i][c] == Empty {
			b.recomputeCell(i, c)
		}
	}
	br, bc := (r/BoxSize)*BoxSize, (c/BoxSize)*BoxSize
	for dr := 0; dr < BoxSize; dr++ {
		for dc := 0; dc < BoxSize; dc++ {
			pr, pc := br+dr, bc+dc
			if (pr != r || pc != c) && b.grid[pr][pc] == Empty {
				b.recomputeCell(pr, pc)
			}
		}
	}
}

func (b *Board) recomputeAll() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.recomputeCell(r, c)
		}
	}
}
