// Package board defines core types, dimensions, and sentinel errors for
// the Sudoku board model.
package board

import (
	"errors"
	"math/bits"
)

// Sentinel errors for board operations.
var (
	// ErrInvalidPosition indicates a row or column outside 0–8.
	ErrInvalidPosition = errors.New("board: position out of range")
	// ErrInvalidValue indicates a value outside the accepted range.
	ErrInvalidValue = errors.New("board: value out of range")
	// ErrInvalidShape indicates constructor input that is not 9×9.
	ErrInvalidShape = errors.New("board: grid must be 9×9")
)

// Board dimensions. The engine is fixed to the classic 9×9 variant;
// the constants exist to keep loops self-describing, not to vary.
const (
	// Size is the side length of the board and of every unit.
	Size = 9
	// BoxSize is the side length of a 3×3 box.
	BoxSize = 3
	// CellCount is the total number of cells.
	CellCount = Size * Size
	// Empty marks a cell holding no value.
	Empty = 0
	// MinValue and MaxValue bound the playable values.
	MinValue = 1
	MaxValue = 9
)

// Coord identifies a cell by row and column, both in 0–8.
type Coord struct {
	Row int
	Col int
}

// CandidateMask is a bitmask over the values 1–9: bit b set means value
// b+1 is present (in a unit bitset) or still possible (in a candidate
// table entry). It is the canonical candidate representation; []int
// lists exist only at the API boundary.
type CandidateMask uint16

// fullMask has all nine value bits set.
const fullMask CandidateMask = 1<<Size - 1

// maskOf returns the mask with only value v's bit set. v must be 1–9.
func maskOf(v int) CandidateMask {
	return 1 << (v - 1)
}

// Has reports whether value v's bit is set. Values outside 1–9 are never set.
func (m CandidateMask) Has(v int) bool {
	if v < MinValue || v > MaxValue {
		return false
	}
	return m&maskOf(v) != 0
}

// Count returns the number of set value bits.
func (m CandidateMask) Count() int {
	return bits.OnesCount16(uint16(m))
}

// Values expands the mask into an ascending []int list.
func (m CandidateMask) Values() []int {
	vs := make([]int, 0, m.Count())
	for v := MinValue; v <= MaxValue; v++ {
		if m.Has(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

// inRange reports whether (r, c) addresses a cell on the board.
func inRange(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// boxIndex returns the 0–8 index of the 3×3 box containing (r, c).
func boxIndex(r, c int) int {
	return (r/BoxSize)*BoxSize + c/BoxSize
}
