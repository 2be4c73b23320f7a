package solve

import "github.com/katalvlaran/sudoku/board"

// UnitKind distinguishes the three "no duplicates" regions.
type UnitKind int

const (
	// UnitRow is a horizontal unit, indexed 0–8 top to bottom.
	UnitRow UnitKind = iota
	// UnitCol is a vertical unit, indexed 0–8 left to right.
	UnitCol
	// UnitBox is a 3×3 unit, indexed 0–8 in row-major box order.
	UnitBox
)

// String returns "row", "col", or "box".
func (k UnitKind) String() string {
	switch k {
	case UnitRow:
		return "row"
	case UnitCol:
		return "col"
	case UnitBox:
		return "box"
	default:
		return "unknown"
	}
}

// Unit names one row, column, or box.
type Unit struct {
	Kind  UnitKind
	Index int
}

// Step records one technique application or search event. The variant
// set is closed: NakedSingle, HiddenSingle, NakedPair, BacktrackTry,
// BacktrackFail, and Backtrack implement it, and nothing else can —
// switches over Step stay exhaustive.
//
// Steps appear in the trace in the exact order techniques fired; hint
// rendering and difficulty scoring depend on that order.
type Step interface {
	// Kind returns the stable identifier of the variant.
	Kind() string

	step()
}

// NakedSingle records an empty cell forced by having exactly one candidate.
type NakedSingle struct {
	Cell  board.Coord
	Value int
}

// HiddenSingle records a value admitted by exactly one cell of a unit.
type HiddenSingle struct {
	Cell  board.Coord
	Value int
	Unit  Unit
}

// NakedPair records two cells of a unit sharing an identical two-value
// candidate set, eliminating those values from the rest of the unit.
type NakedPair struct {
	Cells  [2]board.Coord
	Values [2]int
	Unit   Unit
}

// BacktrackTry records a speculative value placement by the search.
type BacktrackTry struct {
	Cell  board.Coord
	Value int
}

// BacktrackFail records a speculative placement whose subtree failed.
type BacktrackFail struct {
	Cell  board.Coord
	Value int
}

// Backtrack records a choice point being abandoned, either exhausted or
// skipped by a backjump.
type Backtrack struct {
	Cell board.Coord
}

func (NakedSingle) Kind() string   { return "naked_single" }
func (HiddenSingle) Kind() string  { return "hidden_single" }
func (NakedPair) Kind() string     { return "naked_pair" }
func (BacktrackTry) Kind() string  { return "backtrack_try" }
func (BacktrackFail) Kind() string { return "backtrack_fail" }
func (Backtrack) Kind() string     { return "backtrack" }

func (NakedSingle) step()   {}
func (HiddenSingle) step()  {}
func (NakedPair) step()     {}
func (BacktrackTry) step()  {}
func (BacktrackFail) step() {}
func (Backtrack) step()     {}
