package board_test

import (
	"fmt"

	"github.com/katalvlaran/sudoku/board"
)

// ExampleBoard_SetValue demonstrates the conflict contract: duplicates
// in a unit are reported as a false result, never as an error.
func ExampleBoard_SetValue() {
	b := board.New()

	ok, _ := b.SetValue(0, 0, 5)
	fmt.Println("place 5 at (0,0):", ok)

	ok, _ = b.SetValue(0, 8, 5) // same row
	fmt.Println("place 5 at (0,8):", ok)

	ok, _ = b.SetValue(1, 1, 5) // same box
	fmt.Println("place 5 at (1,1):", ok)

	ok, _ = b.SetValue(4, 4, 5) // unrelated cell
	fmt.Println("place 5 at (4,4):", ok)

	// Output:
	// place 5 at (0,0): true
	// place 5 at (0,8): false
	// place 5 at (1,1): false
	// place 5 at (4,4): true
}

// ExampleBoard_Candidates shows candidates shrinking as peers fill in.
func ExampleBoard_Candidates() {
	b := board.New()
	b.SetValue(0, 0, 1)
	b.SetValue(0, 1, 2)
	b.SetValue(1, 0, 3)

	cand, _ := b.Candidates(1, 1)
	fmt.Println("candidates of (1,1):", cand)

	// Output:
	// candidates of (1,1): [4 5 6 7 8 9]
}
