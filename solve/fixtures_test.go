package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
)

// canonicalPuzzle is the classic example grid with a unique solution.
var canonicalPuzzle = [][]int{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// canonicalSolution is the unique solution of canonicalPuzzle.
var canonicalSolution = [][]int{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// mustBoard builds a board from a grid, failing the test on error.
func mustBoard(t *testing.T, grid [][]int) *board.Board {
	t.Helper()
	b, err := board.FromGrid(grid)
	require.NoError(t, err)
	return b
}

// copyGrid deep-copies a grid so fixtures stay pristine.
func copyGrid(g [][]int) [][]int {
	cp := make([][]int, len(g))
	for i, row := range g {
		cp[i] = append([]int(nil), row...)
	}
	return cp
}

// assertGridEquals checks a solved board cell by cell.
func assertGridEquals(t *testing.T, want [][]int, b *board.Board) {
	t.Helper()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			require.Equal(t, want[r][c], b.Value(r, c), "cell (%d,%d)", r, c)
		}
	}
}
