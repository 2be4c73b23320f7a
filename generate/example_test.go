package generate_test

import (
	"fmt"

	"github.com/katalvlaran/sudoku/generate"
	"github.com/katalvlaran/sudoku/solve"
)

// ExampleGenerator_Generate builds a reproducible puzzle and checks it
// has exactly one solution.
func ExampleGenerator_Generate() {
	g := generate.New(42)
	puzzle, err := g.Generate(solve.TierMedium)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("valid:", puzzle.IsValid())
	fmt.Println("unique:", solve.NewSolver().HasUniqueSolution(puzzle))

	// Output:
	// valid: true
	// unique: true
}
