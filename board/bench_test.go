package board_test

import (
	"testing"

	"github.com/katalvlaran/sudoku/board"
)

func BenchmarkSetValue(b *testing.B) {
	bd := board.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd.SetValue(4, 4, 5)
		bd.ClearValue(4, 4)
	}
}

func BenchmarkClone(b *testing.B) {
	bd := board.New()
	for i := 0; i < board.Size; i++ {
		bd.SetValue(i, i, i%board.MaxValue+1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bd.Clone()
	}
}

func BenchmarkSerialize(b *testing.B) {
	bd := board.New()
	bd.SetGiven(0, 0, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bd.Serialize()
	}
}
