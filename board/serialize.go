package board

import (
	"encoding/json"
	"fmt"
)

// snapshot is the wire form of a Board: all four structures, verbatim.
// It exists so persistence collaborators can round-trip the state
// bit-for-bit without reaching into the Board itself.
type snapshot struct {
	Grid       [Size][Size]uint8         `json:"grid"`
	Given      [Size][Size]bool          `json:"given"`
	RowBits    [Size]CandidateMask       `json:"rowBits"`
	ColBits    [Size]CandidateMask       `json:"colBits"`
	BoxBits    [Size]CandidateMask       `json:"boxBits"`
	Candidates [Size][Size]CandidateMask `json:"candidates"`
}

// Serialize encodes the complete board state as JSON.
// Deserialize(Serialize(b)) reproduces b exactly.
func (b *Board) Serialize() ([]byte, error) {
	return json.Marshal(snapshot{
		Grid:       b.grid,
		Given:      b.given,
		RowBits:    b.rowBits,
		ColBits:    b.colBits,
		BoxBits:    b.boxBits,
		Candidates: b.cand,
	})
}

// Deserialize decodes a board previously produced by Serialize. The
// snapshot is restored verbatim — bitsets and candidates are taken from
// the payload, not rederived — after range checks on values and masks.
// Malformed JSON is wrapped as a decode error; out-of-range content
// returns ErrInvalidValue.
func Deserialize(data []byte) (*Board, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("board: decode snapshot: %w", err)
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.Grid[r][c] > MaxValue {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidValue, r, c, s.Grid[r][c])
			}
			if s.Candidates[r][c] > fullMask {
				return nil, fmt.Errorf("%w: candidate mask at (%d,%d)", ErrInvalidValue, r, c)
			}
		}
		if s.RowBits[r] > fullMask || s.ColBits[r] > fullMask || s.BoxBits[r] > fullMask {
			return nil, fmt.Errorf("%w: unit bitset %d", ErrInvalidValue, r)
		}
	}
	return &Board{
		grid:    s.Grid,
		given:   s.Given,
		rowBits: s.RowBits,
		colBits: s.ColBits,
		boxBits: s.BoxBits,
		cand:    s.Candidates,
	}, nil
}
