package solve

import "github.com/katalvlaran/sudoku/board"

// Propagation is the outcome of one Propagate call.
type Propagation struct {
	// Solved reports a complete, valid board.
	Solved bool
	// Impossible reports a contradiction: some empty cell ran out of
	// candidates, or a value lost every admitting cell in a unit.
	Impossible bool
	// Steps is the ordered technique trace; nil unless recording.
	Steps []Step
}

// nakedPairMinEmpty is the smallest unit population worth scanning for
// naked pairs: with fewer than 4 empty cells a pair cannot eliminate
// anything that singles would not find first.
const nakedPairMinEmpty = 4

// Propagate applies deduction techniques to b until fixpoint or
// contradiction. b mutates in place; callers wanting an isolated
// hypothesis pass a clone.
//
// Technique order is fixed: naked singles scanned row-major, then
// hidden singles over rows 0–8, columns 0–8, boxes 0–8, then naked
// pairs per unit in the same order. Cheaper techniques only yield when
// they find nothing, and any progress restarts the cycle from naked
// singles, which keeps the trace deterministic and maximally reduces
// the board before costlier scans run.
func Propagate(b *board.Board, record bool) Propagation {
	var p Propagation
	for {
		fired, dead := nakedSingles(b, record, &p.Steps)
		if dead {
			p.Impossible = true
			return p
		}
		if fired {
			continue
		}

		fired, dead = hiddenSingles(b, record, &p.Steps)
		if dead {
			p.Impossible = true
			return p
		}
		if fired {
			continue
		}

		fired, dead = nakedPairs(b, record, &p.Steps)
		if dead {
			p.Impossible = true
			return p
		}
		if !fired {
			break
		}
	}
	p.Solved = b.IsComplete()
	return p
}

// nakedSingles forces every empty cell holding exactly one candidate,
// scanning row-major. A cell with zero candidates is a contradiction.
func nakedSingles(b *board.Board, record bool, steps *[]Step) (fired, dead bool) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Value(r, c) != board.Empty {
				continue
			}
			m := b.Mask(r, c)
			switch m.Count() {
			case 0:
				return fired, true
			case 1:
				v := m.Values()[0]
				if ok, _ := b.SetValue(r, c, v); !ok {
					return fired, true
				}
				if record {
					*steps = append(*steps, NakedSingle{Cell: board.Coord{Row: r, Col: c}, Value: v})
				}
				fired = true
			}
		}
	}
	return fired, false
}

// hiddenSingles places every value admitted by exactly one cell of some
// unit, visiting rows, then columns, then boxes. A value with no
// admitting cell and no placement in the unit is a contradiction.
func hiddenSingles(b *board.Board, record bool, steps *[]Step) (fired, dead bool) {
	for _, kind := range []UnitKind{UnitRow, UnitCol, UnitBox} {
		for idx := 0; idx < board.Size; idx++ {
			cells := unitCells(kind, idx)
			for v := board.MinValue; v <= board.MaxValue; v++ {
				placed := false
				admits := 0
				var only board.Coord
				for _, cell := range cells {
					if b.Value(cell.Row, cell.Col) == v {
						placed = true
						break
					}
					if b.Mask(cell.Row, cell.Col).Has(v) {
						admits++
						only = cell
					}
				}
				if placed {
					continue
				}
				if admits == 0 {
					return fired, true
				}
				if admits > 1 {
					continue
				}
				if ok, _ := b.SetValue(only.Row, only.Col, v); !ok {
					return fired, true
				}
				if record {
					*steps = append(*steps, HiddenSingle{
						Cell:  only,
						Value: v,
						Unit:  Unit{Kind: kind, Index: idx},
					})
				}
				fired = true
			}
		}
	}
	return fired, false
}

// nakedPairs finds, per unit, exactly two empty cells sharing an
// identical two-candidate mask and strips those values from the rest of
// the unit. Only units with at least nakedPairMinEmpty empty cells are
// scanned. Progress means an actual elimination, not merely spotting a
// pair. Starving another cell down to zero candidates is a contradiction.
func nakedPairs(b *board.Board, record bool, steps *[]Step) (fired, dead bool) {
	for _, kind := range []UnitKind{UnitRow, UnitCol, UnitBox} {
		for idx := 0; idx < board.Size; idx++ {
			cells := unitCells(kind, idx)

			empties := make([]board.Coord, 0, board.Size)
			for _, cell := range cells {
				if b.Value(cell.Row, cell.Col) == board.Empty {
					empties = append(empties, cell)
				}
			}
			if len(empties) < nakedPairMinEmpty {
				continue
			}

			for i := 0; i < len(empties); i++ {
				first := empties[i]
				m := b.Mask(first.Row, first.Col)
				if m.Count() != 2 {
					continue
				}
				// The pair must be exactly two cells; a third cell with
				// the same mask makes this a contradiction in waiting,
				// left for search to expose.
				match := -1
				matches := 0
				for j := 0; j < len(empties); j++ {
					if j != i && b.Mask(empties[j].Row, empties[j].Col) == m {
						match = j
						matches++
					}
				}
				if matches != 1 || match < i {
					continue
				}
				second := empties[match]

				vals := m.Values()
				removed := false
				for _, other := range empties {
					if other == first || other == second {
						continue
					}
					om := b.Mask(other.Row, other.Col)
					if om&m == 0 {
						continue
					}
					for _, v := range vals {
						if om.Has(v) {
							b.RemoveCandidate(other.Row, other.Col, v)
							removed = true
						}
					}
					if b.Mask(other.Row, other.Col).Count() == 0 {
						return fired, true
					}
				}
				if !removed {
					continue
				}
				if record {
					*steps = append(*steps, NakedPair{
						Cells:  [2]board.Coord{first, second},
						Values: [2]int{vals[0], vals[1]},
						Unit:   Unit{Kind: kind, Index: idx},
					})
				}
				fired = true
			}
		}
	}
	return fired, false
}

// unitCells lists the nine cells of a unit in scan order.
func unitCells(kind UnitKind, idx int) [board.Size]board.Coord {
	var cells [board.Size]board.Coord
	switch kind {
	case UnitRow:
		for c := 0; c < board.Size; c++ {
			cells[c] = board.Coord{Row: idx, Col: c}
		}
	case UnitCol:
		for r := 0; r < board.Size; r++ {
			cells[r] = board.Coord{Row: r, Col: idx}
		}
	case UnitBox:
		br, bc := (idx/board.BoxSize)*board.BoxSize, (idx%board.BoxSize)*board.BoxSize
		for i := 0; i < board.Size; i++ {
			cells[i] = board.Coord{Row: br + i/board.BoxSize, Col: bc + i%board.BoxSize}
		}
	}
	return cells
}
