package solve

import (
	"sort"

	"github.com/katalvlaran/sudoku/board"
)

// coordSet is a set of cell coordinates used as a conflict ("blame") set.
type coordSet map[board.Coord]struct{}

func (s coordSet) has(c board.Coord) bool {
	_, ok := s[c]
	return ok
}

// reasonMap maps each cell filled on the current search path to the set
// of decision cells its value transitively depends on. A decision cell
// maps to itself; a cell placed by propagation maps to the union of the
// reasons of the filled cells that forced it. Givens and cells placed by
// the root propagation carry no entry: their reason is empty, they
// cannot be retracted.
//
// The map is cloned per node; the coordSet values are immutable once
// stored and may be shared across clones.
type reasonMap map[board.Coord]coordSet

func (m reasonMap) clone() reasonMap {
	cp := make(reasonMap, len(m)+1)
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// searcher runs one recursive backtracking search. Boards passed between
// recursion levels are independent clones; nothing here needs locking.
type searcher struct {
	record    bool
	backjump  bool
	limit     int // stop after this many solutions
	solutions []*board.Board
	steps     []Step
	nodes     int
	backjumps int
}

func (s *searcher) trace(st Step) {
	if s.record {
		s.steps = append(s.steps, st)
	}
}

// search explores b depth-first. It returns stop=true once the solution
// limit is reached. On failure it returns the set of decision cells
// implicated in the failure; a nil set means the conflict analysis is
// unusable (the subtree held solutions, or tainted is set) and no
// ancestor may backjump on it.
//
// tainted disables conflict analysis for the whole subtree. It is set
// when backjumping is off, when candidate masks carry overrides the
// reason tracking cannot see (pencil marks, naked-pair eliminations), or
// when a naked pair fires below: from that point every conflict set is
// nil and the search degrades to plain chronological backtracking, which
// is always sound.
//
// Backjumping follows the conflict-set protocol: if a failed child's set
// does not name the decision made here, the remaining candidates at this
// node cannot repair the failure and the set is handed straight to the
// caller. Otherwise child sets are merged (self excluded) and the next
// candidate is tried.
func (s *searcher) search(b *board.Board, reasons reasonMap, tainted bool) (stop bool, conflicts coordSet) {
	cell, ok := selectCell(b)
	if !ok {
		// No empty cells: b is a solution.
		s.solutions = append(s.solutions, b.Clone())
		return len(s.solutions) >= s.limit, nil
	}

	values := orderValues(b, cell)
	if len(values) == 0 {
		if tainted {
			return false, nil
		}
		return false, starvedCauses(b, cell, reasons)
	}

	merged := make(coordSet)
	poisoned := false
	for _, v := range values {
		s.nodes++
		s.trace(BacktrackTry{Cell: cell, Value: v})

		child := b.Clone()
		if ok, _ := child.SetValue(cell.Row, cell.Col, v); !ok {
			// Candidates come from the live mask; a conflicting value here
			// means the masks carry overrides the analysis cannot follow.
			s.trace(BacktrackFail{Cell: cell, Value: v})
			poisoned = true
			continue
		}

		childTaint := tainted
		childReasons := reasons
		if !childTaint {
			childReasons = reasons.clone()
			childReasons[cell] = coordSet{cell: {}}
		}

		prop := Propagate(child, s.record || !childTaint)
		if s.record {
			s.steps = append(s.steps, prop.Steps...)
		}
		if !childTaint && attribute(child, prop.Steps, childReasons) {
			childTaint = true
		}

		if prop.Impossible {
			s.trace(BacktrackFail{Cell: cell, Value: v})
			if childTaint {
				poisoned = true
				continue
			}
			confl := contradictionCauses(child, childReasons)
			if s.backjump && !confl.has(cell) {
				s.backjumps++
				s.trace(Backtrack{Cell: cell})
				return false, confl
			}
			mergeInto(merged, confl, cell)
			continue
		}
		if prop.Solved {
			s.solutions = append(s.solutions, child)
			if len(s.solutions) >= s.limit {
				return true, nil
			}
			poisoned = true
			continue
		}

		before := len(s.solutions)
		stop, confl := s.search(child, childReasons, childTaint)
		if stop {
			return true, nil
		}
		if len(s.solutions) == before {
			// Only genuinely failed branches are labelled failures;
			// a subtree that accumulated solutions is not one.
			s.trace(BacktrackFail{Cell: cell, Value: v})
		}
		if len(s.solutions) > before || confl == nil {
			// Subtree held solutions (FindAll) or passed up a poisoned
			// set; its conflicts say nothing about this choice point.
			poisoned = true
			continue
		}
		if s.backjump && !confl.has(cell) {
			s.backjumps++
			s.trace(Backtrack{Cell: cell})
			return false, confl
		}
		mergeInto(merged, confl, cell)
	}

	s.trace(Backtrack{Cell: cell})
	if tainted || poisoned {
		return false, nil
	}
	return false, merged
}

// attribute extends reasons with the cells the given propagation run
// placed, processing steps in firing order against the run's final
// board. A placement's reason is a superset of the decisions it depends
// on: with derived masks, every candidate elimination comes from a
// filled cell in the eliminated cell's units, so unioning the reasons of
// all filled unit-mates captures every retractable cause. A naked pair
// breaks the derived-mask assumption; attribution stops and reports
// taint.
func attribute(b *board.Board, steps []Step, reasons reasonMap) (tainted bool) {
	for _, raw := range steps {
		switch st := raw.(type) {
		case NakedSingle:
			set := make(coordSet)
			addFilledCauses(b, st.Cell, reasons, set)
			reasons[st.Cell] = set
		case HiddenSingle:
			// The value was eliminated from every other cell of the
			// unit, either by that cell being filled or by a placement
			// in that cell's own units.
			set := make(coordSet)
			for _, c := range unitCells(st.Unit.Kind, st.Unit.Index) {
				if c == st.Cell {
					continue
				}
				for d := range reasons[c] {
					set[d] = struct{}{}
				}
				addFilledCauses(b, c, reasons, set)
			}
			reasons[st.Cell] = set
		case NakedPair:
			return true
		}
	}
	return false
}

// addFilledCauses unions into set the reasons of every filled cell in
// cell's units. Cells placed later in the run have no reason entry yet
// and contribute nothing, which is correct: they cannot have caused an
// earlier placement.
func addFilledCauses(b *board.Board, cell board.Coord, reasons reasonMap, set coordSet) {
	forEachPeer(cell, func(p board.Coord) {
		if b.Value(p.Row, p.Col) == board.Empty {
			return
		}
		for d := range reasons[p] {
			set[d] = struct{}{}
		}
	})
}

// starvedCauses returns the decisions implicated in cell having no
// candidates: with derived masks, exactly the reasons of the filled
// cells in its units.
func starvedCauses(b *board.Board, cell board.Coord, reasons reasonMap) coordSet {
	set := make(coordSet)
	addFilledCauses(b, cell, reasons, set)
	return set
}

// contradictionCauses builds the conflict set for a failed propagation:
// the decisions implicated in the first candidate-starved cell. When no
// starved cell exists (the contradiction came from a hidden-single
// tally), every decision recorded on the path is blamed, which is
// always a safe superset.
func contradictionCauses(b *board.Board, reasons reasonMap) coordSet {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Value(r, c) == board.Empty && b.Mask(r, c).Count() == 0 {
				return starvedCauses(b, board.Coord{Row: r, Col: c}, reasons)
			}
		}
	}
	set := make(coordSet)
	for _, ds := range reasons {
		for d := range ds {
			set[d] = struct{}{}
		}
	}
	return set
}

// mergeInto unions src into dst, excluding self.
func mergeInto(dst, src coordSet, self board.Coord) {
	for c := range src {
		if c != self {
			dst[c] = struct{}{}
		}
	}
}

// masksDerived reports whether every empty cell's candidate mask equals
// the set derivable from its units alone. Pencil-mark overrides and
// naked-pair eliminations make masks narrower (or wider) than derived;
// conflict analysis is only sound without them.
func masksDerived(b *board.Board) bool {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Value(r, c) != board.Empty {
				continue
			}
			var seen [board.MaxValue + 1]bool
			forEachPeer(board.Coord{Row: r, Col: c}, func(p board.Coord) {
				seen[b.Value(p.Row, p.Col)] = true
			})
			m := b.Mask(r, c)
			for v := board.MinValue; v <= board.MaxValue; v++ {
				if m.Has(v) == seen[v] {
					return false
				}
			}
		}
	}
	return true
}

// selectCell picks the next branching cell: minimum remaining values,
// ties broken by higher degree (count of distinct empty peers). A cell
// with exactly one candidate cannot be beaten and short-circuits the
// scan. Returns ok=false on a full board. A zero-candidate cell is
// returned as-is; the caller fails the node against it.
func selectCell(b *board.Board) (board.Coord, bool) {
	best := board.Coord{Row: -1, Col: -1}
	bestCount := board.MaxValue + 1
	bestDeg := -1

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.Value(r, c) != board.Empty {
				continue
			}
			cur := board.Coord{Row: r, Col: c}
			n := b.Mask(r, c).Count()
			if n <= 1 {
				return cur, true
			}
			switch {
			case n < bestCount:
				best, bestCount, bestDeg = cur, n, -1
			case n == bestCount:
				if bestDeg < 0 {
					bestDeg = degree(b, best)
				}
				if d := degree(b, cur); d > bestDeg {
					best, bestDeg = cur, d
				}
			}
		}
	}
	return best, best.Row >= 0
}

// degree counts the distinct empty cells among the union of cell's row,
// column, and box peers.
func degree(b *board.Board, cell board.Coord) int {
	n := 0
	forEachPeer(cell, func(p board.Coord) {
		if b.Value(p.Row, p.Col) == board.Empty {
			n++
		}
	})
	return n
}

// orderValues sorts cell's candidates least-constraining first: for each
// value, sum the candidate counts every empty peer would retain if the
// value were placed, and try the largest sums first. Ties keep ascending
// value order, which pins down the trace.
func orderValues(b *board.Board, cell board.Coord) []int {
	values := b.Mask(cell.Row, cell.Col).Values()
	if len(values) < 2 {
		return values
	}

	sums := make(map[int]int, len(values))
	for _, v := range values {
		sum := 0
		forEachPeer(cell, func(p board.Coord) {
			if b.Value(p.Row, p.Col) != board.Empty {
				return
			}
			m := b.Mask(p.Row, p.Col)
			sum += m.Count()
			if m.Has(v) {
				sum--
			}
		})
		sums[v] = sum
	}
	sort.SliceStable(values, func(i, j int) bool {
		return sums[values[i]] > sums[values[j]]
	})
	return values
}

// forEachPeer visits every cell sharing a row, column, or box with cell,
// exactly once each (the box overlaps the row and column; overlapping
// cells are skipped on the box sweep).
func forEachPeer(cell board.Coord, fn func(board.Coord)) {
	for i := 0; i < board.Size; i++ {
		if i != cell.Col {
			fn(board.Coord{Row: cell.Row, Col: i})
		}
		if i != cell.Row {
			fn(board.Coord{Row: i, Col: cell.Col})
		}
	}
	br := (cell.Row / board.BoxSize) * board.BoxSize
	bc := (cell.Col / board.BoxSize) * board.BoxSize
	for dr := 0; dr < board.BoxSize; dr++ {
		for dc := 0; dc < board.BoxSize; dc++ {
			p := board.Coord{Row: br + dr, Col: bc + dc}
			if p.Row != cell.Row && p.Col != cell.Col {
				fn(p)
			}
		}
	}
}
