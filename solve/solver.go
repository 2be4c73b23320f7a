package solve

import (
	"time"

	"github.com/katalvlaran/sudoku/board"
)

// Solver owns a board reference and runs propagation plus search
// against clones of it. The assigned board is never mutated.
//
// A Solver is not safe for concurrent use; solving is a synchronous,
// blocking call that runs to completion.
type Solver struct {
	b     *board.Board
	steps []Step
}

// NewSolver returns a Solver with no board assigned.
func NewSolver() *Solver { return &Solver{} }

// SetBoard assigns the board subsequent Solve and CalculateDifficulty
// calls operate on.
func (s *Solver) SetBoard(b *board.Board) { s.b = b }

// Steps returns the ordered trace recorded by the last Solve call with
// RecordSteps enabled; nil otherwise. The trace replays deterministic
// technique order first, then search attempts, exactly as they fired.
func (s *Solver) Steps() []Step { return s.steps }

// Solve attempts the assigned board under opts. It returns ErrNoBoard
// if SetBoard was never called; every solvability outcome — including
// "no solution" and an invalid initial board — is a normal Result,
// never an error.
func (s *Solver) Solve(opts Options) (*Result, error) {
	if s.b == nil {
		return nil, ErrNoBoard
	}
	start := time.Now()
	s.steps = nil
	res := &Result{}

	if !s.b.IsValid() {
		res.Reason = ReasonInvalidBoard
		res.Stats.Duration = time.Since(start)
		return res, nil
	}

	limit := 1
	if opts.FindAll {
		limit = opts.MaxSolutions
		if limit < 2 {
			limit = 2
		}
	}

	work := s.b.Clone()
	prop := Propagate(work, opts.RecordSteps)
	s.steps = append(s.steps, prop.Steps...)

	switch {
	case prop.Impossible:
		// Fall through with zero solutions.
	case prop.Solved:
		// Propagation is deduction only, so a propagation-solved board
		// admits exactly this one completion even in FindAll mode.
		res.Solutions = append(res.Solutions, work)
	default:
		sr := &searcher{
			record:   opts.RecordSteps,
			backjump: opts.UseBackjumping && !opts.FindAll,
			limit:    limit,
		}
		// Conflict analysis needs masks derivable from placements alone;
		// pencil marks or root-level pair eliminations rule it out.
		taint := !sr.backjump || !masksDerived(work)
		sr.search(work, make(reasonMap), taint)
		s.steps = append(s.steps, sr.steps...)
		res.Solutions = append(res.Solutions, sr.solutions...)
		res.Stats.Nodes = sr.nodes
		res.Stats.Backjumps = sr.backjumps
	}

	res.Count = len(res.Solutions)
	res.Solved = res.Count > 0
	switch {
	case res.Count > 1:
		res.Reason = ReasonMultipleSolutions
	case res.Count == 1:
		res.Reason = ReasonSolved
	default:
		res.Reason = ReasonNoSolution
	}
	res.Stats.Duration = time.Since(start)
	return res, nil
}

// HasUniqueSolution reports whether b admits exactly one solution. It
// searches exhaustively for a second solution with an accumulation cap
// of 2, leaving the Solver's assigned board untouched. Invalid boards
// are not unique by definition.
func (s *Solver) HasUniqueSolution(b *board.Board) bool {
	if b == nil || !b.IsValid() {
		return false
	}
	probe := NewSolver()
	probe.SetBoard(b)
	res, err := probe.Solve(Options{FindAll: true, MaxSolutions: 2})
	if err != nil {
		return false
	}
	return res.Count == 1
}
