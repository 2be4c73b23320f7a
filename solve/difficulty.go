package solve

// Tier grades a puzzle 1–5 from the techniques its solution demanded.
type Tier int

const (
	// TierUnknown marks a board the grader could not solve.
	TierUnknown Tier = 0
	// TierBeginner yields to naked singles alone.
	TierBeginner Tier = 1
	// TierEasy additionally needs hidden singles.
	TierEasy Tier = 2
	// TierMedium additionally needs naked pairs.
	TierMedium Tier = 3
	// TierHard needs backtracking for a minor share of the work.
	TierHard Tier = 4
	// TierExpert is dominated by backtracking.
	TierExpert Tier = 5
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case TierBeginner:
		return "beginner"
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	case TierExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// backtrackHardRatio splits Hard from Expert: below it, guessing was a
// minority of the recorded steps.
const backtrackHardRatio = 0.25

// CalculateDifficulty solves the assigned board once with full tracing
// and maps the trace through fixed thresholds: which advanced
// techniques fired, and the ratio of backtracking attempts to total
// steps. It returns ErrNoBoard when no board is assigned and
// TierUnknown when the board has no solution; both the assigned board
// and the Solver's own trace are left untouched.
func (s *Solver) CalculateDifficulty() (Tier, error) {
	if s.b == nil {
		return TierUnknown, ErrNoBoard
	}
	probe := NewSolver()
	probe.SetBoard(s.b)
	res, err := probe.Solve(Options{RecordSteps: true, UseBackjumping: true})
	if err != nil {
		return TierUnknown, err
	}
	if !res.Solved {
		return TierUnknown, nil
	}

	var naked, hidden, pairs, tries int
	for _, st := range probe.Steps() {
		switch st.(type) {
		case NakedSingle:
			naked++
		case HiddenSingle:
			hidden++
		case NakedPair:
			pairs++
		case BacktrackTry:
			tries++
		}
	}

	total := naked + hidden + pairs + tries
	if total == 0 {
		// Nothing to deduce: the board arrived solved.
		return TierBeginner, nil
	}
	ratio := float64(tries) / float64(total)

	switch {
	case tries == 0 && pairs == 0 && hidden == 0:
		return TierBeginner, nil
	case tries == 0 && pairs == 0:
		return TierEasy, nil
	case tries == 0:
		return TierMedium, nil
	case ratio <= backtrackHardRatio:
		return TierHard, nil
	default:
		return TierExpert, nil
	}
}
