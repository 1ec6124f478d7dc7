package bench

import "github.com/robalobadob/wordle/apps/solver/internal/solver"

// WinWithin is the guess budget of the real game, used for WithinSix.
const WinWithin = 6

// Summary aggregates a set of outcomes.
type Summary struct {
	Targets int
	Solved  int
	Failed  []solver.Word
	// Average guesses over solved targets.
	Average float64
	// WithinSix is the share of all targets solved in WinWithin guesses or fewer.
	WithinSix float64
	// Best and Worst are the solved targets with the fewest and most guesses;
	// ties keep the earlier target.
	Best, Worst Outcome
	// Histogram counts solved targets by number of guesses.
	Histogram map[int]int
}

// Summarize computes aggregate statistics.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Targets: len(outcomes), Histogram: map[int]int{}}
	total, within := 0, 0
	for _, o := range outcomes {
		if !o.Solved {
			s.Failed = append(s.Failed, o.Target)
			continue
		}
		if s.Solved == 0 || o.Rounds < s.Best.Rounds {
			s.Best = o
		}
		if s.Solved == 0 || o.Rounds > s.Worst.Rounds {
			s.Worst = o
		}
		s.Solved++
		total += o.Rounds
		s.Histogram[o.Rounds]++
		if o.Rounds <= WinWithin {
			within++
		}
	}
	if s.Solved > 0 {
		s.Average = float64(total) / float64(s.Solved)
	}
	if s.Targets > 0 {
		s.WithinSix = float64(within) / float64(s.Targets)
	}
	return s
}
