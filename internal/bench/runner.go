// internal/bench/runner.go
//
// Self-play benchmark: solve every target of a list and collect how many
// guesses each took.
//
// Each target is an independent, single-threaded solver.Run; the runner only
// spreads targets over a bounded pool of workers.

package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Outcome is the result of self-play against one target.
type Outcome struct {
	Target solver.Word
	Rounds int
	Solved bool
	// Failure explains an unsolved outcome ("round limit exhausted", ...).
	Failure string
}

// Runner plays a list of targets.
type Runner struct {
	// Workers bounds concurrent games; <= 0 means runtime.NumCPU().
	Workers int
	// MaxRounds per game; <= 0 means solver.DefaultMaxRounds.
	MaxRounds int
	// Progress, when set, is called once per finished target. It may be
	// called from several goroutines at once.
	Progress func(Outcome)
}

func (r Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}

// Run plays every target against words and returns outcomes in target order.
// Unsolved games are outcomes, not errors; Run only fails on cancellation.
func (r Runner) Run(ctx context.Context, words, targets []solver.Word) ([]Outcome, error) {
	out := make([]Outcome, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			res, err := solver.Run(ctx, words, solver.Oracle{Target: target}, solver.WithMaxRounds(r.MaxRounds))
			o := Outcome{Target: target, Rounds: res.Rounds, Solved: res.Solved}
			switch {
			case err == nil:
			case errors.Is(err, solver.ErrExhausted), errors.Is(err, solver.ErrEmptyCandidateSet):
				o.Failure = err.Error()
			default:
				return fmt.Errorf("bench: target %s: %w", target, err)
			}
			out[i] = o
			if r.Progress != nil {
				r.Progress(o)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
