// internal/solver/loop.go
//
// The driver loop: rank, ask for feedback, fold it into Knowledge, filter,
// repeat until solved or out of rounds.
//
// The loop is single-threaded. Knowledge and the candidate slice are owned by
// Run and replaced (never mutated) each round through Step.

package solver

import (
	"context"
	"fmt"
)

// Turn describes the guess offered in one round.
type Turn struct {
	Round     int // 1-indexed
	Guess     Word
	Remaining int // candidates the guess was chosen from
}

// FeedbackSource supplies the verdicts for a guess.
type FeedbackSource interface {
	Feedback(ctx context.Context, t Turn) (Feedback, error)
}

// FeedbackFunc adapts a function to FeedbackSource.
type FeedbackFunc func(ctx context.Context, t Turn) (Feedback, error)

// Feedback implements FeedbackSource.
func (f FeedbackFunc) Feedback(ctx context.Context, t Turn) (Feedback, error) { return f(ctx, t) }

// Oracle scores guesses against a known target.
type Oracle struct {
	Target Word
}

// Feedback implements FeedbackSource.
func (o Oracle) Feedback(_ context.Context, t Turn) (Feedback, error) {
	return Score(t.Guess, o.Target), nil
}

// Result summarizes a Run.
type Result struct {
	Solved   bool
	Rounds   int
	Guesses  []Word
	Feedback []Feedback
}

// Last returns the final guess, or "" if none was made.
func (r Result) Last() Word {
	if len(r.Guesses) == 0 {
		return ""
	}
	return r.Guesses[len(r.Guesses)-1]
}

type runConfig struct {
	maxRounds int
	observe   func(Turn, Feedback)
}

// Option configures Run.
type Option func(*runConfig)

// WithMaxRounds caps the number of rounds. Values below 1 are ignored.
func WithMaxRounds(n int) Option {
	return func(c *runConfig) {
		if n > 0 {
			c.maxRounds = n
		}
	}
}

// WithObserver registers fn to be called after each round's feedback.
func WithObserver(fn func(Turn, Feedback)) Option {
	return func(c *runConfig) { c.observe = fn }
}

// Step is the per-round reducer: it folds fb into k and narrows candidates.
// An unsolved guess is dropped too, since it cannot be the hidden word.
func Step(k Knowledge, candidates []Word, fb Feedback) (Knowledge, []Word) {
	next := k.Apply(fb)
	out := Filter(candidates, next)
	if fb.Solved() {
		return next, out
	}
	guess := fb.Word()
	for i, w := range out {
		if w == guess {
			return next, append(out[:i], out[i+1:]...)
		}
	}
	return next, out
}

// Run plays up to the configured number of rounds over words.
//
// It returns ErrEmptyCandidateSet (wrapped) when feedback has ruled out every
// word, ErrExhausted when the limit is reached unsolved, and any error from
// src or ctx unchanged. The partial Result is returned in every case.
func Run(ctx context.Context, words []Word, src FeedbackSource, opts ...Option) (Result, error) {
	cfg := runConfig{maxRounds: DefaultMaxRounds}
	for _, o := range opts {
		o(&cfg)
	}

	var (
		res        Result
		know       Knowledge
		candidates = words
	)
	for round := 1; round <= cfg.maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		guess, err := Best(candidates)
		if err != nil {
			return res, fmt.Errorf("round %d: %w", round, err)
		}
		turn := Turn{Round: round, Guess: guess, Remaining: len(candidates)}
		fb, err := src.Feedback(ctx, turn)
		if err != nil {
			return res, err
		}

		res.Rounds = round
		res.Guesses = append(res.Guesses, guess)
		res.Feedback = append(res.Feedback, fb)
		if cfg.observe != nil {
			cfg.observe(turn, fb)
		}
		if fb.Solved() {
			res.Solved = true
			return res, nil
		}
		know, candidates = Step(know, candidates, fb)
	}
	return res, ErrExhausted
}
