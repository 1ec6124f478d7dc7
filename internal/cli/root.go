// Package cli wires the solver binary's cobra commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	cfg       config.Config
	wordsFile string
	maxRounds int
}

func (o *rootOptions) loadWords() ([]solver.Word, error) {
	return words.Load(o.wordsFile)
}

// NewRootCommand builds the command tree. With a target argument (or
// --daily) the solver plays itself; without one it asks a human for the
// feedback of every guess.
func NewRootCommand(cfg config.Config) *cobra.Command {
	o := &rootOptions{cfg: cfg}
	var (
		useDaily bool
		show     bool
	)

	cmd := &cobra.Command{
		Use:   "wordlesolver [target]",
		Short: "Solve five-letter word puzzles by elimination",
		Long: `wordlesolver suggests guesses for a five-letter word puzzle.

Run it without arguments and type the feedback you get for each guess,
or pass the hidden word to watch the solver find it on its own.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := o.loadWords()
			if err != nil {
				return err
			}

			var target solver.Word
			switch {
			case len(args) == 1:
				if target, err = solver.ParseWord(args[0]); err != nil {
					return err
				}
			case useDaily:
				var ok bool
				if target, ok = daily.Target(time.Now(), cfg.DailySalt, list); !ok {
					return fmt.Errorf("no daily word: %w", solver.ErrEmptyCandidateSet)
				}
				log.Debug().Str("date", daily.DateKey(time.Now())).Msg("playing daily word")
			default:
				return o.runInteractive(cmd, list)
			}
			return o.runAutomated(cmd, list, target, show)
		},
	}

	cmd.PersistentFlags().StringVar(&o.wordsFile, "words", cfg.WordsFile, "candidate word file, one word per line (default: built-in list)")
	cmd.PersistentFlags().IntVar(&o.maxRounds, "max-rounds", cfg.MaxRounds, "give up after this many guesses")
	cmd.Flags().BoolVar(&useDaily, "daily", false, "play against today's daily word")
	cmd.Flags().BoolVar(&show, "show", false, "print the tiles of every round")

	cmd.AddCommand(newBenchmarkCommand(o), newHTTPCommand(o))
	return cmd
}

func (o *rootOptions) runAutomated(cmd *cobra.Command, list []solver.Word, target solver.Word, show bool) error {
	if !words.Contains(list, target) {
		log.Warn().Str("target", string(target)).Msg("target is not in the word list; it cannot be found")
	}

	out := cmd.OutOrStdout()
	opts := []solver.Option{solver.WithMaxRounds(o.maxRounds)}
	if show {
		opts = append(opts, solver.WithObserver(func(t solver.Turn, fb solver.Feedback) {
			fmt.Fprintf(out, "%2d %s  %d left\n", t.Round, RenderFeedback(fb), t.Remaining)
		}))
	}

	res, err := solver.Run(cmd.Context(), list, solver.Oracle{Target: target}, opts...)
	switch {
	case err == nil:
		fmt.Fprintf(out, "%q %d\n", res.Last(), res.Rounds)
		return nil
	case errors.Is(err, solver.ErrExhausted):
		fmt.Fprintf(out, "%q not found after %d guesses\n", target, res.Rounds)
		return nil
	default:
		return err
	}
}

func (o *rootOptions) runInteractive(cmd *cobra.Command, list []solver.Word) error {
	out := cmd.OutOrStdout()
	p := NewPrompter(cmd.InOrStdin(), out, o.cfg.PromptRetries)

	res, err := solver.Run(cmd.Context(), list, p,
		solver.WithMaxRounds(o.maxRounds),
		solver.WithObserver(func(_ solver.Turn, fb solver.Feedback) {
			fmt.Fprintln(out, RenderFeedback(fb))
		}),
	)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Solved: %q in %d guesses\n", res.Last(), res.Rounds)
		return nil
	case errors.Is(err, solver.ErrExhausted):
		fmt.Fprintf(out, "Stopped after %d guesses\n", res.Rounds)
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		fmt.Fprintln(out, "Bye")
		return nil
	case errors.Is(err, solver.ErrEmptyCandidateSet):
		return fmt.Errorf("no word in the list matches that feedback, check the answers given: %w", err)
	default:
		return err
	}
}
