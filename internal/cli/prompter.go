package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

const feedbackHelp = "Enter the result with misplaced letters in lowercase, letters in the correct place in uppercase, and incorrect letters with . (ex: .aE..):"

// Prompter is the interactive FeedbackSource: it prints the guess and reads
// one annotated line per round from a human.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	retries int
}

// NewPrompter reads from in and writes prompts to out. A line that fails to
// parse is asked for again, at most retries times in total.
func NewPrompter(in io.Reader, out io.Writer, retries int) *Prompter {
	if retries < 1 {
		retries = 1
	}
	return &Prompter{in: bufio.NewReader(in), out: out, retries: retries}
}

// Feedback implements solver.FeedbackSource. It returns an error wrapping
// io.EOF when input ends, and one wrapping solver.ErrInvalidFeedback when
// every attempt was malformed.
func (p *Prompter) Feedback(_ context.Context, t solver.Turn) (solver.Feedback, error) {
	fmt.Fprintf(p.out, "Try %q [%d possible words]\n", t.Guess, t.Remaining)
	fmt.Fprintln(p.out, feedbackHelp)

	var lastErr error
	for attempt := 1; attempt <= p.retries; attempt++ {
		line, err := p.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return solver.Feedback{}, fmt.Errorf("read feedback: %w", err)
		}
		fb, err := solver.ParseFeedback(t.Guess, line)
		if err == nil {
			return fb, nil
		}
		lastErr = err
		if attempt < p.retries {
			fmt.Fprintf(p.out, "%v. Try again:\n", err)
		}
	}
	return solver.Feedback{}, fmt.Errorf("gave up after %d attempts: %w", p.retries, lastErr)
}
