// internal/solver/feedback.go
//
// Feedback translation: turning a guess into per-position verdicts.
//
// Two sources produce a Feedback:
//   - Score simulates the game against a known target (self-play).
//   - ParseFeedback decodes a human-annotated line such as ".aE..", where an
//     uppercase letter is Correct, a lowercase letter is Misplaced and a
//     placeholder ('.' or '_') is Absent. Short input pads with Absent.
//
// Status is an explicit tag; letter case is only used at the text boundary.

package solver

import (
	"fmt"
	"strings"
)

// Status is the verdict for one board position.
type Status uint8

const (
	Absent Status = iota
	Misplaced
	Correct
)

func (s Status) String() string {
	switch s {
	case Correct:
		return "correct"
	case Misplaced:
		return "misplaced"
	default:
		return "absent"
	}
}

// Verdict pairs the guessed letter at a position with its status.
type Verdict struct {
	Letter byte
	Status Status
}

// Feedback is the verdict for every position of one guess.
type Feedback [WordLength]Verdict

// Solved reports whether every position is Correct.
func (f Feedback) Solved() bool {
	for _, v := range f {
		if v.Status != Correct {
			return false
		}
	}
	return true
}

// Word returns the guess the feedback was given for.
func (f Feedback) Word() Word {
	b := make([]byte, WordLength)
	for i, v := range f {
		b[i] = v.Letter
	}
	return Word(b)
}

// String renders f in the annotated form accepted by ParseFeedback.
func (f Feedback) String() string {
	var b strings.Builder
	for _, v := range f {
		switch v.Status {
		case Correct:
			b.WriteByte(v.Letter - 'a' + 'A')
		case Misplaced:
			b.WriteByte(v.Letter)
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Score evaluates guess against target with the standard two-pass rules.
//
// Pass 1 marks exact matches Correct and counts the target letters left over.
// Pass 2 walks the remaining positions in ascending order and marks a letter
// Misplaced while unmatched copies remain, Absent otherwise. A letter is
// therefore credited at most as many times as it occurs in target, with
// Correct placements taking priority.
//
// Both words must be valid (see ParseWord).
func Score(guess, target Word) Feedback {
	var fb Feedback
	var remaining [alphabet]int

	for i := 0; i < WordLength; i++ {
		fb[i].Letter = guess[i]
		if guess[i] == target[i] {
			fb[i].Status = Correct
		} else {
			remaining[idx(target[i])]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if fb[i].Status == Correct {
			continue
		}
		if j := idx(guess[i]); remaining[j] > 0 {
			fb[i].Status = Misplaced
			remaining[j]--
		}
	}
	return fb
}

// ParseFeedback decodes an annotated result line for guess.
//
// Each annotated letter must be the guessed letter at that position. Input
// longer than WordLength, foreign letters and any other characters fail with
// ErrInvalidFeedback.
func ParseFeedback(guess Word, input string) (Feedback, error) {
	input = strings.TrimSpace(input)
	if len(input) > WordLength {
		return Feedback{}, fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidFeedback, input, WordLength)
	}

	var fb Feedback
	for i := 0; i < WordLength; i++ {
		fb[i].Letter = guess[i]
	}
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '.' || c == '_':
			// absent
		case c >= 'A' && c <= 'Z':
			if c-'A'+'a' != guess[i] {
				return Feedback{}, fmt.Errorf("%w: position %d is %q, guess has %q", ErrInvalidFeedback, i+1, c, guess[i])
			}
			fb[i].Status = Correct
		case c >= 'a' && c <= 'z':
			if c != guess[i] {
				return Feedback{}, fmt.Errorf("%w: position %d is %q, guess has %q", ErrInvalidFeedback, i+1, c, guess[i])
			}
			fb[i].Status = Misplaced
		default:
			return Feedback{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidFeedback, c)
		}
	}
	return fb, nil
}
