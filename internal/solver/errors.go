package solver

import "errors"

var (
	// ErrInvalidWord is returned for words that are not WordLength letters.
	ErrInvalidWord = errors.New("invalid word")
	// ErrInvalidFeedback is returned when annotated feedback cannot be decoded.
	ErrInvalidFeedback = errors.New("invalid feedback")
	// ErrEmptyCandidateSet means the accumulated feedback ruled out every word.
	ErrEmptyCandidateSet = errors.New("no candidate words left")
	// ErrExhausted means the round limit was reached without a solve.
	ErrExhausted = errors.New("round limit exhausted")
)
