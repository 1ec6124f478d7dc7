// internal/solver/word.go
//
// Word and letter-set primitives shared by the solver.
//
// A Word is exactly WordLength lowercase ASCII letters. Letter sets are a
// 26-bit mask so Knowledge stays a plain comparable value that can be copied
// round over round.

package solver

import (
	"fmt"
	"strings"
)

const (
	// WordLength is the fixed board width.
	WordLength = 5
	// DefaultMaxRounds bounds a single Run.
	DefaultMaxRounds = 20

	alphabet = 26
)

// Word is a candidate or guess. Values produced by ParseWord are always
// WordLength lowercase letters.
type Word string

// ParseWord trims and lowercases s and checks it is a playable word.
func ParseWord(s string) (Word, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) != WordLength || !isAlpha(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	return Word(w), nil
}

// ParseWords converts each entry with ParseWord, failing on the first bad one.
func ParseWords(list ...string) ([]Word, error) {
	out := make([]Word, 0, len(list))
	for _, s := range list {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// idx maps a lowercase letter to 0..25; anything else maps out of range.
func idx(c byte) int { return int(c) - 'a' }

// LetterSet is a set of lowercase letters.
type LetterSet uint32

// With returns s plus c. Non-letters are ignored.
func (s LetterSet) With(c byte) LetterSet {
	i := idx(c)
	if i < 0 || i >= alphabet {
		return s
	}
	return s | 1<<i
}

// Without returns s minus c.
func (s LetterSet) Without(c byte) LetterSet {
	i := idx(c)
	if i < 0 || i >= alphabet {
		return s
	}
	return s &^ (1 << i)
}

// Has reports whether c is in s.
func (s LetterSet) Has(c byte) bool {
	i := idx(c)
	if i < 0 || i >= alphabet {
		return false
	}
	return s&(1<<i) != 0
}

func (s LetterSet) Empty() bool { return s == 0 }

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	var b strings.Builder
	for i := 0; i < alphabet; i++ {
		if s&(1<<i) != 0 {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}
