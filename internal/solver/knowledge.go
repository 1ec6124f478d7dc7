// internal/solver/knowledge.go
//
// Knowledge accumulates feedback across rounds, and Filter applies it to a
// candidate list.
//
// Knowledge is a value: Apply returns the next state and leaves the receiver
// untouched, so a driver threads it through rounds like a reducer.
//
// Invariants maintained by Apply:
//   - a confirmed letter is never in any ExcludedAt set;
//   - Excluded only receives a letter when the same guess shows no copy of it
//     as Correct or Misplaced.

package solver

// Knowledge is everything learned so far about the hidden word.
type Knowledge struct {
	// Confirmed holds the known letter per position, 0 if unknown.
	Confirmed [WordLength]byte
	// Excluded holds letters absent from the word entirely.
	Excluded LetterSet
	// ExcludedAt holds letters known to be in the word but not at that position.
	ExcludedAt [WordLength]LetterSet
}

// Apply folds one round of feedback into k and returns the result.
//
// The outcome does not depend on the order positions are visited: positional
// exclusions are recorded first and every confirmed letter is stripped from
// them at the end.
func (k Knowledge) Apply(fb Feedback) Knowledge {
	next := k

	// Letters this guess shows at least one copy of.
	var present LetterSet
	for _, v := range fb {
		if v.Status != Absent {
			present = present.With(v.Letter)
		}
	}

	for i, v := range fb {
		switch v.Status {
		case Correct:
			next.Confirmed[i] = v.Letter
		case Misplaced:
			next.ExcludedAt[i] = next.ExcludedAt[i].With(v.Letter)
		case Absent:
			// An extra copy of a present letter: no more copies, not zero.
			if present.Has(v.Letter) {
				next.ExcludedAt[i] = next.ExcludedAt[i].With(v.Letter)
			} else {
				next.Excluded = next.Excluded.With(v.Letter)
			}
		}
	}

	confirmed := next.confirmedLetters()
	for i := range next.ExcludedAt {
		next.ExcludedAt[i] &^= confirmed
	}
	return next
}

// Misplaced returns the letters that must still appear at some unconfirmed
// position: the union of every ExcludedAt set.
func (k Knowledge) Misplaced() LetterSet {
	var out LetterSet
	for _, s := range k.ExcludedAt {
		out |= s
	}
	return out
}

func (k Knowledge) confirmedLetters() LetterSet {
	var out LetterSet
	for _, c := range k.Confirmed {
		if c != 0 {
			out = out.With(c)
		}
	}
	return out
}

// Allows reports whether w is consistent with k.
//
// Three checks run per word: confirmed positions must match exactly;
// unconfirmed positions must avoid their positional exclusions and any
// globally excluded letter that is not also required elsewhere; and every
// required (misplaced) letter must show up at some unconfirmed position.
// Words of the wrong length never pass.
func (k Knowledge) Allows(w Word) bool {
	if len(w) != WordLength {
		return false
	}
	required := k.Misplaced()
	var seen LetterSet
	for i := 0; i < WordLength; i++ {
		c := w[i]
		if k.Confirmed[i] != 0 {
			if c != k.Confirmed[i] {
				return false
			}
			continue
		}
		if k.ExcludedAt[i].Has(c) {
			return false
		}
		if required.Has(c) {
			seen = seen.With(c)
			continue
		}
		if k.Excluded.Has(c) {
			return false
		}
	}
	return seen == required
}

// Filter returns the words allowed by k, in their original order. The input
// slice is not modified.
func Filter(words []Word, k Knowledge) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if k.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}
