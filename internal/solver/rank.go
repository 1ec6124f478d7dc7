// internal/solver/rank.go
//
// Guess ranking by per-position letter frequency.

package solver

// FrequencyMap counts, per position, how many candidates carry each letter.
type FrequencyMap [WordLength][alphabet]int

// BuildFrequency counts letters per position over words.
func BuildFrequency(words []Word) *FrequencyMap {
	var fm FrequencyMap
	for _, w := range words {
		for i := 0; i < len(w) && i < WordLength; i++ {
			if j := idx(w[i]); j >= 0 && j < alphabet {
				fm[i][j]++
			}
		}
	}
	return &fm
}

// Score sums the positional frequency of each distinct letter of w. A repeated
// letter only scores at its first position.
func (fm *FrequencyMap) Score(w Word) int {
	var seen LetterSet
	score := 0
	for i := 0; i < len(w) && i < WordLength; i++ {
		c := w[i]
		if seen.Has(c) {
			continue
		}
		seen = seen.With(c)
		if j := idx(c); j >= 0 && j < alphabet {
			score += fm[i][j]
		}
	}
	return score
}

// Pick returns the highest scoring word. Ties go to the earliest word.
func Pick(words []Word, fm *FrequencyMap) (Word, error) {
	if len(words) == 0 {
		return "", ErrEmptyCandidateSet
	}
	best, bestScore := words[0], fm.Score(words[0])
	for _, w := range words[1:] {
		if s := fm.Score(w); s > bestScore {
			best, bestScore = w, s
		}
	}
	return best, nil
}

// Best builds a fresh FrequencyMap over words and picks from them.
func Best(words []Word) (Word, error) {
	return Pick(words, BuildFrequency(words))
}
