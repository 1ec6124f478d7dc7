package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(letters string) LetterSet {
	var s LetterSet
	for i := 0; i < len(letters); i++ {
		s = s.With(letters[i])
	}
	return s
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		words []Word
		know  Knowledge
		want  []Word
	}{
		{
			name:  "no constraints",
			words: []Word{"abcde", "abdce", "bcdef"},
			want:  []Word{"abcde", "abdce", "bcdef"},
		},
		{
			name:  "first letter confirmed",
			words: []Word{"abcde", "abdce", "bcdef"},
			know:  Knowledge{Confirmed: [WordLength]byte{'a'}},
			want:  []Word{"abcde", "abdce"},
		},
		{
			name:  "middle letter confirmed",
			words: []Word{"abcde", "abdce", "bccef"},
			know:  Knowledge{Confirmed: [WordLength]byte{0, 0, 'c'}},
			want:  []Word{"abcde", "bccef"},
		},
		{
			name:  "several letters confirmed",
			words: []Word{"abcde", "abdce", "bccef"},
			know:  Knowledge{Confirmed: [WordLength]byte{'a', 0, 'c'}},
			want:  []Word{"abcde"},
		},
		{
			name:  "misplaced letter",
			words: []Word{"abcde", "bcdea", "bccef"},
			know:  Knowledge{ExcludedAt: [WordLength]LetterSet{set("a")}},
			want:  []Word{"bcdea"},
		},
		{
			name:  "misplaced letter found nowhere",
			words: []Word{"abcde", "bcdea", "bccef"},
			know:  Knowledge{ExcludedAt: [WordLength]LetterSet{set("z")}},
			want:  []Word{},
		},
		{
			name:  "several misplaced letters",
			words: []Word{"abcde", "zbbde", "abbce"},
			know:  Knowledge{ExcludedAt: [WordLength]LetterSet{set("b"), 0, 0, set("c")}},
			want:  []Word{"abcde"},
		},
		{
			name:  "excluded letter",
			words: []Word{"abcde", "zbcde", "abbbe"},
			know:  Knowledge{Excluded: set("z")},
			want:  []Word{"abcde", "abbbe"},
		},
		{
			name:  "letter in wrong spot",
			words: []Word{"abcde", "zbcde", "abbbf"},
			know:  Knowledge{ExcludedAt: [WordLength]LetterSet{0, set("a")}},
			want:  []Word{"abcde", "abbbf"},
		},
		{
			name:  "excluded letter still allowed when required elsewhere",
			words: []Word{"abcde", "bacde"},
			know: Knowledge{
				Excluded:   set("a"),
				ExcludedAt: [WordLength]LetterSet{set("a")},
			},
			want: []Word{"bacde"},
		},
		{
			name:  "wrong length skipped",
			words: []Word{"abcde", "abcdef", "abc"},
			want:  []Word{"abcde"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.words, tt.know)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Filter(got, tt.know), "filter is idempotent")
			assert.LessOrEqual(t, len(got), len(tt.words))
		})
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	words := []Word{"abcde", "bcdea", "bccef"}
	_ = Filter(words, Knowledge{Confirmed: [WordLength]byte{'b'}})
	assert.Equal(t, []Word{"abcde", "bcdea", "bccef"}, words)
}

func TestApply(t *testing.T) {
	t.Run("correct confirms and clears positional exclusions", func(t *testing.T) {
		k := Knowledge{ExcludedAt: [WordLength]LetterSet{0, set("a"), 0, set("ab")}}
		fb, err := ParseFeedback("abbey", "A")
		require.NoError(t, err)

		next := k.Apply(fb)
		assert.Equal(t, byte('a'), next.Confirmed[0])
		for i, s := range next.ExcludedAt {
			assert.False(t, s.Has('a'), "position %d", i)
		}
		assert.True(t, next.ExcludedAt[3].Has('b'))
	})

	t.Run("misplaced excludes the position only", func(t *testing.T) {
		fb, err := ParseFeedback("crane", ".r...")
		require.NoError(t, err)

		next := Knowledge{}.Apply(fb)
		assert.Equal(t, set("r"), next.ExcludedAt[1])
		assert.Equal(t, set("cane"), next.Excluded)
		assert.Equal(t, set("r"), next.Misplaced())
	})

	t.Run("absent duplicate of a present letter is not excluded globally", func(t *testing.T) {
		next := Knowledge{}.Apply(Score("lolly", "spool"))
		assert.False(t, next.Excluded.Has('l'))
		assert.True(t, next.Excluded.Has('y'))
		assert.True(t, next.ExcludedAt[0].Has('l'))
		assert.True(t, next.ExcludedAt[2].Has('l'))
		assert.True(t, next.ExcludedAt[3].Has('l'))
		assert.True(t, next.ExcludedAt[1].Has('o'))
	})

	t.Run("absent duplicate of a correct letter leaves no trace", func(t *testing.T) {
		next := Knowledge{}.Apply(Score("eerie", "crane"))
		assert.Equal(t, byte('e'), next.Confirmed[4])
		assert.False(t, next.Excluded.Has('e'))
		assert.False(t, next.Misplaced().Has('e'))
		assert.True(t, next.Allows("crane"))
	})

	t.Run("receiver is untouched", func(t *testing.T) {
		k := Knowledge{}
		_ = k.Apply(Score("crane", "slate"))
		assert.Equal(t, Knowledge{}, k)
	})

	t.Run("applying the same round twice changes nothing", func(t *testing.T) {
		for _, target := range testWords {
			once := Knowledge{}.Apply(Score("lolly", target))
			assert.Equal(t, once, once.Apply(Score("lolly", target)), target)
		}
	})
}

// Every round of self-play must keep the target and respect the invariants.
func TestKnowledgeKeepsTarget(t *testing.T) {
	for _, target := range testWords {
		var k Knowledge
		candidates := testWords
		for round := 0; round < DefaultMaxRounds; round++ {
			guess, err := Best(candidates)
			require.NoError(t, err, target)
			fb := Score(guess, target)
			if fb.Solved() {
				break
			}
			prev := len(candidates)
			k, candidates = Step(k, candidates, fb)

			require.Contains(t, candidates, target, "round %d lost target", round+1)
			assert.Less(t, len(candidates), prev)
			assert.Equal(t, candidates, Filter(candidates, k))
			assert.True(t, k.Misplaced()&k.confirmedLetters() == 0)
			for i, c := range k.Confirmed {
				if c == 0 {
					continue
				}
				for _, w := range candidates {
					assert.Equal(t, c, w[i])
				}
			}
		}
	}
}
