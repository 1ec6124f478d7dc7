package bench

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func TestRunnerSolvesList(t *testing.T) {
	list, err := words.Load("")
	require.NoError(t, err)
	targets := list[:60]

	var (
		mu   sync.Mutex
		seen []solver.Word
	)
	r := Runner{Workers: 4, Progress: func(o Outcome) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, o.Target)
	}}
	out, err := r.Run(context.Background(), list, targets)
	require.NoError(t, err)
	require.Len(t, out, len(targets))
	assert.ElementsMatch(t, targets, seen)

	for i, o := range out {
		assert.Equal(t, targets[i], o.Target, "outcomes keep target order")
		assert.True(t, o.Solved, o.Target)
		assert.Empty(t, o.Failure)
		assert.GreaterOrEqual(t, o.Rounds, 1)
	}
}

func TestRunnerRecordsFailures(t *testing.T) {
	list := []solver.Word{"abcde", "fghij", "klmno"}
	targets := []solver.Word{"klmno", "zzzzz"}

	out, err := Runner{Workers: 1, MaxRounds: 1}.Run(context.Background(), list, targets)
	require.NoError(t, err)

	assert.False(t, out[0].Solved)
	assert.Equal(t, solver.ErrExhausted.Error(), out[0].Failure)
	assert.Equal(t, 1, out[0].Rounds)

	out, err = Runner{Workers: 2}.Run(context.Background(), list, targets)
	require.NoError(t, err)
	assert.True(t, out[0].Solved)
	assert.False(t, out[1].Solved)
	assert.Contains(t, out[1].Failure, solver.ErrEmptyCandidateSet.Error())
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	list := []solver.Word{"abcde", "fghij"}
	_, err := Runner{}.Run(ctx, list, list)
	assert.ErrorIs(t, err, context.Canceled)
}
