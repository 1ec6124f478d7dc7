package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	s := Session{ID: "a", Guess: "crane", Round: 1, Candidates: []solver.Word{"crane", "slate"}}
	require.NoError(t, st.Save(ctx, s))

	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	got.Round = 2
	require.NoError(t, st.Save(ctx, got))
	got, err = st.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Round)

	require.NoError(t, st.Delete(ctx, "a"))
	_, err = st.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Delete(ctx, "a"))
}

func TestMemoryStorePrune(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	now := time.Now()

	require.NoError(t, st.Save(ctx, Session{ID: "old", UpdatedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, st.Save(ctx, Session{ID: "new", UpdatedAt: now}))

	n, err := st.Prune(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = st.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(ctx, "new")
	assert.NoError(t, err)
}
