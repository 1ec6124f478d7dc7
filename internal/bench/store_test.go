package bench

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "bench.db")
	st, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, path
}

func TestStoreSaveAndRead(t *testing.T) {
	ctx := context.Background()
	st, _ := openTestStore(t)

	outcomes := []Outcome{
		{Target: "crane", Rounds: 3, Solved: true},
		{Target: "slate", Rounds: 1, Solved: true},
		{Target: "petal", Rounds: 20, Failure: "round limit exhausted"},
	}
	sum := Summarize(outcomes)
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	run := Run{
		StartedAt:   started,
		FinishedAt:  started.Add(time.Minute),
		Fingerprint: "abc123",
		Words:       500,
		MaxRounds:   20,
		Targets:     sum.Targets,
		Solved:      sum.Solved,
		Average:     sum.Average,
		WithinSix:   sum.WithinSix,
	}

	id, err := st.SaveRun(ctx, run, outcomes)
	require.NoError(t, err)
	assert.Positive(t, id)

	second, err := st.SaveRun(ctx, run, outcomes[:1])
	require.NoError(t, err)
	assert.Greater(t, second, id)

	runs, err := st.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID, "newest first")

	got := runs[1]
	run.ID = id
	assert.Equal(t, run, got)

	stored, err := st.Outcomes(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []Outcome{outcomes[1], outcomes[0], outcomes[2]}, stored)
}

func TestStoreMigratesOnce(t *testing.T) {
	st, path := openTestStore(t)
	require.NoError(t, st.Close())

	again, err := Open(path)
	require.NoError(t, err)
	defer again.Close()

	var n int
	require.NoError(t, again.db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}
