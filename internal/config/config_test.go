package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 20, c.MaxRounds)
	assert.Equal(t, 5, c.PromptRetries)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, time.Hour, c.SessionTTL)
	assert.Empty(t, c.WordsFile)
}

func TestLoadFromEnvAndDotenv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MAX_ROUNDS=8\nDAILY_SALT=from_file\n"), 0o644))
	// godotenv exports what it reads; undo that for the other tests.
	t.Cleanup(func() { _ = os.Unsetenv("MAX_ROUNDS") })
	t.Setenv("DAILY_SALT", "from_env")
	t.Setenv("SESSION_TTL", "15m")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, c.MaxRounds)
	assert.Equal(t, "from_env", c.DailySalt)
	assert.Equal(t, 15*time.Minute, c.SessionTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("MAX_ROUNDS", "0")
	_, err := Load()
	assert.ErrorContains(t, err, "MAX_ROUNDS")

	t.Setenv("MAX_ROUNDS", "many")
	_, err = Load()
	assert.Error(t, err)
}
