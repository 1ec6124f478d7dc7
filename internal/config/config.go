// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is loaded first when present; real
// environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable of the solver binary.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"` // console | json

	WordsFile     string `env:"WORDS_FILE"` // empty: embedded list
	MaxRounds     int    `env:"MAX_ROUNDS" envDefault:"20"`
	PromptRetries int    `env:"PROMPT_RETRIES" envDefault:"5"`
	DailySalt     string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	DBPath       string `env:"DB_PATH" envDefault:"./data/bench.db"`
	BenchWorkers int    `env:"BENCH_WORKERS"` // 0: one per CPU

	Port          string        `env:"PORT" envDefault:"5175"`
	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"1h"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the solver cannot run with.
func (c Config) Validate() error {
	switch {
	case c.MaxRounds < 1:
		return fmt.Errorf("MAX_ROUNDS must be at least 1, got %d", c.MaxRounds)
	case c.PromptRetries < 1:
		return fmt.Errorf("PROMPT_RETRIES must be at least 1, got %d", c.PromptRetries)
	case c.BenchWorkers < 0:
		return fmt.Errorf("BENCH_WORKERS must not be negative, got %d", c.BenchWorkers)
	case c.SessionTTL <= 0:
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// SetupLogging configures the global zerolog logger. Logs go to stderr so
// stdout stays clean for solver output.
func (c Config) SetupLogging() {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if c.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
