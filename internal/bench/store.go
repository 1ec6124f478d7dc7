// internal/bench/store.go
//
// SQLite persistence for benchmark runs.
// Responsibilities:
//   - Opening the database with WAL journaling, a busy timeout and foreign keys.
//   - Applying the embedded migrations once each, recorded in _migrations.
//   - Saving a run with its per-target outcomes, and reading history back.

package bench

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Store records benchmark runs.
type Store struct {
	db *sql.DB
}

// Run is one stored benchmark sweep.
type Run struct {
	ID          int64
	StartedAt   time.Time
	FinishedAt  time.Time
	Fingerprint string // words.Fingerprint of the candidate list
	Words       int
	MaxRounds   int
	Targets     int
	Solved      int
	Average     float64
	WithinSix   float64
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err := migrate(db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// migrate applies every *.sql file of migrations in lexical order, skipping
// those already recorded in _migrations. Each file runs in its own transaction.
func migrate(db *sql.DB, migrations fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// SaveRun stores r and its outcomes atomically and returns the new run ID.
// r.ID is ignored.
func (s *Store) SaveRun(ctx context.Context, r Run, outcomes []Outcome) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO runs
            (started_at, finished_at, fingerprint, words, targets, max_rounds, solved, average, within_six)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.UTC().Format(time.RFC3339), r.FinishedAt.UTC().Format(time.RFC3339),
		r.Fingerprint, r.Words, r.Targets, r.MaxRounds, r.Solved, r.Average, r.WithinSix,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO outcomes (run_id, target, rounds, solved, failure) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	for _, o := range outcomes {
		if _, err := stmt.ExecContext(ctx, id, string(o.Target), o.Rounds, o.Solved, o.Failure); err != nil {
			return 0, fmt.Errorf("insert outcome %s: %w", o.Target, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Runs returns the most recent runs, newest first. limit <= 0 means 20.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, started_at, finished_at, fingerprint, words, targets, max_rounds, solved, average, within_six
        FROM runs
        ORDER BY id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var (
			r                 Run
			started, finished string
		)
		if err := rows.Scan(&r.ID, &started, &finished, &r.Fingerprint, &r.Words, &r.Targets,
			&r.MaxRounds, &r.Solved, &r.Average, &r.WithinSix); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Outcomes returns the stored outcomes of a run, ordered by guesses then target.
func (s *Store) Outcomes(ctx context.Context, runID int64) ([]Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT target, rounds, solved, failure
        FROM outcomes
        WHERE run_id=?
        ORDER BY solved DESC, rounds ASC, target ASC`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Outcome
	for rows.Next() {
		var (
			o      Outcome
			target string
		)
		if err := rows.Scan(&target, &o.Rounds, &o.Solved, &o.Failure); err != nil {
			return nil, err
		}
		o.Target = solver.Word(target)
		out = append(out, o)
	}
	return out, rows.Err()
}
