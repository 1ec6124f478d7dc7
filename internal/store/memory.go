// internal/store/memory.go
//
// In-memory store of interactive solver sessions served over HTTP.
//
// Characteristics:
//   - Sessions are stored and returned by value. Candidate slices are
//     replaced each round, never written in place, so copies may share them.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts; Prune drops idle sessions.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is the solver state of one interactive client.
type Session struct {
	ID         string
	Knowledge  solver.Knowledge
	Candidates []solver.Word
	Guess      solver.Word // guess awaiting feedback
	Round      int         // round of Guess, 1-indexed
	Done       bool
	UpdatedAt  time.Time
}

// Store persists sessions.
type Store interface {
	// Save inserts or replaces s.
	Save(ctx context.Context, s Session) error

	// Get returns the session with id or ErrNotFound.
	Get(ctx context.Context, id string) (Session, error)

	// Delete removes a session; unknown ids are ignored.
	Delete(ctx context.Context, id string) error

	// Prune removes sessions not updated since before and reports how many.
	Prune(ctx context.Context, before time.Time) (int, error)
}

type memory struct {
	mu       sync.RWMutex       // guards sessions
	sessions map[string]Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]Session)}
}

func (m *memory) Save(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return Session{}, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Prune(ctx context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}
