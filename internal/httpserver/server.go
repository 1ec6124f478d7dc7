// internal/httpserver/server.go
//
// HTTP surface for the solver.
// Responsibilities:
//   - Router + middleware (JSON, request IDs, panic recovery, timeouts, logging).
//   - Diagnostics: "/", "/health", "/words/stats".
//   - Self-play: POST /solve plays a whole game against a given target.
//   - Interactive sessions: POST /sessions starts one and returns the first
//     guess plus a session token; POST /sessions/{id}/feedback takes the
//     annotated result of the current guess and returns the next one.
//
// Notes:
//   - Session routes require "Authorization: Bearer <token>" issued for that
//     session (HS256, expires after Options.TTL).
//   - Each request loads the session, computes the next state with
//     solver.Step and saves it back; no solver state is shared.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Options tunes the server.
type Options struct {
	Secret    []byte        // HMAC key for session tokens
	TTL       time.Duration // session token lifetime and idle session expiry
	MaxRounds int           // per game; <= 0 means solver.DefaultMaxRounds
}

// Server bundles router, session store and the candidate list.
type Server struct {
	r           *chi.Mux
	store       store.Store
	words       []solver.Word
	fingerprint string
	opts        Options
	now         func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(list []solver.Word, st store.Store, opts Options) *Server {
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = solver.DefaultMaxRounds
	}
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	s := &Server{
		r:           chi.NewRouter(),
		store:       st,
		words:       list,
		fingerprint: words.Fingerprint(list),
		opts:        opts,
		now:         time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access line
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/words/stats","POST /solve","POST /sessions","POST /sessions/{id}/feedback"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/words/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"words": len(s.words), "fingerprint": s.fingerprint})
	})

	s.r.Post("/solve", s.handleSolve)

	s.r.Post("/sessions", s.handleNewSession)
	s.r.Route("/sessions/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleGetSession)
		r.Post("/feedback", s.handleFeedback)
		r.Delete("/", s.handleDeleteSession)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ SOLVE --------------------------------------

type solveReq struct {
	Target string `json:"target"`
}

type solveRes struct {
	Target   string   `json:"target"`
	State    string   `json:"state"` // solved | exhausted
	Rounds   int      `json:"rounds"`
	Guesses  []string `json:"guesses"`
	Feedback []string `json:"feedback"`
}

// handleSolve plays a full automated game against the requested target.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	target, err := solver.ParseWord(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_word", err.Error())
		return
	}

	res, err := solver.Run(r.Context(), s.words, solver.Oracle{Target: target}, solver.WithMaxRounds(s.opts.MaxRounds))
	out := solveRes{Target: string(target), State: "solved", Rounds: res.Rounds}
	for i, g := range res.Guesses {
		out.Guesses = append(out.Guesses, string(g))
		out.Feedback = append(out.Feedback, res.Feedback[i].String())
	}
	switch {
	case err == nil:
	case errors.Is(err, solver.ErrExhausted):
		out.State = "exhausted"
	case errors.Is(err, solver.ErrEmptyCandidateSet):
		writeError(w, http.StatusUnprocessableEntity, "empty_candidate_set", "target is not reachable from the word list")
		return
	default:
		log.Warn().Err(err).Str("target", string(target)).Msg("solve aborted")
		writeError(w, http.StatusServiceUnavailable, "aborted", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ----------------------------- SESSIONS ------------------------------------

type sessionRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token,omitempty"`
	State     string `json:"state"` // playing | solved | exhausted
	Guess     string `json:"guess,omitempty"`
	Round     int    `json:"round"`
	Remaining int    `json:"remaining"`
}

func sessionView(sess store.Session, state string) sessionRes {
	out := sessionRes{SessionID: sess.ID, State: state, Round: sess.Round, Remaining: len(sess.Candidates)}
	if state == "playing" {
		out.Guess = string(sess.Guess)
	}
	return out
}

// handleNewSession starts an interactive session with the best opening guess.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	if n, err := s.store.Prune(r.Context(), now.Add(-s.opts.TTL)); err != nil {
		log.Warn().Err(err).Msg("prune sessions")
	} else if n > 0 {
		log.Debug().Int("pruned", n).Msg("expired sessions dropped")
	}

	guess, err := solver.Best(s.words)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "empty_word_list", err.Error())
		return
	}
	sess := store.Session{
		ID:         genID(),
		Candidates: s.words,
		Guess:      guess,
		Round:      1,
		UpdatedAt:  now,
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	tok, err := s.signSession(sess.ID, now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed", "")
		return
	}
	out := sessionView(sess, "playing")
	out.Token = tok
	writeJSON(w, http.StatusCreated, out)
}

// loadSession fetches the {id} session, writing a 404 when it is gone.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (store.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "unknown session")
		return store.Session{}, false
	}
	return sess, true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	state := "playing"
	if sess.Done {
		state = "finished"
	}
	writeJSON(w, http.StatusOK, sessionView(sess, state))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "delete_failed", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type feedbackReq struct {
	Feedback string `json:"feedback"` // e.g. ".aE.."
}

// handleFeedback applies the result of the current guess and proposes the next.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	if sess.Done {
		writeError(w, http.StatusConflict, "session_finished", "")
		return
	}

	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	fb, err := solver.ParseFeedback(sess.Guess, req.Feedback)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_feedback", err.Error())
		return
	}

	sess.UpdatedAt = s.now()
	state := "playing"
	switch {
	case fb.Solved():
		sess.Done, state = true, "solved"
	case sess.Round >= s.opts.MaxRounds:
		sess.Knowledge, sess.Candidates = solver.Step(sess.Knowledge, sess.Candidates, fb)
		sess.Done, state = true, "exhausted"
	default:
		sess.Knowledge, sess.Candidates = solver.Step(sess.Knowledge, sess.Candidates, fb)
		guess, err := solver.Best(sess.Candidates)
		if err != nil {
			sess.Done = true
			s.save(r, sess)
			writeError(w, http.StatusConflict, "empty_candidate_set", "feedback so far rules out every word")
			return
		}
		sess.Guess = guess
		sess.Round++
	}
	s.save(r, sess)
	writeJSON(w, http.StatusOK, sessionView(sess, state))
}

func (s *Server) save(r *http.Request, sess store.Session) {
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("save session")
	}
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	body := map[string]string{"error": code}
	if msg != "" {
		body["message"] = msg
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	writeJSON(w, status, body)
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
