// path: internal/httpx/server.go
// Package httpx wires the JSON front door to the rule engine. It carries no
// rule logic: every handler decodes a body, calls one engine operation under
// the mutex, and serializes the result.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"quantum_shogi/internal/game"
)

// Server exposes the engine over JSON plus a websocket state stream.
type Server struct {
	gameMu sync.Mutex
	game   *game.Game

	hub *hub

	srvMu sync.Mutex
	srv   *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

// NewServer builds a Server around an engine instance.
func NewServer(g *game.Game) *Server {
	return &Server{game: g, hub: newHub()}
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.Printf("HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// routes configures the ServeMux with the JSON APIs and the state stream.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/state", s.withJSON(s.handleState))
	mux.HandleFunc("/api/stage", s.withJSON(s.handleStage))
	mux.HandleFunc("/api/clear", s.withJSON(s.handleClear))
	mux.HandleFunc("/api/commit", s.withJSON(s.handleCommit))
	mux.HandleFunc("/api/reset", s.withJSON(s.handleReset))

	mux.HandleFunc("/ws", s.handleWS)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// state reads the serializable game state under the mutex.
func (s *Server) state() game.GameState {
	s.gameMu.Lock()
	defer s.gameMu.Unlock()
	return s.game.State()
}

// ---- API: state ----

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, map[string]any{"state": s.state()})
}

// ---- API: stage ----

type planBody struct {
	Mode       string `json:"mode"` // "move" or "drop"
	FromX      int    `json:"fromX"`
	FromY      int    `json:"fromY"`
	ToX        int    `json:"toX"`
	ToY        int    `json:"toY"`
	HandIndex  int    `json:"handIndex"`
	Promote    bool   `json:"promote"`
	DeltaWorld int    `json:"deltaWorld"`
	DeltaTime  int    `json:"deltaTime"`
}

type stageBody struct {
	World int      `json:"world"`
	Plan  planBody `json:"plan"`
}

func (s *Server) handleStage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body stageBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	plan, ok := body.Plan.toPlan()
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid plan mode")
		return
	}

	s.gameMu.Lock()
	s.game.Stage(body.World, plan)
	state := s.game.State()
	s.gameMu.Unlock()

	s.hub.broadcast(state)
	writeJSON(w, map[string]any{"state": state})
}

func (b planBody) toPlan() (game.MovePlan, bool) {
	plan := game.MovePlan{
		From:       game.Coord{X: b.FromX, Y: b.FromY},
		To:         game.Coord{X: b.ToX, Y: b.ToY},
		HandIndex:  b.HandIndex,
		Promote:    b.Promote,
		DeltaWorld: b.DeltaWorld,
		DeltaTime:  b.DeltaTime,
	}
	switch strings.ToLower(strings.TrimSpace(b.Mode)) {
	case "", "move":
		plan.Mode = game.ModeMove
	case "drop":
		plan.Mode = game.ModeDrop
	default:
		return plan, false
	}
	return plan, true
}

// ---- API: clear ----

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	s.gameMu.Lock()
	s.game.ClearStaged()
	state := s.game.State()
	s.gameMu.Unlock()

	s.hub.broadcast(state)
	writeJSON(w, map[string]any{"state": state})
}

// ---- API: commit ----

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	s.gameMu.Lock()
	ok := s.game.CommitTurn()
	code := s.game.LastCode()
	state := s.game.State()
	s.gameMu.Unlock()

	if ok {
		s.hub.broadcast(state)
	}
	resp := map[string]any{"ok": ok, "state": state}
	if !ok && game.IsKnownCode(code) {
		resp["code"] = code
	}
	writeJSON(w, resp)
}

// ---- API: reset ----

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	s.gameMu.Lock()
	s.game.Reset()
	state := s.game.State()
	s.gameMu.Unlock()

	s.hub.broadcast(state)
	writeJSON(w, map[string]any{"state": state})
}
