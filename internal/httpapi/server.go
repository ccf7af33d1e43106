// Package httpapi exposes puzzle sessions over a small JSON HTTP API.
//
// Routes:
//   - GET    /health
//   - POST   /sessions                 start a session on a level
//   - GET    /sessions/{id}            current snapshot
//   - POST   /sessions/{id}/actions    act on {row, col}
//   - POST   /sessions/{id}/reset      restart the level
//   - DELETE /sessions/{id}            drop the session
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/lumen/internal/i18n"
	"github.com/vovakirdan/lumen/internal/levels"
	"github.com/vovakirdan/lumen/internal/puzzle"
	"github.com/vovakirdan/lumen/internal/storage"
)

// SourceHTTP tags runs completed through this API.
const SourceHTTP = "http"

// RunRecorder persists completed runs.
type RunRecorder interface {
	SaveRun(storage.Run) (int64, error)
}

// Server bundles the router, the session registry and the optional run store.
type Server struct {
	r        *chi.Mux
	sessions *Registry
	runs     RunRecorder
	logger   *log.Logger
	locale   string
}

// Option configures a Server.
type Option func(*Server)

// WithRunRecorder records a run whenever a session is won.
func WithRunRecorder(rec RunRecorder) Option {
	return func(s *Server) { s.runs = rec }
}

// WithLogger sets the request and session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxSessions caps the number of live sessions.
func WithMaxSessions(n int) Option {
	return func(s *Server) { s.sessions = NewRegistry(n) }
}

// WithLocale sets the default language for status messages.
func WithLocale(lang string) Option {
	return func(s *Server) { s.locale = lang }
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts ...Option) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		sessions: NewRegistry(0),
		logger:   log.New(io.Discard),
		locale:   i18n.DefaultLanguage,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.requestLogger)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Post("/actions", s.handleAction)
			r.Post("/reset", s.handleReset)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Sessions returns the live session registry.
func (s *Server) Sessions() *Registry { return s.sessions }

// ListenAndServe serves HTTP on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	level, ok := levels.ByID(req.Level)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown_level")
		return
	}
	locale := req.Locale
	if locale == "" {
		locale = s.locale
	}

	e := &entry{player: strings.TrimSpace(req.Player), catalog: i18n.New(locale)}
	if e.player == "" {
		e.player = "anonymous"
	}
	session, err := puzzle.NewSession(level, puzzle.WithObserver(s.observe(e)))
	if err != nil {
		s.logger.Error("load level", "level", level.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "level_invalid")
		return
	}
	e.session = session

	id, err := s.sessions.add(e)
	if errors.Is(err, ErrFull) {
		writeError(w, http.StatusServiceUnavailable, "too_many_sessions")
		return
	}
	s.logger.Info("session created", "session", id, "level", level.ID, "player", e.player)

	writeJSON(w, http.StatusCreated, newSessionRes{ID: id, Snapshot: toSnapshotDTO(session.Snapshot())})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	e.mu.Lock()
	sn := e.session.Snapshot()
	e.mu.Unlock()

	writeJSON(w, http.StatusOK, toSnapshotDTO(sn))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.remove(id); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	s.logger.Info("session deleted", "session", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req actionReq
	if err := decodeBody(r, &req); err != nil || req.Row == nil || req.Col == nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	e.mu.Lock()
	sn, status := e.session.HandleAction(*req.Row, *req.Col)
	s.recordWin(e, sn)
	message := e.catalog.Status(status)
	e.mu.Unlock()

	writeJSON(w, http.StatusOK, actionRes{
		Status:   status.String(),
		Message:  message,
		Snapshot: toSnapshotDTO(sn),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(w, r)
	if !ok {
		return
	}
	e.mu.Lock()
	sn := e.session.Reset()
	e.recorded = false
	e.mu.Unlock()

	writeJSON(w, http.StatusOK, toSnapshotDTO(sn))
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*entry, bool) {
	e, err := s.sessions.get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return e, true
}

// recordWin stores the run once per win. Caller holds e.mu.
func (s *Server) recordWin(e *entry, sn puzzle.Snapshot) {
	if !sn.Won || e.recorded {
		return
	}
	e.recorded = true
	if s.runs == nil {
		return
	}
	_, err := s.runs.SaveRun(storage.Run{
		LevelID: sn.LevelID,
		Player:  e.player,
		Moves:   sn.Moves,
		Source:  SourceHTTP,
	})
	if err != nil {
		s.logger.Warn("save run", "session", e.id, "error", err)
	}
}

// observe logs state changes of one session.
func (s *Server) observe(e *entry) puzzle.Observer {
	return func(ev puzzle.Event) {
		s.logger.Debug("puzzle event",
			"session", e.id,
			"kind", ev.Kind,
			"target", ev.Target,
			"moves", ev.Moves,
			"lit", ev.Lit,
		)
	}
}

// decodeBody decodes JSON into dst; an empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorRes{Error: code})
}
