package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/internal/logging"
	"github.com/aretw0/advent/pkg/adapters/file"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/maths"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIVersion is the version of the JSON API served here.
const APIVersion = "0.1.0"

// maxBodyBytes bounds a puzzle input upload.
const maxBodyBytes = 4 << 20

// Engine defines what the HTTP layer needs from the solver.
type Engine interface {
	Solve(ctx context.Context, day int, lines []string) (domain.Answer, error)
	Puzzles() []registry.Puzzle
}

// Server serves the JSON API.
type Server struct {
	Engine   Engine
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithGatherer exposes the given registry on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = l
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine, Logger: logging.NewNop()}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/days", server.ListDays)
	r.Post("/solve/{day}", server.Solve)

	if server.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "advent-http",
		"version":     advent.Version,
		"api_version": APIVersion,
	})
}

// ListDays handles GET /days.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Puzzles())
}

// Solve handles POST /solve/{day} with the raw puzzle input as body.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid day %q", chi.URLParam(r, "day")))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, errors.New("input too large"))
		return
	}

	answer, err := s.Engine.Solve(r.Context(), day, file.SplitLines(string(body)))
	if err != nil {
		status := StatusFor(err)
		if status == http.StatusInternalServerError {
			s.Logger.Error("solve failed", "day", day, "error", err)
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, answer)
}

// StatusFor maps solver errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDayNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrParse), errors.Is(err, domain.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrLookup),
		errors.Is(err, domain.ErrUnreachableTarget),
		errors.Is(err, domain.ErrCycleNotFound),
		errors.Is(err, domain.ErrNoTargetHit),
		errors.Is(err, domain.ErrNoWalkers),
		errors.Is(err, maths.ErrOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("encode error: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
