package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
)

const (
	defaultMovesLimit = 20
	maxMovesLimit     = 100
)

// ReadyFunc reports whether the bot is connected to the gateway
type ReadyFunc func() bool

// Option configures a Server
type Option func(*Server)

// WithReadyFunc makes /health report 503 until ready returns true
func WithReadyFunc(ready ReadyFunc) Option {
	return func(s *Server) {
		s.ready = ready
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
	repo   interfaces.Repository
	ready  ReadyFunc
}

// NewServer creates a new HTTP server exposing health and recent move history
func NewServer(ctx context.Context, addr string, repo interfaces.Repository, opts ...Option) *Server {
	router := chi.NewRouter()

	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
		repo:   repo,
		ready:  func() bool { return true },
	}
	for _, opt := range opts {
		opt(s)
	}

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", s.handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/moves", s.handleListMoves)
	})

	return s
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, code := "healthy", http.StatusOK
	if !s.ready() {
		status, code = "starting", http.StatusServiceUnavailable
	}

	writeJSON(r.Context(), w, code, map[string]string{
		"status":  status,
		"service": "gotobot",
	})
}

type moveResponse struct {
	GuildID     string           `json:"guild_id"`
	RequestedBy string           `json:"requested_by"`
	Source      model.ChannelRef `json:"source"`
	Destination model.ChannelRef `json:"destination"`
	Moved       int              `json:"moved"`
	Failed      int              `json:"failed"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  time.Time        `json:"finished_at"`
}

// handleListMoves returns the most recent move outcomes, newest first
func (s *Server) handleListMoves(w http.ResponseWriter, r *http.Request) {
	limit := defaultMovesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(r.Context(), w, goerr.New("limit must be a positive integer", goerr.V("limit", raw)), http.StatusBadRequest)
			return
		}
		limit = min(n, maxMovesLimit)
	}

	outcomes, err := s.repo.ListMoveOutcomes(r.Context(), limit)
	if err != nil {
		ctxlog.From(r.Context()).Error("Failed to list move outcomes", "error", err)
		writeError(r.Context(), w, goerr.Wrap(err, "failed to list move outcomes"), http.StatusInternalServerError)
		return
	}

	moves := make([]moveResponse, 0, len(outcomes))
	for _, o := range outcomes {
		moves = append(moves, moveResponse{
			GuildID:     o.GuildID.String(),
			RequestedBy: o.RequestedBy.String(),
			Source:      o.Source,
			Destination: o.Destination,
			Moved:       o.Moved(),
			Failed:      o.Failed(),
			StartedAt:   o.StartedAt,
			FinishedAt:  o.FinishedAt,
		})
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"moves": moves})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}
