package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/planet-catalog/internal/observability"
	"github.com/couchcryptid/planet-catalog/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StateSource exposes the catalog request state and readiness.
type StateSource interface {
	sharedobs.ReadinessChecker
	State() pipeline.State
}

// Server renders the planet catalog and exposes health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	states     StateSource
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with /, /api/planets, /healthz, /readyz,
// and /metrics routes.
func NewServer(addr string, states StateSource, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		states:  states,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/planets", s.handlePlanets)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(states))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	page, err := renderPage(s.states.State())
	if err != nil {
		s.logger.Error("render catalog page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.metrics.PageRenders.WithLabelValues("html").Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (s *Server) handlePlanets(w http.ResponseWriter, _ *http.Request) {
	state := s.states.State()
	s.metrics.PageRenders.WithLabelValues("json").Inc()

	status := http.StatusOK
	switch state.(type) {
	case pipeline.Loading:
		status = http.StatusAccepted
	case pipeline.Failed:
		status = http.StatusBadGateway
	}
	sharedobs.WriteJSON(w, status, newCatalogView(state))
}
