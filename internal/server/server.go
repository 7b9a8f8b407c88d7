// Package server implements the HTTP API for layout computation.
//
// Routes are versioned under /api/v1:
//
//	POST   /api/v1/layouts          stabilize a graph and store the layout
//	GET    /api/v1/layouts          list stored layouts
//	GET    /api/v1/layouts/{id}     fetch a stored layout
//	GET    /api/v1/layouts/{id}/svg render a stored layout as SVG
//	DELETE /api/v1/layouts/{id}     delete a stored layout
//	GET    /healthz                 liveness probe
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/forcegraph/forcegraph/pkg/observability"
	"github.com/forcegraph/forcegraph/pkg/pipeline"
	"github.com/forcegraph/forcegraph/pkg/store"
)

// Server serves the layout API.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by the given store and pipeline runner.
// A nil logger falls back to the default logger.
func New(st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		store:  st,
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1/layouts", func(r chi.Router) {
		r.Post("/", s.handleCreateLayout)
		r.Get("/", s.handleListLayouts)
		r.Get("/{id}", s.handleGetLayout)
		r.Get("/{id}/svg", s.handleGetLayoutSVG)
		r.Delete("/{id}", s.handleDeleteLayout)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// logRequests logs each request with its status and duration, and feeds
// the observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration,
			"request_id", middleware.GetReqID(r.Context()))
	})
}
