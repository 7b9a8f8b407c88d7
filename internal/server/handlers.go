package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forcegraph/forcegraph/pkg/errors"
	"github.com/forcegraph/forcegraph/pkg/graph"
	"github.com/forcegraph/forcegraph/pkg/pipeline"
)

// layoutRequest is the body of POST /api/v1/layouts.
type layoutRequest struct {
	Graph   graph.Graph      `json:"graph"`
	Options pipeline.Options `json:"options"`
}

// layoutResponse wraps a stored layout with pipeline metadata.
type layoutResponse struct {
	Layout    graph.Layout       `json:"layout"`
	GraphHash string             `json:"graph_hash,omitempty"`
	CacheInfo pipeline.CacheInfo `json:"cache_info"`
}

// errorResponse is the JSON error body for all failures.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding request body"))
		return
	}

	// The API always produces a JSON layout; rendering happens on read.
	req.Options.Formats = []string{pipeline.FormatJSON}

	result, err := s.runner.Execute(r.Context(), req.Graph, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	stored, err := s.store.Put(r.Context(), result.Layout)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, layoutResponse{
		Layout:    stored,
		GraphHash: result.GraphHash,
		CacheInfo: result.CacheInfo,
	})
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	layouts, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]graph.Layout{"layouts": layouts})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	layout, ok := s.loadLayout(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, layout)
}

func (s *Server) handleGetLayoutSVG(w http.ResponseWriter, r *http.Request) {
	layout, ok := s.loadLayout(w, r)
	if !ok {
		return
	}

	opts := pipeline.Options{
		Engine:  layout.Engine,
		Formats: []string{pipeline.FormatSVG},
		Labels:  r.URL.Query().Get("labels") == "true",
	}
	artifacts, err := s.runner.Render(r.Context(), layout, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateLayoutID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadLayout resolves the {id} parameter to a stored layout, writing the
// error response itself when it fails.
func (s *Server) loadLayout(w http.ResponseWriter, r *http.Request) (graph.Layout, bool) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateLayoutID(id); err != nil {
		s.writeError(w, r, err)
		return graph.Layout{}, false
	}
	layout, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return graph.Layout{}, false
	}
	return layout, true
}

// writeError maps error codes to HTTP statuses and writes the JSON body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, errorResponse{Error: errorDetail{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidParameter,
		errors.ErrCodeMalformedGraph,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidEngine,
		errors.ErrCodeInvalidLayoutID,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeLayoutNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
