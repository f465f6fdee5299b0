// Package api - HTTP surface for the estimator
// The API is only responsible for input ingestion, engine orchestration
// and output serialization; it never performs cost logic itself.
package api

import (
	"encoding/json"
	"net/http"

	"archcost/core/engine"
	"archcost/core/types"
	"archcost/internal/errors"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
}

// NewServer creates an API server around a configured engine
func NewServer(eng *engine.Engine, version string) *Server {
	s := &Server{
		engine:  eng,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate. The body is an architecture
// document; the response is the cost report.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var doc json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	arch, err := types.ParseArchitecture(doc)
	if err != nil {
		s.writeError(w, "INVALID_ARCHITECTURE", err.Error(), http.StatusBadRequest)
		return
	}

	report, err := s.engine.Estimate(r.Context(), arch)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.IsType(err, errors.TypeInput) || errors.IsType(err, errors.TypeParsing) {
			code = http.StatusBadRequest
		}
		s.writeError(w, "ENGINE_ERROR", err.Error(), code)
		return
	}

	s.writeJSON(w, report, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

// errorBody is the uniform error envelope
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]errorBody{
		"error": {Code: code, Message: message},
	}, status)
}
