// SPDX-License-Identifier: MIT
// Package: roadnet/server

package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/roadnet/ctxlog"
	"github.com/katalvlaran/roadnet/lattice"
	"github.com/katalvlaran/roadnet/mapgen"
	"github.com/katalvlaran/roadnet/pathsearch"
)

// Handler serves map generation and path search over JSON.
type Handler struct {
	gen        *mapgen.Generator
	world      pathsearch.World
	base       mapgen.MapConfig
	searchOpts []pathsearch.Option
	logger     *slog.Logger
}

// NewHandler returns a Handler. Generation requests start from base;
// searches run against world with searchOpts applied first.
func NewHandler(gen *mapgen.Generator, world pathsearch.World, base mapgen.MapConfig, searchOpts []pathsearch.Option, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = ctxlog.Discard()
	}
	return &Handler{gen: gen, world: world, base: base, searchOpts: searchOpts, logger: logger}
}

// RegisterRoutes mounts the API on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.Use(h.logRequests)
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.Health).Methods("GET")
	api.HandleFunc("/maps", h.Generate).Methods("POST")
	api.HandleFunc("/maps/current", h.Current).Methods("GET")
	api.HandleFunc("/maps/current", h.Clear).Methods("DELETE")
	api.HandleFunc("/maps/regenerate", h.Regenerate).Methods("POST")
	api.HandleFunc("/paths", h.FindPath).Methods("POST")
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Generate builds a new map from the base config plus request overrides.
// An empty body uses the base config unchanged.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	m, err := h.gen.Generate(h.ctx(r), req.apply(h.base))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newMapResponse(m))
}

// Regenerate repeats the last generation.
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	m, err := h.gen.Regenerate(h.ctx(r))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newMapResponse(m))
}

// Current returns the last generated map.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	m := h.gen.Current()
	if m == nil {
		h.fail(w, mapgen.ErrNoMap)
		return
	}
	writeJSON(w, http.StatusOK, newMapResponse(m))
}

// Clear drops the current map.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.gen.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// FindPath runs a path search. A search that finds nothing is still a 200;
// the status field says why it stopped.
func (h *Handler) FindPath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	opts := append([]pathsearch.Option(nil), h.searchOpts...)
	if req.Step != nil {
		opts = append(opts, pathsearch.WithStep(*req.Step))
	}
	if req.GoalRadius != nil {
		opts = append(opts, pathsearch.WithGoalRadius(*req.GoalRadius))
	}
	opts = append(opts, pathsearch.WithContext(r.Context()), pathsearch.WithLogger(h.logger))

	res, err := pathsearch.Search(h.world, req.Start.vec3(), req.Goal.vec3(), opts...)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newPathResponse(res))
}

func (h *Handler) ctx(r *http.Request) context.Context {
	return ctxlog.WithLogger(r.Context(), h.logger)
}

// fail maps domain errors to HTTP statuses.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mapgen.ErrInvalidConfig),
		errors.Is(err, lattice.ErrInvalidCellLength),
		errors.Is(err, lattice.ErrExtentsTooSmall),
		errors.Is(err, lattice.ErrLatticeTooLarge),
		errors.Is(err, pathsearch.ErrBadStep),
		errors.Is(err, pathsearch.ErrBadLimit),
		errors.Is(err, pathsearch.ErrBadPoint):
		writeError(w, http.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, mapgen.ErrNoMap):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		h.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]APIError{"error": {Code: code, Message: msg}})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
