package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ersonp/assetids/internal/application/handlers"
	"github.com/ersonp/assetids/internal/domain/services"
)

// api serves the stored tables of one game as JSON.
type api struct {
	lookup *handlers.LookupHandler
	logger *zap.Logger
}

type jsonError struct {
	Error string `json:"error"`
}

// newRouter registers the lookup routes.
func newRouter(lookup *handlers.LookupHandler, logger *zap.Logger) *mux.Router {
	a := &api{lookup: lookup, logger: logger}

	r := mux.NewRouter()
	r.HandleFunc("/worlds", a.handleWorlds).Methods(http.MethodGet)
	r.HandleFunc("/worlds/{world}", a.handleWorld).Methods(http.MethodGet)
	r.HandleFunc("/worlds/{world}/areas/{area}", a.handleArea).Methods(http.MethodGet)
	r.HandleFunc("/worlds/{world}/areas/{area}/docks", a.handleDocks).Methods(http.MethodGet)
	return r
}

func (a *api) handleWorlds(w http.ResponseWriter, r *http.Request) {
	global, err := a.lookup.Worlds(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, global)
}

func (a *api) handleWorld(w http.ResponseWriter, r *http.Request) {
	world, err := a.lookup.World(r.Context(), mux.Vars(r)["world"])
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, world)
}

func (a *api) handleArea(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	info, err := a.lookup.Area(r.Context(), vars["world"], vars["area"])
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, info)
}

func (a *api) handleDocks(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	info, err := a.lookup.Area(r.Context(), vars["world"], vars["area"])
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, info.Docks)
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		a.logger.Error("marshaling response", zap.Error(err))
		status = http.StatusInternalServerError
		data, _ = json.Marshal(jsonError{Error: err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError maps lookup errors onto HTTP status codes.
func (a *api) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrWorldNotFound), errors.Is(err, handlers.ErrAreaNotFound):
		status = http.StatusNotFound
	case errors.Is(err, handlers.ErrNoRun):
		status = http.StatusServiceUnavailable
	default:
		a.logger.Error("lookup failed", zap.Error(err))
	}
	a.writeJSON(w, status, jsonError{Error: err.Error()})
}
