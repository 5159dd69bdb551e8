// Package api exposes generated keyboard layouts over HTTP.
//
// The server is a development convenience for engine integrators: it
// serves the same 681-byte KYBD artifacts the generate command writes
// to disk, plus a JSON adjacency view, without requiring a local
// checkout of the generated files. Matrices are computed on demand
// from the registry; generation is deterministic and cheap, so no
// caching layer sits in between.
package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/errors"
	"github.com/typomap/typomap/pkg/kybd"
	"github.com/typomap/typomap/pkg/layout"
)

// NewRouter builds the HTTP handler for a layout registry.
//
// Routes:
//
//	GET /layouts                     JSON list of layout names
//	GET /layouts/{name}.bin          KYBD file for the layout
//	GET /layouts/{name}/neighbors    JSON adjacency (class-1) per letter
func NewRouter(reg *layout.Registry) http.Handler {
	s := &server{reg: reg}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/layouts", s.listLayouts)
	r.Get("/layouts/{name}.bin", s.layoutFile)
	r.Get("/layouts/{name}/neighbors", s.layoutNeighbors)
	return r
}

type server struct {
	reg *layout.Registry
}

func (s *server) listLayouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"layouts": s.reg.Names()})
}

func (s *server) layoutFile(w http.ResponseWriter, r *http.Request) {
	m, ok := s.matrix(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := kybd.Encode(&buf, m); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename="+kybd.FileName(chi.URLParam(r, "name")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *server) layoutNeighbors(w http.ResponseWriter, r *http.Request) {
	m, ok := s.matrix(w, r)
	if !ok {
		return
	}

	neighbors := make(map[string]string, distance.Alphabet)
	for letter := 'a'; letter <= 'z'; letter++ {
		neighbors[string(letter)] = string(m.Neighbors(letter))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"layout":    chi.URLParam(r, "name"),
		"neighbors": neighbors,
	})
}

// matrix resolves the layout named in the URL and classifies it.
// On a registry miss it writes a 404 and reports false.
func (s *server) matrix(w http.ResponseWriter, r *http.Request) (distance.Matrix, bool) {
	name := chi.URLParam(r, "name")
	def, err := s.reg.Get(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errors.ErrCodeUnknownLayout) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return distance.Matrix{}, false
	}
	return distance.Classify(layout.Positions(def)), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
