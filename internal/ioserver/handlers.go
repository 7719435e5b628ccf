package ioserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gnames/gn"
	"github.com/go-chi/chi/v5"
	"github.com/nitpicker55555/phenodb/internal/ioquery"
	"github.com/nitpicker55555/phenodb/pkg/errcode"
	"github.com/nitpicker55555/phenodb/pkg/query"
)

// defaultLimit caps observation listings when no limit is given.
const defaultLimit = 1000

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	res, err := s.rec.Overview(r.Context(), src)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	res, err := s.rec.Stations(r.Context(), src)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	res, err := s.rec.Species(r.Context(), src)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handlePhases(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	res, err := s.rec.Phases(r.Context(), src)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handleObservations(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	f, ok := s.filter(w, r)
	if !ok {
		return
	}
	if f.Limit == 0 {
		f.Limit = defaultLimit
	}
	res, err := s.rec.Observations(r.Context(), src, f)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	f, ok := s.filter(w, r)
	if !ok {
		return
	}
	res, err := s.rec.Trends(r.Context(), src, f)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handleQuality(w http.ResponseWriter, r *http.Request) {
	res, err := s.rec.Quality(r.Context())
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handleSpeciesByPhase(
	w http.ResponseWriter, r *http.Request,
) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	phaseID, err := strconv.Atoi(r.URL.Query().Get("phase_id"))
	if err != nil {
		badRequest(w, "phase_id must be an integer")
		return
	}
	res, err := s.rec.SpeciesByPhase(r.Context(), src, phaseID)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handlePhasesBySpecies(
	w http.ResponseWriter, r *http.Request,
) {
	src, ok := s.source(w, r)
	if !ok {
		return
	}
	speciesID, err := strconv.Atoi(chi.URLParam(r, "speciesID"))
	if err != nil {
		badRequest(w, "species id must be an integer")
		return
	}
	res, err := s.rec.PhasesBySpecies(r.Context(), src, speciesID)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handleCompareSpecies(
	w http.ResponseWriter, r *http.Request,
) {
	res, err := s.rec.CompareSpecies(r.Context())
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

func (s *Server) handleComparePhases(
	w http.ResponseWriter, r *http.Request,
) {
	name := chi.URLParam(r, "name")
	if name == "" {
		badRequest(w, "species name is required")
		return
	}
	res, err := s.rec.ComparePhases(r.Context(), name)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	respond(w, res)
}

// handleDistribution serves the spatial/temporal summary through the
// result cache. The payload is cached as serialized JSON; a miss or an
// expired entry triggers a recompute and an upsert.
func (s *Server) handleDistribution(
	w http.ResponseWriter, r *http.Request,
) {
	const key = "distribution"

	if payload, ok, err := s.cache.Get(key); err == nil && ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
		return
	} else if err != nil {
		s.log.Warn("cache read failed", "key", key, "error", err)
	}

	res, err := s.rec.Distribution(r.Context())
	if err != nil {
		s.jsonError(w, err)
		return
	}
	payload, err := json.Marshal(res)
	if err != nil {
		s.jsonError(w, err)
		return
	}
	if err = s.cache.Set(key, payload); err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// source parses the ?source= selector, writing a 400 response on an
// unknown value.
func (s *Server) source(
	w http.ResponseWriter, r *http.Request,
) (query.Source, bool) {
	raw := r.URL.Query().Get("source")
	src, err := query.ParseSource(raw)
	if err != nil {
		s.jsonError(w, ioquery.UnknownSourceError(raw))
		return "", false
	}
	return src, true
}

// filter parses the optional numeric and string predicates.
func (s *Server) filter(
	w http.ResponseWriter, r *http.Request,
) (query.Filter, bool) {
	var f query.Filter
	q := r.URL.Query()
	f.Station = q.Get("station")

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"species_id", &f.SpeciesID},
		{"phase_id", &f.PhaseID},
		{"year_start", &f.YearFrom},
		{"year_end", &f.YearTo},
		{"limit", &f.Limit},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, p.name+" must be an integer")
			return f, false
		}
		*p.dst = v
	}
	return f, true
}

func respond(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func badRequest(w http.ResponseWriter, msg string) {
	http.Error(
		w,
		`{"error":`+strconv.Quote(msg)+`}`,
		http.StatusBadRequest,
	)
}

// jsonError maps domain errors to HTTP statuses: a bad source selector
// is the caller's fault, a failing database is service unavailability
// naming the source.
func (s *Server) jsonError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		switch gnErr.Code {
		case errcode.QueryUnknownSourceError:
			status = http.StatusBadRequest
		case errcode.QuerySourceError:
			status = http.StatusServiceUnavailable
		}
	}
	s.log.Error("request failed", "error", err)
	http.Error(
		w,
		`{"error":`+strconv.Quote(err.Error())+`}`,
		status,
	)
}
