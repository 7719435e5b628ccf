// Package ioserver exposes the reconciliation layer over HTTP. All
// endpoints are read-only GETs returning JSON; the spatial/temporal
// distribution summary is served through the result cache.
package ioserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nitpicker55555/phenodb/pkg/config"
	"github.com/nitpicker55555/phenodb/pkg/phenodb"
)

// Server is the phenodb HTTP API server.
type Server struct {
	router chi.Router
	rec    phenodb.Reconciler
	cache  phenodb.ResultCache
	log    *slog.Logger
	cfg    *config.Config
}

// New creates and configures the HTTP server.
func New(
	cfg *config.Config,
	rec phenodb.Reconciler,
	cache phenodb.ResultCache,
	log *slog.Logger,
) *Server {
	s := &Server{
		rec:   rec,
		cache: cache,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(
			context.Background(), 10*time.Second,
		)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/api/overview", s.handleOverview)
	r.Get("/api/stations", s.handleStations)
	r.Get("/api/species", s.handleSpecies)
	r.Get("/api/phases", s.handlePhases)
	r.Get("/api/observations", s.handleObservations)
	r.Get("/api/trends", s.handleTrends)
	r.Get("/api/quality", s.handleQuality)
	r.Get("/api/species-by-phase", s.handleSpeciesByPhase)
	r.Get("/api/species-phases/{speciesID}", s.handlePhasesBySpecies)
	r.Get("/api/compare/species", s.handleCompareSpecies)
	r.Get("/api/compare/species-phases/{name}", s.handleComparePhases)
	r.Get("/api/distribution", s.handleDistribution)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
