// Package server provides the HTTP API for the risk assessment engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"risk-assessor/internal/assessment"
	"risk-assessor/internal/config"
	"risk-assessor/internal/store"
)

// Server wraps the HTTP server, router, and engine dependencies.
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	engine *assessment.Engine
	store  store.DataStore
	cfg    config.ServerConfig
}

// New creates a new HTTP server around the assessment engine. The
// store may be nil, in which case assessments are not persisted.
func New(log zerolog.Logger, engine *assessment.Engine, dataStore store.DataStore, cfg config.ServerConfig) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    log,
		engine: engine,
		store:  dataStore,
		cfg:    cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/analyze", s.handleAnalyze)

	s.router.Route("/assessments", func(r chi.Router) {
		r.Get("/", s.handleListAssessments)
		r.Get("/{id}", s.handleGetAssessment)
	})
}

// requestLogger logs each request with method, path, status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

// Start begins listening for HTTP requests. Blocks until the server
// stops.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("HTTP server starting")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("HTTP server shutting down")
	return s.server.Shutdown(ctx)
}

// Router exposes the underlying router, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
