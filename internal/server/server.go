// Package server provides the HTTP REST API for the match engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gsabatini/match-engine/internal/engine"
	"github.com/gsabatini/match-engine/internal/hierarchy"
	"github.com/gsabatini/match-engine/internal/store"
	"github.com/gsabatini/match-engine/internal/weights"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	engine     *engine.Engine
	registry   *weights.Registry
	log        *zap.Logger
}

// Config holds server configuration. DatabaseURL may be empty, in which
// case the record and match endpoints respond 503 and only the inline
// evaluation endpoints are available.
type Config struct {
	Port        int
	DatabaseURL string
	Registry    *weights.Registry
	Engine      engine.Config
	Logger      *zap.Logger
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = weights.NewRegistry()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Engine.Adjuster == (hierarchy.AdjusterConfig{}) {
		cfg.Engine.Adjuster = hierarchy.DefaultAdjusterConfig()
	}

	eng, err := engine.NewWithConfig(registry, cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	s := &Server{
		engine:   eng,
		registry: registry,
		log:      log,
	}

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := st.EnsureSchema(context.Background()); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		s.store = st
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Evaluation endpoints (work without a database)
	mux.HandleFunc("POST /evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /evaluate/batch", s.handleEvaluateBatch)
	mux.HandleFunc("GET /weights", s.handleGetWeights)

	// CRUD endpoints for candidates
	mux.HandleFunc("POST /candidates", s.handleCreateCandidate)
	mux.HandleFunc("GET /candidates", s.handleListCandidates)
	mux.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("PUT /candidates/{id}", s.handleUpdateCandidate)
	mux.HandleFunc("DELETE /candidates/{id}", s.handleDeleteCandidate)

	// CRUD endpoints for positions
	mux.HandleFunc("POST /positions", s.handleCreatePosition)
	mux.HandleFunc("GET /positions", s.handleListPositions)
	mux.HandleFunc("GET /positions/{id}", s.handleGetPosition)
	mux.HandleFunc("PUT /positions/{id}", s.handleUpdatePosition)
	mux.HandleFunc("DELETE /positions/{id}", s.handleDeletePosition)

	// Match endpoints over stored records (computed on demand, never persisted)
	mux.HandleFunc("GET /matches/{candidate_id}", s.handleRankCandidate)
	mux.HandleFunc("POST /matches/{candidate_id}/{position_id}", s.handleEvaluatePair)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestID(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// requireStore guards endpoints that need the database. Returns false and
// writes a 503 when the server was started without one.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return false
	}
	return true
}
