// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the "wiring" layer — it connects handlers, middleware, and routes.
// Think of it as the control centre that decides:
// - Which URL patterns map to which handler functions
// - What middleware runs on which routes
// - How the server starts and stops gracefully
//
// DEPENDENCY INJECTION FLOW:
// main.go creates:
//   DB path (config) → passed to Server
//   Server.New() creates: sqlite.DB → PropertyService → PropertyHandler
//
// This is the "composition root" pattern — all dependencies are wired
// in one place (New/setupRoutes), rather than scattered across the codebase.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/property-board/internal/handler"
	"github.com/sakif/property-board/internal/middleware"
	sqliteRepo "github.com/sakif/property-board/internal/repository/sqlite"
	"github.com/sakif/property-board/internal/service"
)

// Config holds server configuration.
// Using a struct for config (instead of individual parameters) makes it easy
// to add options without changing function signatures.
type Config struct {
	Port   int
	DBPath string // Connection string for the property store
}

// Server represents the HTTP server and all its dependencies.
//
// The Server owns the database connection. When the server shuts down we
// must close it to flush pending writes and release the file lock — handled
// in Start() during graceful shutdown.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a new Server with the given config.
//
// This is where the entire dependency chain is assembled:
//  1. Open the store (sqlite.New)
//  2. Create the service layer with the repository interface
//  3. Create the handler with the service
//  4. Wire handlers to routes
//
// Each layer only receives what it needs: the service gets the repository
// interface (not the concrete sqlite.DB), the handler gets the service.
//
// IMPORT ALIAS: repository/sqlite is imported as `sqliteRepo` to avoid
// confusion with the sqlite driver package.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// GET    /                      → liveness text
// GET    /api/properties        → List (JSON array)
// POST   /api/properties        → Create
// GET    /api/properties/{id}   → GetOne
// PUT    /api/properties/{id}   → Update (full replace)
// DELETE /api/properties/{id}   → Delete
//
// MIDDLEWARE ORDER MATTERS — ours runs in this order:
// 1. RequestID — assigns unique ID to each request (for tracing)
// 2. RealIP — extracts real client IP from proxy headers
// 3. Recoverer — catches panics and returns 500 instead of crashing
// 4. CORS — lets browser dashboards on other origins call the API
// 5. Logger — logs each request with timing info
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.CORS)
	s.router.Use(middleware.Logger(s.logger))

	// Liveness route — handy for load balancers and a quick curl check.
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "property-board API is running")
	})

	// DEPENDENCY CHAIN:
	//   s.db (sqlite.DB) → implements repository.PropertyRepository
	//   PropertyService receives the repository interface
	//   PropertyHandler receives the service
	// The handler never touches the database; the service never touches HTTP.
	propertyService := service.NewPropertyService(s.db, s.logger)
	propertyHandler := handler.NewPropertyHandler(propertyService, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/properties", propertyHandler.HandleList)
		r.Post("/properties", propertyHandler.HandleCreate)
		r.Get("/properties/{id}", propertyHandler.HandleGetByID)
		r.Put("/properties/{id}", propertyHandler.HandleUpdate)
		r.Delete("/properties/{id}", propertyHandler.HandleDelete)
	})
}

// Handler exposes the router, mainly so tests can drive the full stack
// through httptest.NewServer without binding a real port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the server's store connection. Start() does this itself;
// Close exists for callers that never reach Start (tests, failed boots).
func (s *Server) Close() error {
	return s.db.Close()
}

// Start starts the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new HTTP connections
// 2. Wait for in-flight requests to finish (30s timeout)
// 3. Close the database connection (flushes WAL, releases file lock)
//
// The `defer s.db.Close()` ensures step 3 happens even if something panics.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		// Give in-flight requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
