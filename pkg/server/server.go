// Package server exposes the render pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/honeybbq/autosview/backend/autos"
	"github.com/honeybbq/autosview/pkg/autosview"
)

// Options configures a Server.
type Options struct {
	Addr         string
	MaxBodyBytes int64
	Defaults     autosview.RenderOptions // applied when the request does not override them
}

// Server wraps the chi router and the underlying http.Server.
type Server struct {
	opts       Options
	logger     *slog.Logger
	backend    *autos.Backend
	httpRouter *chi.Mux
	httpServer *http.Server
}

// NewServer builds the router and registers every route.
func NewServer(logger *slog.Logger, backend *autos.Backend, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if backend == nil {
		backend = autos.New(nil)
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 10 << 20
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	s := &Server{
		opts:       opts,
		logger:     logger,
		backend:    backend,
		httpRouter: r,
	}
	s.RegisterHTTP(r)
	return s
}

// RegisterHTTP registers the endpoints on r.
func (s *Server) RegisterHTTP(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Get("/kinds", s.handleKinds)
	r.Post("/render", s.handleRender)
	r.Post("/sections", s.handleSections)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.httpRouter
}

// Start serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server started", "addr", s.opts.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	}
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping server")
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}
