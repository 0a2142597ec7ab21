// Package server runs the flight function as an HTTP web action.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teilomillet/flightinfo/config"
	"github.com/teilomillet/flightinfo/errors"
	"github.com/teilomillet/flightinfo/metrics"
	"github.com/teilomillet/flightinfo/server/handlers"
	"github.com/teilomillet/flightinfo/server/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FlightPath is the route of the flight web action.
const FlightPath = "/v1/flights"

// NewRouter mounts the flight web action, health and metrics endpoints.
func NewRouter(invoker handlers.Invoker, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTimer)
	r.Use(middleware.Logging(logger))
	r.Use(errors.Recovery(logger))
	r.Use(middleware.PrometheusMetrics(m))
	r.Use(middleware.CORS)

	flights := handlers.NewFlightHandler(invoker, logger)
	r.Method(http.MethodPost, FlightPath, flights)
	r.Method(http.MethodGet, FlightPath, flights)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		errors.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	cfg        config.ServerConfig
	logger     *zap.Logger
}

// NewServer creates a new server instance.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           fmt.Sprintf(":%d", cfg.Port),
			Handler:        handler,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			MaxHeaderBytes: cfg.MaxHeaderBytes,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Server started", zap.String("address", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info("Shutting down server")
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
