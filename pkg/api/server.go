package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/api/docs"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
)

// Ensure docs are initialized
var _ = docs.SwaggerInfo

const shutdownCtxTimeout = 10 * time.Second

// routePrefixes are the prefixes every control route is served under.
var routePrefixes = []string{"", "/api"}

// Server represents the API HTTP server.
type Server struct {
	config     *config.APIConfig
	controller coordinator.Controller
	handler    *Handler
	server     *http.Server
	log        *logger.Logger
}

// NewServer creates a new API server.
func NewServer(cfg *config.APIConfig, controller coordinator.Controller, log *logger.Logger) *Server {
	log = log.WithComponent(common.ComponentAPI)
	handler := NewHandler(controller, log)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.Health)

	for _, prefix := range routePrefixes {
		mux.HandleFunc("GET "+prefix+"/status", handler.Status)
		mux.HandleFunc("POST "+prefix+"/pause", handler.Pause)
		mux.HandleFunc("POST "+prefix+"/resume", handler.Resume)
		mux.HandleFunc("POST "+prefix+"/reindex", handler.Reindex)
	}

	// Swagger documentation endpoints
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
	))

	// Apply middleware
	var h http.Handler = mux
	h = APIKeyMiddleware(cfg.APIKey, log, "/health", "/swagger/")(h)
	h = RecoveryMiddleware(log)(h)
	h = LoggingMiddleware(log)(h)

	if cfg.CORS.Enabled {
		h = CORSMiddleware(cfg.CORS.AllowedOrigins)(h)
	}

	// Use configured timeouts (defaults already applied in config.ApplyDefaults)
	httpServer := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadTimeout.Duration,
		ReadTimeout:       cfg.ReadTimeout.Duration,
		WriteTimeout:      cfg.WriteTimeout.Duration,
		IdleTimeout:       cfg.IdleTimeout.Duration,
	}

	return &Server{
		config:     cfg,
		controller: controller,
		handler:    handler,
		server:     httpServer,
		log:        log,
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves the API until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.log.Info("API server is disabled")
		return nil
	}

	s.log.Infof("starting API server on %s", s.config.ListenAddress)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("API server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownCtxTimeout)
	defer cancel()

	s.log.Info("shutting down API server...")
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("API server shutdown error: %w", err)
	}

	s.log.Info("API server stopped")
	return nil
}
