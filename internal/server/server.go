// Package server exposes the detector over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/logger"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/pipeline"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/telemetry"
)

const (
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Info identifies the service on GET /.
type Info struct {
	Name    string
	Version string
}

// Server owns the gin engine and the http.Server around it.
type Server struct {
	router *gin.Engine
	server *http.Server
	logger logger.Logger
}

// New builds the router. metrics may be nil, in which case /metrics is not
// served.
func New(cfg model.ServerConfig, detector *pipeline.Detector, metrics *telemetry.Provider, log logger.Logger, info Info) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RecoveryMiddleware(log))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.CORSOrigins))
	if metrics != nil {
		router.Use(MetricsMiddleware(metrics))
	}

	SetupRoutes(router, NewHandler(detector, info))
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	return &Server{
		router: router,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		logger: log,
	}
}

// SetupRoutes registers the analysis routes.
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.GET("/", h.Index)
	router.GET("/health", h.Health)

	router.POST("/analyze", h.AnalyzeText)
	router.POST("/analyze-url", h.AnalyzeURL)
	router.POST("/analyze-profile", h.AnalyzeProfile)
	router.POST("/analyze-complete", h.AnalyzeComplete)

	api := router.Group("/api")
	api.POST("/classify-all", h.ClassifyAll)
}

// Router returns the gin engine, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server",
			logger.String("address", s.server.Addr),
			logger.Duration("read_timeout", s.server.ReadTimeout),
			logger.Duration("write_timeout", s.server.WriteTimeout),
		)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}
