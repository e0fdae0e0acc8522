// Package http provides the orrery HTTP API: project CRUD, status checks,
// and the scene endpoints that drive the rendering boundary.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/orrerylabs/orrery/internal/scene"
	"github.com/orrerylabs/orrery/internal/store"
)

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
	// CORSOrigins lists allowed origins for browser frontends.
	CORSOrigins []string
}

// Server exposes the gallery store and the scene session over HTTP.
type Server struct {
	echo     *echo.Echo
	store    *store.Store
	composer *scene.Composer
	logger   *zap.Logger
	metrics  *Metrics
	config   *Config
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(st *store.Store, composer *scene.Composer, logger *zap.Logger, cfg *Config) (*Server, error) {
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if composer == nil {
		return nil, fmt.Errorf("composer cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host:        "localhost",
			Port:        8123,
			CORSOrigins: []string{"*"},
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metrics := NewMetrics(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(metrics.Middleware())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	})

	s := &Server{
		echo:     e,
		store:    st,
		composer: composer,
		logger:   logger,
		metrics:  metrics,
		config:   cfg,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")

	v1.GET("/projects", s.handleListProjects)
	v1.POST("/projects", s.handleCreateProject)
	v1.POST("/projects/sample", s.handleSampleProjects)
	v1.GET("/projects/:id", s.handleGetProject)
	v1.DELETE("/projects/:id", s.handleDeleteProject)

	v1.GET("/status", s.handleListStatus)
	v1.POST("/status", s.handleCreateStatus)

	v1.GET("/scene", s.handleScene)
	v1.POST("/scene/pick", s.handlePick)
	v1.POST("/scene/close", s.handleCloseSelection)
	v1.GET("/scene/selected", s.handleSelected)
	v1.POST("/scene/reload", s.handleReload)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// LoadFromStore drives the scene lifecycle through one fetch from the
// store: Loading, then Ready on success or Error on failure. Any store
// failure surfaces as the canonical human-visible message.
func (s *Server) LoadFromStore(ctx context.Context) error {
	s.composer.Reload()
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		s.logger.Error("loading projects from store", zap.Error(err))
		s.composer.Fail(scene.LoadFailedMessage)
		return err
	}
	s.composer.SetProjects(projects)
	return nil
}

// Start begins serving. Blocks until the server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("http server listening", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
