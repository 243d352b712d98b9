package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/goselector/internal/api/middleware"
	"github.com/jonesrussell/goselector/internal/config"
	"github.com/jonesrussell/goselector/internal/logger"
	"github.com/jonesrussell/goselector/internal/metrics"
)

// Server is the HTTP API server.
type Server struct {
	config  *config.Config
	logger  logger.Interface
	metrics *metrics.Metrics
	http    *http.Server
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config, log logger.Interface) *Server {
	s := &Server{
		config:  cfg,
		logger:  log.WithComponent("api"),
		metrics: metrics.New(),
	}
	s.http = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      s.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(s.logger))

	router.GET("/health", s.handleHealth)
	router.GET("/metrics", s.handleMetrics)

	v1 := router.Group("/api/v1")
	v1.POST("/selector", s.handleSelector)

	return router
}

// Start runs the server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting API server", "address", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("Stopping API server")
		return s.http.Shutdown(context.Background())
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}
