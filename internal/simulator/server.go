package simulator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcpflow/mcpflow/internal/config"
	"github.com/mcpflow/mcpflow/internal/mcp"
)

// Server is the simulated gateway's HTTP surface: /health, /tools, /rpc
// and /metrics, with bearer auth and rate limits on the protected routes.
type Server struct {
	cfg            config.SimulatorConfig
	log            *slog.Logger
	router         *gin.Engine
	registry       *Registry
	memory         *Memory
	auth           *Authenticator
	limiter        *Limiter
	metrics        *metricsProvider
	metricsHandler http.Handler
}

// New assembles a server with the default tool set.
func New(cfg config.SimulatorConfig, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}

	auth, err := NewAuthenticator(cfg.Auth)
	if err != nil {
		return nil, err
	}

	memory, err := NewMemory(cfg.Memory.MaxEntries, cfg.Memory.TTL)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	NewTools(memory).RegisterAll(registry)

	promRegistry := prometheus.NewRegistry()

	s := &Server{
		cfg:            cfg,
		log:            log,
		registry:       registry,
		memory:         memory,
		auth:           auth,
		limiter:        NewLimiter(cfg.Rate.PerSecond, cfg.Rate.Burst),
		metrics:        newMetricsProvider(promRegistry),
		metricsHandler: promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.observe())
	s.router = router
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))

	protected := s.router.Group("/")
	protected.Use(s.authorize())
	protected.GET("/tools", s.handleTools)
	protected.POST("/rpc", s.handleRPC)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("gateway simulator listening", "addr", s.cfg.Listen, "tools", len(s.registry.List()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.memory.Close()
	return err
}

func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		s.metrics.ObserveRequest(route, status, elapsed)
		if route != "/health" && route != "/metrics" {
			s.log.Info("request",
				"method", c.Request.Method,
				"route", route,
				"status", status,
				"elapsed", elapsed,
			)
		}
	}
}

func (s *Server) authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := s.auth.Verify(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if err := s.limiter.Allow(caller); err != nil {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "tools": len(s.registry.List())})
}

// handleTools returns the catalog as a bare array, the shape clients decode.
func (s *Server) handleTools(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.List())
}

// handleRPC dispatches one JSON-RPC call. Tool output travels back inside
// a text content block; failures ride the error member with HTTP 200, so
// protocol errors and tool errors look the same to callers.
func (s *Server) handleRPC(c *gin.Context) {
	var req mcp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, errorResponse(nil, mcp.CodeInvalidParams, "invalid request: "+err.Error()))
		return
	}
	if req.Method == "" {
		c.JSON(http.StatusOK, errorResponse(req.ID, mcp.CodeMethodNotFound, "method required"))
		return
	}

	result, err := s.registry.Invoke(req.Method, req.Params)
	if err != nil {
		s.metrics.IncrementToolCall(req.Method, "error")
		s.log.Warn("tool call failed", "tool", req.Method, "error", err)

		code := mcp.CodeServerError
		switch {
		case errors.Is(err, ErrUnknownTool):
			code = mcp.CodeMethodNotFound
		case errors.Is(err, ErrInvalidParams):
			code = mcp.CodeInvalidParams
		}
		c.JSON(http.StatusOK, errorResponse(req.ID, code, err.Error()))
		return
	}

	block, err := mcp.TextBlock(result)
	if err != nil {
		c.JSON(http.StatusOK, errorResponse(req.ID, mcp.CodeServerError, "encode result: "+err.Error()))
		return
	}

	s.metrics.IncrementToolCall(req.Method, "ok")
	c.JSON(http.StatusOK, mcp.Response{JSONRPC: "2.0", ID: req.ID, Content: []mcp.ContentBlock{block}})
}

func errorResponse(id any, code int, message string) mcp.Response {
	return mcp.Response{JSONRPC: "2.0", ID: id, Error: &mcp.Error{Code: code, Message: message}}
}
