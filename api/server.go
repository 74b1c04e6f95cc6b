// Package api - Thin HTTP layer over the quote engine
// The API is ONLY responsible for: request decoding, engine calls, response serialization.
// The API NEVER performs pricing logic.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotepilot/core/engine"
	"quotepilot/internal/errors"
)

// Options configures the server
type Options struct {
	Version string

	// UIPath is a directory of static UI files served at /ui; empty disables it
	UIPath string

	// Mode is the gin mode (debug, release, test); empty leaves it unchanged
	Mode string

	Logger *zap.Logger
}

// Server is the API server
type Server struct {
	engine  *engine.Engine
	router  *gin.Engine
	version string
	logger  *zap.Logger
}

// NewServer creates a new API server
func NewServer(e *engine.Engine, opts Options) *Server {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		engine:  e,
		router:  gin.New(),
		version: opts.Version,
		logger:  logger,
	}

	s.router.Use(RequestID(), AccessLog(logger), Recovery(logger))
	s.registerRoutes(opts.UIPath)
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes(uiPath string) {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/engines", s.handleListEngines)
	s.router.GET("/engines/:model", s.handleDescribeEngine)
	s.router.POST("/quote", s.handleQuote)

	if uiPath != "" {
		s.router.Static("/ui", uiPath)
		s.router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "/ui/")
		})
	}

	s.router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, string(errors.TypeNotFound), "route not found: "+c.Request.URL.Path)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server as an http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}
