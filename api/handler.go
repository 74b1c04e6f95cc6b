package api

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quotepilot/core/engine"
	"quotepilot/core/output"
	"quotepilot/core/registry"
)

// handleHealth handles GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: s.version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

// handleListEngines handles GET /engines
func (s *Server) handleListEngines(c *gin.Context) {
	models := s.engine.ListModels()
	c.JSON(http.StatusOK, EnginesResponse{
		Models: models,
		Count:  len(models),
	})
}

// handleDescribeEngine handles GET /engines/:model
func (s *Server) handleDescribeEngine(c *gin.Context) {
	def, err := s.engine.Describe(c.Param("model"))
	if err != nil {
		var unknown *registry.UnknownModelError
		if stderrors.As(err, &unknown) {
			writeError(c, http.StatusNotFound, "UNKNOWN_MODEL", err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, output.NewModelView(def))
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	// Execute engine (NO PRICING LOGIC HERE)
	var result engine.Result
	if req.Model == "" {
		result = s.engine.QuotePartNumber(req.PartNumber)
	} else {
		result = s.engine.Quote(req.Model, req.PartNumber)
	}

	status := http.StatusOK
	if !result.OK() {
		status = http.StatusBadRequest
		if result.Failure.Kind == engine.KindUnknownModel {
			status = http.StatusNotFound
		}
		requestLogger(c).Info("quote rejected",
			zap.String("model", result.Failure.Model),
			zap.String("segment", result.Failure.Segment),
			zap.String("invalid_code", result.Failure.InvalidCode),
		)
	}
	c.JSON(status, output.QuoteView(result))
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		OK:        false,
		Error:     message,
		Code:      code,
		RequestID: c.GetString(requestIDKey),
	})
}
