package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every request with method, path, status, and
// latency.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// SetupRoutes registers all endpoints on the router.
func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/gap-analysis", h.GapAnalysis)
		apiGroup.GET("/gap-analysis/breakdown", h.GapBreakdown)
		apiGroup.GET("/gap-analysis/accounts", h.GapAccounts)
		apiGroup.GET("/persona/:label", h.Persona)
		apiGroup.POST("/insights/extract", h.ExtractInsights)
		apiGroup.GET("/intel", h.Intel)
		apiGroup.GET("/recommendations", h.Recommendations)
		apiGroup.POST("/recommendations", h.RecommendationsForList)
		apiGroup.POST("/content", h.Content)
		apiGroup.GET("/usage", h.Usage)
		apiGroup.GET("/quote", h.Quote)
	}
}
