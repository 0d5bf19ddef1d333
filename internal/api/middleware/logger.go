package middleware

import (
	"time"

	"team-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger emits one structured entry per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := logger.FromGinContext(c).WithFields(map[string]interface{}{
			"method":    c.Request.Method,
			"path":      path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}
