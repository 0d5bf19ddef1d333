package middleware

import (
	"net/http"
	"runtime/debug"

	"team-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.FromGinContext(c).WithField("stack", string(debug.Stack())).
					Errorf("panic recovered: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
