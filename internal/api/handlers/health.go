package handlers

import (
	"context"
	"net/http"
	"time"

	"team-planner-backend/internal/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthCheckTimeout = 3 * time.Second

type healthCheck func(ctx context.Context) error

// HealthHandler handles health check endpoints
type HealthHandler struct {
	checks map[string]healthCheck
}

// NewHealthHandler creates a new health handler. A nil hub skips the push check.
func NewHealthHandler(db *gorm.DB, hub realtime.Hub) *HealthHandler {
	checks := map[string]healthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if hub != nil {
		checks["push"] = hub.Ping
	}
	return &HealthHandler{checks: checks}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database and push connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	healthy, services := h.run(c.Request.Context(), "healthy", "error: ")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready, services := h.run(c.Request.Context(), "ready", "not ready: ")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) run(parent context.Context, okLabel, failPrefix string) (bool, map[string]string) {
	ctx, cancel := context.WithTimeout(parent, healthCheckTimeout)
	defer cancel()

	ok := true
	services := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			ok = false
			services[name] = failPrefix + err.Error()
			continue
		}
		services[name] = okLabel
	}
	return ok, services
}
