package handlers

import (
	"net/http"

	"team-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats returns the caller's dashboard counters
// @Summary Dashboard statistics
// @Description Group, task and event counters for the authenticated user
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
