package handlers

import (
	"net/http"
	"time"

	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves calendar feeds
type CalendarHandler struct {
	service service.CalendarServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service service.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// GroupEvents returns a group's events in a time range
// @Summary Group calendar
// @Tags calendar
// @Produce json
// @Param id path string true "Group ID"
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339)"
// @Success 200 {array} service.CalendarItem
// @Failure 400 {object} ErrorResponse "Invalid time range"
// @Failure 403 {object} ErrorResponse "No access"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/events [get]
func (h *CalendarHandler) GroupEvents(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}
	from, to, ok := timeRange(c)
	if !ok {
		return
	}

	items, err := h.service.GroupEvents(groupID, userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// AllItems returns events and task deadlines across the caller's groups
// @Summary My calendar
// @Tags calendar
// @Produce json
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339)"
// @Success 200 {array} service.CalendarItem
// @Failure 400 {object} ErrorResponse "Invalid time range"
// @Security BearerAuth
// @Router /calendar [get]
func (h *CalendarHandler) AllItems(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	from, to, ok := timeRange(c)
	if !ok {
		return
	}

	items, err := h.service.AllItems(userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func timeRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		respondError(c, apperrors.ErrInvalidTimeRange)
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		respondError(c, apperrors.ErrInvalidTimeRange)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
