package handlers

import (
	"net/http"

	"team-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for calendar events
type EventHandler struct {
	service service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(service service.EventServiceInterface) *EventHandler {
	return &EventHandler{service: service}
}

// CreateEvent schedules an event
// @Summary Create event
// @Description Schedule an event in a group. Admin only; must start in the future.
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.service.Create(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvent retrieves an event
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} service.EventResponse
// @Failure 403 {object} ErrorResponse "No access"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	event, err := h.service.GetByID(eventID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent replaces an event's fields
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body service.UpdateEventRequest true "Event data"
// @Success 200 {object} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.service.Update(eventID, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEventTime moves an event
// @Summary Move event
// @Description Change only the start, end and all-day flag of an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body service.UpdateEventTimeRequest true "New time"
// @Success 200 {object} service.EventResponse
// @Failure 400 {object} ErrorResponse "Invalid time"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/time [patch]
func (h *EventHandler) UpdateEventTime(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	var req service.UpdateEventTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.service.UpdateTime(eventID, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes an event
// @Summary Delete event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	if err := h.service.Delete(eventID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
