package handlers

import (
	"net/http"
	"strconv"
	"time"

	"team-planner-backend/internal/logger"
	"team-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultKeepAlive = 25 * time.Second

// NotificationHandler handles the notification inbox and its live stream
type NotificationHandler struct {
	service   service.NotificationServiceInterface
	keepAlive time.Duration
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service, keepAlive: defaultKeepAlive}
}

// CountResponse carries a single counter
type CountResponse struct {
	Count int64 `json:"count"`
}

// UpdatedResponse reports how many rows a bulk operation changed
type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

// ListNotifications lists the caller's most recent notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum number of notifications (1-100, default 20)"
// @Success 200 {array} service.NotificationResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = parsed
	}

	notifications, err := h.service.List(userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCount returns the number of unread notifications
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Success 200 {object} CountResponse
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// MarkRead marks selected notifications as read
// @Summary Mark notifications read
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body service.MarkReadRequest true "Notification IDs"
// @Success 200 {object} UpdatedResponse
// @Failure 400 {object} ErrorResponse "No ids given"
// @Failure 404 {object} ErrorResponse "No matching notification"
// @Security BearerAuth
// @Router /notifications/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.service.MarkAsRead(userID, req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdatedResponse{Updated: updated})
}

// MarkAllRead marks every notification of the caller as read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} UpdatedResponse
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	updated, err := h.service.MarkAllAsRead(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdatedResponse{Updated: updated})
}

// Stream pushes new notifications as server-sent events
// @Summary Notification stream
// @Description Server-sent events; each "notification" event carries a NotificationResponse. EventSource clients may pass the token as access_token.
// @Tags notifications
// @Produce text/event-stream
// @Success 200 {object} service.NotificationResponse
// @Failure 503 {object} ErrorResponse "Push unavailable"
// @Security BearerAuth
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	payloads, err := h.service.Subscribe(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	log := logger.FromGinContext(c)
	log.Debug("Notification stream opened")
	defer log.Debug("Notification stream closed")

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-payloads:
			if !ok {
				return
			}
			c.SSEvent("notification", string(payload))
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", "keepalive")
			c.Writer.Flush()
		}
	}
}
