package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/logger"
	"team-planner-backend/internal/realtime"
	"team-planner-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// NotificationService stores notifications and pushes them to connected sessions
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
	hub  realtime.Hub
}

// NewNotificationService creates a new notification service. A nil hub disables push.
func NewNotificationService(repo repository.NotificationRepositoryInterface, hub realtime.Hub) *NotificationService {
	return &NotificationService{
		repo: repo,
		hub:  hub,
	}
}

// NotificationInput describes a notification to deliver to one user
type NotificationInput struct {
	UserID            uuid.UUID
	Message           string
	Type              string
	RelatedEntityID   *uuid.UUID
	RelatedEntityType string
}

// NotificationResponse represents a notification as returned to clients and pushed to sessions
type NotificationResponse struct {
	ID                uuid.UUID  `json:"id"`
	Message           string     `json:"message"`
	Type              string     `json:"type"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id,omitempty"`
	RelatedEntityType string     `json:"related_entity_type,omitempty"`
	IsRead            bool       `json:"is_read"`
	CreatedAt         time.Time  `json:"created_at"`
}

// MarkReadRequest represents the request to mark notifications as read
type MarkReadRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// Notify persists the notification unread and then publishes it. A push failure
// is logged and does not fail the call.
func (s *NotificationService) Notify(ctx context.Context, input NotificationInput) error {
	notification := &models.Notification{
		UserID:            input.UserID,
		Message:           input.Message,
		Type:              input.Type,
		RelatedEntityID:   input.RelatedEntityID,
		RelatedEntityType: input.RelatedEntityType,
		IsRead:            false,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.Create(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if s.hub == nil {
		return nil
	}

	payload, err := json.Marshal(toNotificationResponse(notification))
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	if err := s.hub.Publish(ctx, input.UserID, payload); err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"recipient": input.UserID.String(),
			"type":      input.Type,
		}).Warnf("Failed to push notification: %v", err)
	}

	return nil
}

// List returns the user's most recent notifications
func (s *NotificationService) List(userID uuid.UUID, limit int) ([]NotificationResponse, error) {
	if limit < 1 || limit > maxNotificationLimit {
		limit = defaultNotificationLimit
	}

	notifications, err := s.repo.ListByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *toNotificationResponse(&notifications[i])
	}
	return responses, nil
}

// UnreadCount returns how many of the user's notifications are unread
func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	count, err := s.repo.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead marks the given notifications of the user as read. Ids owned by
// other users are ignored; none matching is reported as not found.
func (s *NotificationService) MarkAsRead(userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, apperrors.ErrNoNotificationIDs
	}

	matched, err := s.repo.MarkRead(userID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	if matched == 0 {
		return 0, apperrors.ErrNotificationNotFound
	}
	return matched, nil
}

// MarkAllAsRead marks every unread notification of the user as read
func (s *NotificationService) MarkAllAsRead(userID uuid.UUID) (int64, error) {
	updated, err := s.repo.MarkAllRead(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return updated, nil
}

// Subscribe opens a push stream of the user's notifications until ctx is done
func (s *NotificationService) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error) {
	if s.hub == nil {
		return nil, apperrors.ErrPushUnavailable
	}

	ch, err := s.hub.Subscribe(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to notifications: %w", err)
	}
	return ch, nil
}

func toNotificationResponse(n *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:                n.ID,
		Message:           n.Message,
		Type:              n.Type,
		RelatedEntityID:   n.RelatedEntityID,
		RelatedEntityType: n.RelatedEntityType,
		IsRead:            n.IsRead,
		CreatedAt:         n.CreatedAt,
	}
}
