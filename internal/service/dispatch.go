package service

import (
	"context"

	"team-planner-backend/internal/logger"

	"github.com/google/uuid"
)

// recipients returns ids in first-seen order without duplicates, nil ids or exclude
func recipients(exclude uuid.UUID, ids ...uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || id == exclude {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// dispatch sends the same message to each recipient. Failures are logged so the
// mutation that triggered them still succeeds.
func dispatch(ctx context.Context, notifier Notifier, to []uuid.UUID, notificationType, message string, relatedID uuid.UUID, relatedType string) {
	if notifier == nil {
		return
	}

	for _, userID := range to {
		entityID := relatedID
		err := notifier.Notify(ctx, NotificationInput{
			UserID:            userID,
			Message:           message,
			Type:              notificationType,
			RelatedEntityID:   &entityID,
			RelatedEntityType: relatedType,
		})
		if err != nil {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"recipient": userID.String(),
				"type":      notificationType,
			}).Warnf("Failed to send notification: %v", err)
		}
	}
}
