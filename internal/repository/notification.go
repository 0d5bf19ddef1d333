package repository

import (
	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// ListByUser returns the newest notifications of a user
func (r *NotificationRepository) ListByUser(userID uuid.UUID, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// CountUnread counts the unread notifications of a user
func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&total).Error
	return total, err
}

// MarkRead flags the given notifications of the user as read and returns how many matched
func (r *NotificationRepository) MarkRead(userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	var matched int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Notification{}).
			Where("user_id = ? AND id IN ?", userID, ids).
			Count(&matched).Error; err != nil {
			return err
		}
		if matched == 0 {
			return nil
		}
		return tx.Model(&models.Notification{}).
			Where("user_id = ? AND id IN ? AND is_read = ?", userID, ids, false).
			Update("is_read", true).Error
	})
	return matched, err
}

// MarkAllRead flags every unread notification of the user as read
func (r *NotificationRepository) MarkAllRead(userID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
