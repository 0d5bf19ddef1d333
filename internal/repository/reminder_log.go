package repository

import (
	"team-planner-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReminderLogRepository persists sent-reminder markers
type ReminderLogRepository struct {
	db *gorm.DB
}

// NewReminderLogRepository creates a new reminder log repository
func NewReminderLogRepository(db *gorm.DB) *ReminderLogRepository {
	return &ReminderLogRepository{db: db}
}

// Record inserts the marker unless it exists and reports whether a row was written
func (r *ReminderLogRepository) Record(entry *models.ReminderLog) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Release deletes the marker matching the entry's key
func (r *ReminderLogRepository) Release(entry *models.ReminderLog) error {
	return r.db.Where("entity_type = ? AND entity_id = ? AND recipient_id = ? AND due_at = ?",
		entry.EntityType, entry.EntityID, entry.RecipientID, entry.DueAt).
		Delete(&models.ReminderLog{}).Error
}
