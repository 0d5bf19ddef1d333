package repository

import (
	"time"

	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for calendar events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.CalendarEvent) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event with its group
func (r *EventRepository) GetByID(id uuid.UUID) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := r.db.Preload("Group").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update saves every column of the event
func (r *EventRepository) Update(event *models.CalendarEvent) error {
	return r.db.Omit("Group").Save(event).Error
}

// Delete removes an event
func (r *EventRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.CalendarEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListInRange returns events of the groups starting at or after from whose end,
// when set, is at or before to.
func (r *EventRepository) ListInRange(groupIDs []uuid.UUID, from, to time.Time) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if len(groupIDs) == 0 {
		return events, nil
	}
	err := r.db.Preload("Group").
		Where("group_id IN ?", groupIDs).
		Where("start_time >= ?", from).
		Where("(end_time IS NULL OR end_time <= ?)", to).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

// ListStartingBetween returns events starting in [from, to)
func (r *EventRepository) ListStartingBetween(from, to time.Time) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := r.db.
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

// CountStartingBetween counts events of the groups starting in [from, to), whatever their end
func (r *EventRepository) CountStartingBetween(groupIDs []uuid.UUID, from, to time.Time) (int64, error) {
	var total int64
	if len(groupIDs) == 0 {
		return total, nil
	}
	err := r.db.Model(&models.CalendarEvent{}).
		Where("group_id IN ?", groupIDs).
		Where("start_time >= ? AND start_time < ?", from, to).
		Count(&total).Error
	return total, err
}
