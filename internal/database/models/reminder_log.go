package models

import (
	"time"

	"github.com/google/uuid"
)

// ReminderLog marks that a recipient was reminded about an entity for a given due time
type ReminderLog struct {
	EntityType  string    `gorm:"primaryKey;size:50"`
	EntityID    uuid.UUID `gorm:"primaryKey;type:uuid"`
	RecipientID uuid.UUID `gorm:"primaryKey;type:uuid"`
	DueAt       time.Time `gorm:"primaryKey"`
	SentAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for ReminderLog
func (ReminderLog) TableName() string {
	return "reminder_logs"
}
