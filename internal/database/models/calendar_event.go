package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTimeZone is used when an event is created without a zone
const DefaultTimeZone = "Asia/Ho_Chi_Minh"

// CalendarEvent is a scheduled event in a group calendar
type CalendarEvent struct {
	BaseModel
	Title          string     `json:"title" gorm:"size:200;not null"`
	Description    string     `json:"description" gorm:"size:1000"`
	StartTime      time.Time  `json:"start_time" gorm:"not null;index"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	TimeZoneID     string     `json:"time_zone_id" gorm:"size:100;not null"`
	GroupID        uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index"`
	IsAllDay       bool       `json:"is_all_day"`
	RecurrenceRule string     `json:"recurrence_rule" gorm:"size:500"`
	EventType      EventType  `json:"event_type" gorm:"type:varchar(20);not null;default:'Meeting'"`
	CreatedBy      uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`

	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID"`
}

// TableName returns the table name for CalendarEvent
func (CalendarEvent) TableName() string {
	return "calendar_events"
}
