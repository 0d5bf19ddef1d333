package models

import (
	"github.com/google/uuid"
)

// Group is a collaboration space owning members, tasks and events.
// The creator is an implicit admin even without a membership row.
type Group struct {
	BaseModel
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null;index"`

	Members []GroupMember   `json:"members,omitempty" gorm:"foreignKey:GroupID"`
	Tasks   []TaskItem      `json:"tasks,omitempty" gorm:"foreignKey:GroupID"`
	Events  []CalendarEvent `json:"events,omitempty" gorm:"foreignKey:GroupID"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
