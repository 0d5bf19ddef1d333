package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskItem is a unit of work inside a group.
// CompletedAt is set iff Status is Done; StatusChangedAt moves only on a status change.
type TaskItem struct {
	BaseModel
	Title           string     `json:"title" gorm:"size:200;not null"`
	Description     string     `json:"description" gorm:"size:1000"`
	Status          TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'ToDo';index"`
	Deadline        *time.Time `json:"deadline,omitempty" gorm:"index"`
	AssignedTo      *uuid.UUID `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	GroupID         uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index"`
	PriorityID      *uuid.UUID `json:"priority_id,omitempty" gorm:"type:uuid"`
	Tags            string     `json:"tags" gorm:"size:200"`
	CreatedBy       uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	StatusChangedAt time.Time  `json:"status_changed_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	Group    *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Assignee *User     `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
	Priority *Priority `json:"priority,omitempty" gorm:"foreignKey:PriorityID"`
}

// TableName returns the table name for TaskItem
func (TaskItem) TableName() string {
	return "task_items"
}

// ApplyStatus sets the status and keeps the derived timestamps consistent.
// It returns true when the stored status actually changed.
func (t *TaskItem) ApplyStatus(status TaskStatus, now time.Time) bool {
	changed := t.Status != status
	t.Status = status
	if changed {
		t.StatusChangedAt = now
	}
	if status == TaskStatusDone {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = now
	return changed
}
