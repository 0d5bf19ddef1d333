package repository

import (
	"time"

	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TaskFilter narrows task listings. Nil fields are not applied; an empty
// GroupIDs slice means no group restriction.
type TaskFilter struct {
	GroupIDs      []uuid.UUID
	Search        string
	Status        *models.TaskStatus
	AssignedTo    *uuid.UUID
	NotAssignedTo *uuid.UUID
	DeadlineFrom  *time.Time
	DeadlineTo    *time.Time
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	CreateWithMembers(group *models.Group, members []models.GroupMember) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetByName(name string) (*models.Group, error)
	GetByIDs(ids []uuid.UUID) ([]models.Group, error)
	GetAccessible(userID uuid.UUID) ([]models.Group, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	DeleteCascade(id uuid.UUID) error
}

// GroupMemberRepositoryInterface defines the interface for group membership operations
type GroupMemberRepositoryInterface interface {
	GetActive(groupID, userID uuid.UUID) (*models.GroupMember, error)
	ListActive(groupID uuid.UUID) ([]models.GroupMember, error)
	ListActiveByRole(groupID uuid.UUID, role models.MemberRole) ([]models.GroupMember, error)
	ListActiveByUser(userID uuid.UUID) ([]models.GroupMember, error)
	CountActiveByGroups(groupIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Rejoin(member *models.GroupMember) error
	MarkLeft(id uuid.UUID, at time.Time) error
	MarkLeftUnlessLastAdmin(id uuid.UUID, at time.Time) error
	UpdateRoleUnlessLastAdmin(id uuid.UUID, role models.MemberRole) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.TaskItem) error
	GetByID(id uuid.UUID) (*models.TaskItem, error)
	Update(task *models.TaskItem) error
	Delete(id uuid.UUID) error
	List(filter TaskFilter) ([]models.TaskItem, error)
	CountByStatus(groupID uuid.UUID) (map[models.TaskStatus]int64, error)
	ListDueBetween(from, to time.Time) ([]models.TaskItem, error)
}

// PriorityRepositoryInterface defines the interface for priority lookups
type PriorityRepositoryInterface interface {
	Create(priority *models.Priority) error
	GetByID(id uuid.UUID) (*models.Priority, error)
	GetAll() ([]models.Priority, error)
}

// EventRepositoryInterface defines the interface for calendar event operations
type EventRepositoryInterface interface {
	Create(event *models.CalendarEvent) error
	GetByID(id uuid.UUID) (*models.CalendarEvent, error)
	Update(event *models.CalendarEvent) error
	Delete(id uuid.UUID) error
	ListInRange(groupIDs []uuid.UUID, from, to time.Time) ([]models.CalendarEvent, error)
	ListStartingBetween(from, to time.Time) ([]models.CalendarEvent, error)
	CountStartingBetween(groupIDs []uuid.UUID, from, to time.Time) (int64, error)
}

// NotificationRepositoryInterface defines the interface for notification operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	ListByUser(userID uuid.UUID, limit int) ([]models.Notification, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(userID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkAllRead(userID uuid.UUID) (int64, error)
}

// AttachmentRepositoryInterface defines the interface for file attachment metadata
type AttachmentRepositoryInterface interface {
	Create(attachment *models.FileAttachment) error
	GetByID(id uuid.UUID) (*models.FileAttachment, error)
	ListByEntity(entityType string, entityID uuid.UUID) ([]models.FileAttachment, error)
	ListForGroupTasks(groupID uuid.UUID) ([]models.FileAttachment, error)
	Delete(id uuid.UUID) error
}

// ReminderLogRepositoryInterface records which reminders were already sent
type ReminderLogRepositoryInterface interface {
	// Record inserts the marker and reports false when it already existed.
	Record(entry *models.ReminderLog) (bool, error)
	// Release removes a marker so the reminder is attempted again.
	Release(entry *models.ReminderLog) error
}
