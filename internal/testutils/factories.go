package testutils

import (
	"fmt"
	"time"

	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Test User",
		Email:     fmt.Sprintf("user-%s@test.com", id.String()[:8]),
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group owned by createdBy with a unique name
func (f *GroupFactory) Create(createdBy uuid.UUID) *models.Group {
	id := uuid.New()
	return &models.Group{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Test Group " + id.String()[:8],
		Description: "A test group for testing purposes",
		CreatedBy:   createdBy,
	}
}

// GroupMemberFactory provides methods to create test GroupMember data
type GroupMemberFactory struct{}

// NewGroupMemberFactory creates a new GroupMemberFactory
func NewGroupMemberFactory() *GroupMemberFactory {
	return &GroupMemberFactory{}
}

// Create creates an active membership
func (f *GroupMemberFactory) Create(groupID, userID uuid.UUID, role models.MemberRole) *models.GroupMember {
	return &models.GroupMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		GroupID:   groupID,
		UserID:    userID,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	}
}

// Left creates a membership that has ended
func (f *GroupMemberFactory) Left(groupID, userID uuid.UUID, role models.MemberRole) *models.GroupMember {
	member := f.Create(groupID, userID, role)
	left := time.Now().UTC()
	member.LeftAt = &left
	return member
}

// TaskFactory provides methods to create test TaskItem data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a ToDo task in a group
func (f *TaskFactory) Create(groupID, createdBy uuid.UUID) *models.TaskItem {
	now := time.Now().UTC()
	return &models.TaskItem{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Title:           "Test Task",
		Description:     "A test task",
		Status:          models.TaskStatusToDo,
		GroupID:         groupID,
		CreatedBy:       createdBy,
		StatusChangedAt: now,
	}
}

// WithDeadline sets a deadline, an assignee and a status
func (f *TaskFactory) WithDeadline(groupID, createdBy uuid.UUID, deadline time.Time, assignee *uuid.UUID, status models.TaskStatus) *models.TaskItem {
	task := f.Create(groupID, createdBy)
	task.Deadline = &deadline
	task.AssignedTo = assignee
	task.ApplyStatus(status, time.Now().UTC())
	return task
}

// EventFactory provides methods to create test CalendarEvent data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a one-hour meeting starting at start
func (f *EventFactory) Create(groupID, createdBy uuid.UUID, start time.Time) *models.CalendarEvent {
	end := start.Add(time.Hour)
	return &models.CalendarEvent{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Title:      "Test Event",
		StartTime:  start,
		EndTime:    &end,
		TimeZoneID: models.DefaultTimeZone,
		GroupID:    groupID,
		EventType:  models.EventTypeMeeting,
		CreatedBy:  createdBy,
	}
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates an unread notification for a user
func (f *NotificationFactory) Create(userID uuid.UUID, message string) *models.Notification {
	return &models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
		Type:    models.NotificationGroupInvite,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Group        *GroupFactory
	GroupMember  *GroupMemberFactory
	Task         *TaskFactory
	Event        *EventFactory
	Notification *NotificationFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Group:        NewGroupFactory(),
		GroupMember:  NewGroupMemberFactory(),
		Task:         NewTaskFactory(),
		Event:        NewEventFactory(),
		Notification: NewNotificationFactory(),
	}
}
