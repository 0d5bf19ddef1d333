package service

import (
	"context"
	"io"
	"time"

	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Authorizer decides a user's access level in a group. An absent group yields false.
type Authorizer interface {
	CanAccess(groupID, userID uuid.UUID) (bool, error)
	IsAdmin(groupID, userID uuid.UUID) (bool, error)
}

// Notifier persists a notification and pushes it to the recipient's sessions
type Notifier interface {
	Notify(ctx context.Context, input NotificationInput) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetByEmail(email string) (*models.User, error)
}

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	Create(ctx context.Context, req *CreateGroupRequest, actorID uuid.UUID) (*GroupResponse, error)
	GetByID(groupID, actorID uuid.UUID) (*GroupDetailResponse, error)
	Update(ctx context.Context, groupID uuid.UUID, req *UpdateGroupRequest, actorID uuid.UUID) (*GroupResponse, error)
	Delete(ctx context.Context, groupID, actorID uuid.UUID) error
	Search(actorID uuid.UUID, req *GroupSearchRequest) ([]GroupSummaryResponse, error)
	ListMembers(groupID, actorID uuid.UUID) ([]MemberResponse, error)
	Invite(ctx context.Context, groupID uuid.UUID, req *InviteMemberRequest, actorID uuid.UUID) (*MemberResponse, error)
	RemoveMember(ctx context.Context, groupID, memberUserID, actorID uuid.UUID) error
	ChangeRole(ctx context.Context, groupID, memberUserID uuid.UUID, req *ChangeRoleRequest, actorID uuid.UUID) (*MemberResponse, error)
	Leave(ctx context.Context, groupID, actorID uuid.UUID) error
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	Create(ctx context.Context, req *CreateTaskRequest, actorID uuid.UUID) (*TaskResponse, error)
	GetByID(taskID, actorID uuid.UUID) (*TaskResponse, error)
	Update(ctx context.Context, taskID uuid.UUID, req *UpdateTaskRequest, actorID uuid.UUID) (*TaskResponse, error)
	UpdateStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus, actorID uuid.UUID) (*TaskResponse, error)
	Delete(ctx context.Context, taskID, actorID uuid.UUID) error
	CanAccessTask(taskID, userID uuid.UUID) (bool, error)
	ListByGroup(groupID, actorID uuid.UUID, query *TaskQuery) (*GroupTasksResponse, error)
	ListForUser(actorID uuid.UUID, query *TaskQuery) ([]TaskResponse, error)
}

// AttachmentServiceInterface defines the interface for task attachments
type AttachmentServiceInterface interface {
	Upload(ctx context.Context, taskID, actorID uuid.UUID, fileName string, content io.Reader) (*AttachmentResponse, error)
	List(taskID, actorID uuid.UUID) ([]AttachmentResponse, error)
	Delete(ctx context.Context, attachmentID, actorID uuid.UUID) error
}

// EventServiceInterface defines the interface for calendar event service
type EventServiceInterface interface {
	Create(req *CreateEventRequest, actorID uuid.UUID) (*EventResponse, error)
	GetByID(eventID, actorID uuid.UUID) (*EventResponse, error)
	Update(eventID uuid.UUID, req *UpdateEventRequest, actorID uuid.UUID) (*EventResponse, error)
	UpdateTime(eventID uuid.UUID, req *UpdateEventTimeRequest, actorID uuid.UUID) (*EventResponse, error)
	Delete(eventID, actorID uuid.UUID) error
	CanAccessEvent(eventID, userID uuid.UUID) (bool, error)
}

// CalendarServiceInterface defines the interface for calendar range queries
type CalendarServiceInterface interface {
	GroupEvents(groupID, actorID uuid.UUID, from, to time.Time) ([]CalendarItem, error)
	AllItems(actorID uuid.UUID, from, to time.Time) ([]CalendarItem, error)
}

// NotificationServiceInterface defines the interface for the notification read side and stream
type NotificationServiceInterface interface {
	Notifier
	List(userID uuid.UUID, limit int) ([]NotificationResponse, error)
	UnreadCount(userID uuid.UUID) (int64, error)
	MarkAsRead(userID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkAllAsRead(userID uuid.UUID) (int64, error)
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error)
}

// DashboardServiceInterface defines the interface for per-user statistics
type DashboardServiceInterface interface {
	Stats(actorID uuid.UUID) (*DashboardResponse, error)
}
