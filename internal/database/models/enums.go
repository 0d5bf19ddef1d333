package models

// MemberRole is the role a user holds inside a group
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "Admin"
	MemberRoleMember MemberRole = "Member"
)

// TaskStatus is the workflow state of a task
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "ToDo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
	TaskStatusBlocked    TaskStatus = "Blocked"
)

// EventType classifies calendar events
type EventType string

const (
	EventTypeMeeting  EventType = "Meeting"
	EventTypeDeadline EventType = "Deadline"
	EventTypeReminder EventType = "Reminder"
)

// Entity type tags used by notifications, attachments and reminder logs
const (
	EntityTypeGroup         = "Group"
	EntityTypeTask          = "TaskItem"
	EntityTypeCalendarEvent = "CalendarEvent"
)

// Notification type tags
const (
	NotificationGroupCreated       = "GroupCreated"
	NotificationGroupInvite        = "GroupInvite"
	NotificationGroupMemberRemoved = "GroupMemberRemoved"
	NotificationGroupMemberLeft    = "GroupMemberLeft"
	NotificationGroupDeleted       = "GroupDeleted"
	NotificationRoleChanged        = "GroupRoleChanged"
	NotificationTaskAssigned       = "TaskAssigned"
	NotificationTaskStatusUpdated  = "TaskStatusUpdated"
	NotificationTaskReminder       = "TaskReminder"
	NotificationEventReminder      = "EventReminder"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleAdmin, MemberRoleMember:
		return true
	}
	return false
}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone, TaskStatusBlocked:
		return true
	}
	return false
}

// IsValid checks if the EventType is valid
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeMeeting, EventTypeDeadline, EventTypeReminder:
		return true
	}
	return false
}

// AllTaskStatuses lists statuses in display order
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusToDo, TaskStatusInProgress, TaskStatusDone, TaskStatusBlocked}
}
