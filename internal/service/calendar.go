package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarService builds calendar feeds from events and task deadlines
type CalendarService struct {
	groupRepo repository.GroupRepositoryInterface
	eventRepo repository.EventRepositoryInterface
	taskRepo  repository.TaskRepositoryInterface
	authz     Authorizer
}

// NewCalendarService creates a new calendar service
func NewCalendarService(groupRepo repository.GroupRepositoryInterface, eventRepo repository.EventRepositoryInterface, taskRepo repository.TaskRepositoryInterface, authz Authorizer) *CalendarService {
	return &CalendarService{
		groupRepo: groupRepo,
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
		authz:     authz,
	}
}

// CalendarItem is one entry of a calendar feed
type CalendarItem struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Start         time.Time              `json:"start"`
	End           *time.Time             `json:"end,omitempty"`
	AllDay        bool                   `json:"all_day"`
	RRule         string                 `json:"rrule,omitempty"`
	ExtendedProps map[string]interface{} `json:"extended_props,omitempty"`
}

// GroupEvents returns a group's events that start at or after from and end, when set, by to
func (s *CalendarService) GroupEvents(groupID, actorID uuid.UUID, from, to time.Time) ([]CalendarItem, error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if _, err := s.groupRepo.GetByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if err := requireAccess(s.authz, groupID, actorID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListInRange([]uuid.UUID{groupID}, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	items := make([]CalendarItem, len(events))
	for i := range events {
		e := &events[i]
		items[i] = CalendarItem{
			ID:     e.ID.String(),
			Title:  e.Title,
			Start:  e.StartTime,
			End:    e.EndTime,
			AllDay: e.IsAllDay,
			RRule:  e.RecurrenceRule,
			ExtendedProps: map[string]interface{}{
				"type":         "Event",
				"event_type":   e.EventType,
				"description":  e.Description,
				"time_zone_id": e.TimeZoneID,
			},
		}
	}
	return items, nil
}

// AllItems merges events and task deadlines of every group the caller can access
func (s *CalendarService) AllItems(actorID uuid.UUID, from, to time.Time) ([]CalendarItem, error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	groups, err := s.groupRepo.GetAccessible(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if len(groups) == 0 {
		return []CalendarItem{}, nil
	}

	ids := make([]uuid.UUID, len(groups))
	names := make(map[uuid.UUID]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
		names[g.ID] = g.Name
	}

	events, err := s.eventRepo.ListInRange(ids, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{
		GroupIDs:     ids,
		DeadlineFrom: &from,
		DeadlineTo:   &to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	items := make([]CalendarItem, 0, len(events)+len(tasks))
	for i := range events {
		e := &events[i]
		items = append(items, CalendarItem{
			ID:     "event-" + e.ID.String(),
			Title:  fmt.Sprintf("%s (%s)", e.Title, names[e.GroupID]),
			Start:  e.StartTime,
			End:    e.EndTime,
			AllDay: e.IsAllDay,
			RRule:  e.RecurrenceRule,
			ExtendedProps: map[string]interface{}{
				"type":       "Event",
				"event_type": e.EventType,
				"group_name": names[e.GroupID],
			},
		})
	}

	for i := range tasks {
		t := &tasks[i]
		if t.Deadline == nil {
			continue
		}
		props := map[string]interface{}{
			"type":       "Task",
			"status":     t.Status,
			"group_name": names[t.GroupID],
			"priority":   "",
			"assignee":   "",
		}
		if t.Priority != nil {
			props["priority"] = t.Priority.Name
		}
		if t.Assignee != nil {
			props["assignee"] = t.Assignee.Name
		}
		items = append(items, CalendarItem{
			ID:            "task-" + t.ID.String(),
			Title:         t.Title,
			Start:         *t.Deadline,
			AllDay:        true,
			ExtendedProps: props,
		})
	}

	return items, nil
}
