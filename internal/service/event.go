package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService handles business logic for calendar events
type EventService struct {
	repo            repository.EventRepositoryInterface
	groupRepo       repository.GroupRepositoryInterface
	authz           Authorizer
	validator       *validator.Validate
	defaultTimeZone string
}

// NewEventService creates a new event service. An empty defaultTimeZone falls back to models.DefaultTimeZone.
func NewEventService(repo repository.EventRepositoryInterface, groupRepo repository.GroupRepositoryInterface, authz Authorizer, validator *validator.Validate, defaultTimeZone string) *EventService {
	if defaultTimeZone == "" {
		defaultTimeZone = models.DefaultTimeZone
	}
	return &EventService{
		repo:            repo,
		groupRepo:       groupRepo,
		authz:           authz,
		validator:       validator,
		defaultTimeZone: defaultTimeZone,
	}
}

// CreateEventRequest represents the request to create a calendar event
type CreateEventRequest struct {
	GroupID        uuid.UUID        `json:"group_id" validate:"required"`
	Title          string           `json:"title" validate:"required,max=200"`
	Description    string           `json:"description" validate:"max=1000"`
	StartTime      time.Time        `json:"start_time" validate:"required"`
	EndTime        *time.Time       `json:"end_time,omitempty"`
	TimeZoneID     string           `json:"time_zone_id" validate:"max=100" example:"Asia/Ho_Chi_Minh"`
	IsAllDay       bool             `json:"is_all_day"`
	RecurrenceRule string           `json:"recurrence_rule" validate:"max=500" example:"FREQ=WEEKLY;BYDAY=MO"`
	EventType      models.EventType `json:"event_type" example:"Meeting"`
}

// UpdateEventRequest represents the request to update a calendar event
type UpdateEventRequest struct {
	Title          string           `json:"title" validate:"required,max=200"`
	Description    string           `json:"description" validate:"max=1000"`
	StartTime      time.Time        `json:"start_time" validate:"required"`
	EndTime        *time.Time       `json:"end_time,omitempty"`
	TimeZoneID     string           `json:"time_zone_id" validate:"max=100"`
	IsAllDay       bool             `json:"is_all_day"`
	RecurrenceRule string           `json:"recurrence_rule" validate:"max=500"`
	EventType      models.EventType `json:"event_type"`
}

// UpdateEventTimeRequest moves an event, as when it is dragged on a calendar
type UpdateEventTimeRequest struct {
	StartTime time.Time  `json:"start_time" validate:"required"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	IsAllDay  *bool      `json:"is_all_day,omitempty"`
}

// EventResponse represents the response for event operations
type EventResponse struct {
	ID             uuid.UUID        `json:"id"`
	GroupID        uuid.UUID        `json:"group_id"`
	GroupName      string           `json:"group_name,omitempty"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	StartTime      time.Time        `json:"start_time"`
	EndTime        *time.Time       `json:"end_time,omitempty"`
	TimeZoneID     string           `json:"time_zone_id"`
	IsAllDay       bool             `json:"is_all_day"`
	RecurrenceRule string           `json:"recurrence_rule,omitempty"`
	EventType      models.EventType `json:"event_type"`
	CreatedBy      uuid.UUID        `json:"created_by"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Create schedules an event in a group. Admin only; the start must lie in the future.
func (s *EventService) Create(req *CreateEventRequest, actorID uuid.UUID) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.getGroup(req.GroupID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(s.authz, group.ID, actorID); err != nil {
		return nil, err
	}

	event := &models.CalendarEvent{
		GroupID:   group.ID,
		CreatedBy: actorID,
	}
	if err := s.apply(event, req.Title, req.Description, req.StartTime, req.EndTime, req.TimeZoneID, req.IsAllDay, req.RecurrenceRule, req.EventType); err != nil {
		return nil, err
	}
	if !event.StartTime.After(time.Now()) {
		return nil, apperrors.ErrStartInPast
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	event.Group = group
	return toEventResponse(event), nil
}

// GetByID returns an event the caller can access
func (s *EventService) GetByID(eventID, actorID uuid.UUID) (*EventResponse, error) {
	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(s.authz, event.GroupID, actorID); err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// Update replaces the editable fields of an event. Admin only.
func (s *EventService) Update(eventID uuid.UUID, req *UpdateEventRequest, actorID uuid.UUID) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(s.authz, event.GroupID, actorID); err != nil {
		return nil, err
	}

	if err := s.apply(event, req.Title, req.Description, req.StartTime, req.EndTime, req.TimeZoneID, req.IsAllDay, req.RecurrenceRule, req.EventType); err != nil {
		return nil, err
	}

	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return toEventResponse(event), nil
}

// UpdateTime moves an event without touching its other fields. Admin only.
func (s *EventService) UpdateTime(eventID uuid.UUID, req *UpdateEventTimeRequest, actorID uuid.UUID) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndTime != nil && !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrEndBeforeStart
	}

	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(s.authz, event.GroupID, actorID); err != nil {
		return nil, err
	}

	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	if req.IsAllDay != nil {
		event.IsAllDay = *req.IsAllDay
	}

	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return toEventResponse(event), nil
}

// Delete removes an event. Admin only.
func (s *EventService) Delete(eventID, actorID uuid.UUID) error {
	event, err := s.getEvent(eventID)
	if err != nil {
		return err
	}
	if err := requireAdmin(s.authz, event.GroupID, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// CanAccessEvent reports whether the user can access the event's group. A missing event yields false.
func (s *EventService) CanAccessEvent(eventID, userID uuid.UUID) (bool, error) {
	event, err := s.repo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get event: %w", err)
	}
	return s.authz.CanAccess(event.GroupID, userID)
}

// apply validates and copies the editable fields onto event
func (s *EventService) apply(event *models.CalendarEvent, title, description string, start time.Time, end *time.Time, timeZoneID string, allDay bool, rule string, eventType models.EventType) error {
	if end != nil && !end.After(start) {
		return apperrors.ErrEndBeforeStart
	}

	if err := ValidateRecurrenceRule(rule); err != nil {
		return err
	}

	zone, err := resolveTimeZone(timeZoneID, s.defaultTimeZone)
	if err != nil {
		return err
	}

	if eventType == "" {
		eventType = models.EventTypeMeeting
	}
	if !eventType.IsValid() {
		return apperrors.NewValidationError("event_type", "must be Meeting, Deadline or Reminder")
	}

	event.Title = title
	event.Description = description
	event.StartTime = start
	event.EndTime = end
	event.TimeZoneID = zone
	event.IsAllDay = allDay
	event.RecurrenceRule = strings.TrimSpace(rule)
	event.EventType = eventType
	return nil
}

func (s *EventService) getEvent(eventID uuid.UUID) (*models.CalendarEvent, error) {
	event, err := s.repo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *EventService) getGroup(groupID uuid.UUID) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func toEventResponse(event *models.CalendarEvent) *EventResponse {
	resp := &EventResponse{
		ID:             event.ID,
		GroupID:        event.GroupID,
		Title:          event.Title,
		Description:    event.Description,
		StartTime:      event.StartTime,
		EndTime:        event.EndTime,
		TimeZoneID:     event.TimeZoneID,
		IsAllDay:       event.IsAllDay,
		RecurrenceRule: event.RecurrenceRule,
		EventType:      event.EventType,
		CreatedBy:      event.CreatedBy,
		CreatedAt:      event.CreatedAt,
		UpdatedAt:      event.UpdatedAt,
	}
	if event.Group != nil {
		resp.GroupName = event.Group.Name
	}
	return resp
}
