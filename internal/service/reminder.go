package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-planner-backend/internal/database/models"
	"team-planner-backend/internal/logger"
	"team-planner-backend/internal/repository"

	"github.com/google/uuid"
)

// DefaultReminderWindow is how far ahead a sweep looks for deadlines and event starts
const DefaultReminderWindow = 24 * time.Hour

const reminderTimeLayout = "2006-01-02 15:04 MST"

// ReminderService sends deadline and event reminders. Each (entity, recipient,
// due time) triple is recorded so later sweeps skip it.
type ReminderService struct {
	taskRepo   repository.TaskRepositoryInterface
	eventRepo  repository.EventRepositoryInterface
	groupRepo  repository.GroupRepositoryInterface
	memberRepo repository.GroupMemberRepositoryInterface
	logRepo    repository.ReminderLogRepositoryInterface
	notifier   Notifier
	window     time.Duration
}

// NewReminderService creates a new reminder service
func NewReminderService(
	taskRepo repository.TaskRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	memberRepo repository.GroupMemberRepositoryInterface,
	logRepo repository.ReminderLogRepositoryInterface,
	notifier Notifier,
	window time.Duration,
) *ReminderService {
	if window <= 0 {
		window = DefaultReminderWindow
	}
	return &ReminderService{
		taskRepo:   taskRepo,
		eventRepo:  eventRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		logRepo:    logRepo,
		notifier:   notifier,
		window:     window,
	}
}

// ReminderCycleResult summarizes one sweep
type ReminderCycleResult struct {
	TasksScanned  int
	EventsScanned int
	Sent          int
	Skipped       int
	Failed        int
}

type reminder struct {
	entityType  string
	entityID    uuid.UUID
	recipientID uuid.UUID
	dueAt       time.Time
	kind        string
	message     string
}

// RunCycle scans tasks due and events starting in [now, now+window) and notifies
// their recipients. Per-recipient failures are counted and logged; only a failed
// scan or a cancelled ctx ends the cycle early.
func (s *ReminderService) RunCycle(ctx context.Context, now time.Time) (*ReminderCycleResult, error) {
	result := &ReminderCycleResult{}
	until := now.Add(s.window)
	log := logger.WithContext(ctx).WithField("component", "reminder")

	tasks, err := s.taskRepo.ListDueBetween(now, until)
	if err != nil {
		return result, fmt.Errorf("failed to list due tasks: %w", err)
	}
	result.TasksScanned = len(tasks)

	groups := newGroupCache(s.groupRepo, s.memberRepo)

	for i := range tasks {
		reminders, err := s.taskReminders(&tasks[i], groups)
		if err != nil {
			log.WithField("task_id", tasks[i].ID.String()).Errorf("Failed to resolve task reminder recipients: %v", err)
			result.Failed++
			continue
		}
		if err := s.send(ctx, reminders, result); err != nil {
			return result, err
		}
	}

	events, err := s.eventRepo.ListStartingBetween(now, until)
	if err != nil {
		return result, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	result.EventsScanned = len(events)

	for i := range events {
		reminders, err := s.eventReminders(&events[i], groups)
		if err != nil {
			log.WithField("event_id", events[i].ID.String()).Errorf("Failed to resolve event reminder recipients: %v", err)
			result.Failed++
			continue
		}
		if err := s.send(ctx, reminders, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// send claims each reminder in the log before notifying. A failed notification
// releases the claim so a later cycle retries it.
func (s *ReminderService) send(ctx context.Context, reminders []reminder, result *ReminderCycleResult) error {
	for _, r := range reminders {
		if err := ctx.Err(); err != nil {
			return err
		}

		log := logger.WithContext(ctx).WithFields(map[string]interface{}{
			"entity_type": r.entityType,
			"entity_id":   r.entityID.String(),
			"recipient":   r.recipientID.String(),
		})

		entry := &models.ReminderLog{
			EntityType:  r.entityType,
			EntityID:    r.entityID,
			RecipientID: r.recipientID,
			DueAt:       r.dueAt,
			SentAt:      time.Now().UTC(),
		}
		first, err := s.logRepo.Record(entry)
		if err != nil {
			log.Errorf("Failed to record reminder: %v", err)
			result.Failed++
			continue
		}
		if !first {
			result.Skipped++
			continue
		}

		entityID := r.entityID
		err = s.notifier.Notify(ctx, NotificationInput{
			UserID:            r.recipientID,
			Message:           r.message,
			Type:              r.kind,
			RelatedEntityID:   &entityID,
			RelatedEntityType: r.entityType,
		})
		if err != nil {
			if releaseErr := s.logRepo.Release(entry); releaseErr != nil {
				log.Errorf("Failed to release reminder marker: %v", releaseErr)
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			log.Errorf("Failed to send reminder: %v", err)
			result.Failed++
			continue
		}
		result.Sent++
	}
	return nil
}

func (s *ReminderService) taskReminders(task *models.TaskItem, groups *groupCache) ([]reminder, error) {
	group, admins, err := groups.withAdmins(task.GroupID)
	if err != nil {
		return nil, err
	}

	due := task.Deadline.UTC()
	var reminders []reminder

	if task.AssignedTo != nil {
		reminders = append(reminders, reminder{
			entityType:  models.EntityTypeTask,
			entityID:    task.ID,
			recipientID: *task.AssignedTo,
			dueAt:       due,
			kind:        models.NotificationTaskReminder,
			message:     fmt.Sprintf("Reminder: task '%s' is due at %s.", task.Title, due.Format(reminderTimeLayout)),
		})
	}

	var assignee uuid.UUID
	if task.AssignedTo != nil {
		assignee = *task.AssignedTo
	}
	candidates := make([]uuid.UUID, 0, len(admins)+1)
	candidates = append(candidates, admins...)
	candidates = append(candidates, group.CreatedBy)
	for _, id := range recipients(assignee, candidates...) {
		reminders = append(reminders, reminder{
			entityType:  models.EntityTypeTask,
			entityID:    task.ID,
			recipientID: id,
			dueAt:       due,
			kind:        models.NotificationTaskReminder,
			message: fmt.Sprintf("Reminder: task '%s' in '%s' is due at %s.",
				task.Title, group.Name, due.Format(reminderTimeLayout)),
		})
	}

	return reminders, nil
}

func (s *ReminderService) eventReminders(event *models.CalendarEvent, groups *groupCache) ([]reminder, error) {
	group, members, err := groups.withMembers(event.GroupID)
	if err != nil {
		return nil, err
	}

	start := event.StartTime.In(eventLocation(event.TimeZoneID))
	message := fmt.Sprintf("Reminder: event '%s' in '%s' starts at %s.",
		event.Title, group.Name, start.Format(reminderTimeLayout))

	candidates := make([]uuid.UUID, 0, len(members)+1)
	candidates = append(candidates, members...)
	candidates = append(candidates, group.CreatedBy)

	var reminders []reminder
	for _, id := range recipients(uuid.Nil, candidates...) {
		reminders = append(reminders, reminder{
			entityType:  models.EntityTypeCalendarEvent,
			entityID:    event.ID,
			recipientID: id,
			dueAt:       event.StartTime.UTC(),
			kind:        models.NotificationEventReminder,
			message:     message,
		})
	}
	return reminders, nil
}

func eventLocation(zone string) *time.Location {
	if loc, err := time.LoadLocation(zone); err == nil && zone != "" {
		return loc
	}
	return time.UTC
}

// groupCache memoizes group lookups for the duration of one cycle
type groupCache struct {
	groupRepo  repository.GroupRepositoryInterface
	memberRepo repository.GroupMemberRepositoryInterface
	groups     map[uuid.UUID]*models.Group
	admins     map[uuid.UUID][]uuid.UUID
	members    map[uuid.UUID][]uuid.UUID
}

func newGroupCache(groupRepo repository.GroupRepositoryInterface, memberRepo repository.GroupMemberRepositoryInterface) *groupCache {
	return &groupCache{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		groups:     make(map[uuid.UUID]*models.Group),
		admins:     make(map[uuid.UUID][]uuid.UUID),
		members:    make(map[uuid.UUID][]uuid.UUID),
	}
}

func (c *groupCache) group(id uuid.UUID) (*models.Group, error) {
	if g, ok := c.groups[id]; ok {
		return g, nil
	}
	g, err := c.groupRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	c.groups[id] = g
	return g, nil
}

func (c *groupCache) withAdmins(id uuid.UUID) (*models.Group, []uuid.UUID, error) {
	g, err := c.group(id)
	if err != nil {
		return nil, nil, err
	}
	if ids, ok := c.admins[id]; ok {
		return g, ids, nil
	}
	admins, err := c.memberRepo.ListActiveByRole(id, models.MemberRoleAdmin)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list admins: %w", err)
	}
	ids := memberUserIDs(admins)
	c.admins[id] = ids
	return g, ids, nil
}

func (c *groupCache) withMembers(id uuid.UUID) (*models.Group, []uuid.UUID, error) {
	g, err := c.group(id)
	if err != nil {
		return nil, nil, err
	}
	if ids, ok := c.members[id]; ok {
		return g, ids, nil
	}
	members, err := c.memberRepo.ListActive(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list members: %w", err)
	}
	ids := memberUserIDs(members)
	c.members[id] = ids
	return g, ids, nil
}

func memberUserIDs(members []models.GroupMember) []uuid.UUID {
	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.UserID
	}
	return ids
}
