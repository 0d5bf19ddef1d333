package service

import (
	"fmt"
	"math"
	"time"

	"team-planner-backend/internal/database/models"
	"team-planner-backend/internal/repository"

	"github.com/google/uuid"
)

const upcomingEventsWindow = 7 * 24 * time.Hour

// DashboardService computes per-user statistics
type DashboardService struct {
	groupRepo repository.GroupRepositoryInterface
	taskRepo  repository.TaskRepositoryInterface
	eventRepo repository.EventRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(groupRepo repository.GroupRepositoryInterface, taskRepo repository.TaskRepositoryInterface, eventRepo repository.EventRepositoryInterface) *DashboardService {
	return &DashboardService{
		groupRepo: groupRepo,
		taskRepo:  taskRepo,
		eventRepo: eventRepo,
	}
}

// DashboardResponse holds the caller's counters. WeeklyProgress is the percentage
// of tasks assigned to the caller and due this week that are done.
type DashboardResponse struct {
	GroupCount     int `json:"group_count"`
	AssignedTasks  int `json:"assigned_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
	UpcomingEvents int `json:"upcoming_events"`
	WeeklyProgress int `json:"weekly_progress"`
}

// Stats returns the dashboard counters for the caller
func (s *DashboardService) Stats(actorID uuid.UUID) (*DashboardResponse, error) {
	now := time.Now().UTC()

	groups, err := s.groupRepo.GetAccessible(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	stats := &DashboardResponse{GroupCount: len(groups)}
	if len(groups) == 0 {
		return stats, nil
	}

	ids := make([]uuid.UUID, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{GroupIDs: ids, AssignedTo: &actorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	var weekTotal, weekDone int

	stats.AssignedTasks = len(tasks)
	for _, t := range tasks {
		done := t.Status == models.TaskStatusDone
		if done {
			stats.CompletedTasks++
		}
		if t.Deadline == nil {
			continue
		}
		if !done && t.Deadline.Before(now) {
			stats.OverdueTasks++
		}
		if !t.Deadline.Before(weekStart) && t.Deadline.Before(weekEnd) {
			weekTotal++
			if done {
				weekDone++
			}
		}
	}
	if weekTotal > 0 {
		stats.WeeklyProgress = int(math.Round(float64(weekDone) * 100 / float64(weekTotal)))
	}

	upcoming, err := s.eventRepo.CountStartingBetween(ids, now, now.Add(upcomingEventsWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming events: %w", err)
	}
	stats.UpcomingEvents = int(upcoming)

	return stats, nil
}

// startOfWeek returns Monday 00:00 of the week containing t
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}
