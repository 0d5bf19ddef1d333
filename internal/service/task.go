package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/logger"
	"team-planner-backend/internal/repository"
	"team-planner-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo           repository.TaskRepositoryInterface
	groupRepo      repository.GroupRepositoryInterface
	memberRepo     repository.GroupMemberRepositoryInterface
	priorityRepo   repository.PriorityRepositoryInterface
	attachmentRepo repository.AttachmentRepositoryInterface
	authz          Authorizer
	notifier       Notifier
	files          storage.FileStore
	validator      *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(
	repo repository.TaskRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	memberRepo repository.GroupMemberRepositoryInterface,
	priorityRepo repository.PriorityRepositoryInterface,
	attachmentRepo repository.AttachmentRepositoryInterface,
	authz Authorizer,
	notifier Notifier,
	files storage.FileStore,
	validator *validator.Validate,
) *TaskService {
	return &TaskService{
		repo:           repo,
		groupRepo:      groupRepo,
		memberRepo:     memberRepo,
		priorityRepo:   priorityRepo,
		attachmentRepo: attachmentRepo,
		authz:          authz,
		notifier:       notifier,
		files:          files,
		validator:      validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	GroupID     uuid.UUID         `json:"group_id" validate:"required"`
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description" validate:"max=1000"`
	Status      models.TaskStatus `json:"status" example:"ToDo"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	AssignedTo  *uuid.UUID        `json:"assigned_to,omitempty"`
	PriorityID  *uuid.UUID        `json:"priority_id,omitempty"`
	Tags        string            `json:"tags" validate:"max=200"`
}

// UpdateTaskRequest represents the request to update every editable task field
type UpdateTaskRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description" validate:"max=1000"`
	Status      models.TaskStatus `json:"status" validate:"required" example:"InProgress"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	AssignedTo  *uuid.UUID        `json:"assigned_to,omitempty"`
	PriorityID  *uuid.UUID        `json:"priority_id,omitempty"`
	Tags        string            `json:"tags" validate:"max=200"`
}

// UpdateTaskStatusRequest represents a status-only change
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" validate:"required" example:"Done"`
}

// TaskQuery filters task listings. Assigned is "self", "others" or empty.
type TaskQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Assigned string `form:"assigned"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID              uuid.UUID         `json:"id"`
	GroupID         uuid.UUID         `json:"group_id"`
	GroupName       string            `json:"group_name,omitempty"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Status          models.TaskStatus `json:"status"`
	Deadline        *time.Time        `json:"deadline,omitempty"`
	AssignedTo      *uuid.UUID        `json:"assigned_to,omitempty"`
	AssigneeName    string            `json:"assignee_name,omitempty"`
	PriorityID      *uuid.UUID        `json:"priority_id,omitempty"`
	PriorityName    string            `json:"priority_name,omitempty"`
	Tags            string            `json:"tags"`
	CreatedBy       uuid.UUID         `json:"created_by"`
	StatusChangedAt time.Time         `json:"status_changed_at"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// GroupTasksResponse is a group's task list with a per-status count
type GroupTasksResponse struct {
	Tasks        []TaskResponse              `json:"tasks"`
	StatusCounts map[models.TaskStatus]int64 `json:"status_counts"`
}

// Create creates a task in a group. Admin only.
func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest, actorID uuid.UUID) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusToDo
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	group, err := s.getGroup(req.GroupID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(s.authz, group.ID, actorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.validateFields(group, req.AssignedTo, req.PriorityID, req.Deadline, now); err != nil {
		return nil, err
	}

	task := &models.TaskItem{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		AssignedTo:  req.AssignedTo,
		GroupID:     group.ID,
		PriorityID:  req.PriorityID,
		Tags:        req.Tags,
		CreatedBy:   actorID,
	}
	task.CreatedAt = now
	task.ApplyStatus(status, now)

	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if task.AssignedTo != nil && *task.AssignedTo != actorID {
		dispatch(ctx, s.notifier, []uuid.UUID{*task.AssignedTo}, models.NotificationTaskAssigned,
			fmt.Sprintf("You have been assigned task '%s' in '%s'.", task.Title, group.Name), task.ID, models.EntityTypeTask)
	}

	return s.reload(task.ID)
}

// GetByID returns a task the caller can access
func (s *TaskService) GetByID(taskID, actorID uuid.UUID) (*TaskResponse, error) {
	task, err := s.getTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(s.authz, task.GroupID, actorID); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Update replaces the editable fields of a task. Admin only.
func (s *TaskService) Update(ctx context.Context, taskID uuid.UUID, req *UpdateTaskRequest, actorID uuid.UUID) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	task, err := s.getTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(s.authz, task.GroupID, actorID); err != nil {
		return nil, err
	}

	group, err := s.getGroup(task.GroupID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.validateFields(group, req.AssignedTo, req.PriorityID, req.Deadline, now); err != nil {
		return nil, err
	}

	previousAssignee := task.AssignedTo
	task.Title = req.Title
	task.Description = req.Description
	task.Deadline = req.Deadline
	task.AssignedTo = req.AssignedTo
	task.PriorityID = req.PriorityID
	task.Tags = req.Tags
	task.ApplyStatus(req.Status, now)

	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if assigneeChanged(previousAssignee, task.AssignedTo) && *task.AssignedTo != actorID {
		dispatch(ctx, s.notifier, []uuid.UUID{*task.AssignedTo}, models.NotificationTaskAssigned,
			fmt.Sprintf("You have been assigned task '%s' in '%s'.", task.Title, group.Name), task.ID, models.EntityTypeTask)
	}

	return s.reload(task.ID)
}

// UpdateStatus changes only the status. Any member with access may call it.
// An admin's change notifies the assignee; a member's change notifies the
// group's admins and creator.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus, actorID uuid.UUID) (*TaskResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	task, err := s.getTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(s.authz, task.GroupID, actorID); err != nil {
		return nil, err
	}

	if task.Status == status {
		return toTaskResponse(task), nil
	}

	isAdmin, err := s.authz.IsAdmin(task.GroupID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin role: %w", err)
	}

	task.ApplyStatus(status, time.Now().UTC())
	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	if isAdmin {
		if task.AssignedTo != nil {
			dispatch(ctx, s.notifier, recipients(actorID, *task.AssignedTo), models.NotificationTaskStatusUpdated,
				fmt.Sprintf("Task '%s' was moved to %s.", task.Title, status), task.ID, models.EntityTypeTask)
		}
	} else if to, err := s.adminsAndCreator(task.GroupID, actorID); err != nil {
		logger.WithContext(ctx).Warnf("Failed to resolve status update recipients: %v", err)
	} else {
		dispatch(ctx, s.notifier, to, models.NotificationTaskStatusUpdated,
			fmt.Sprintf("Task '%s' was moved to %s by a member.", task.Title, status), task.ID, models.EntityTypeTask)
	}

	return s.reload(task.ID)
}

// Delete removes a task with its attachments. Admin only.
func (s *TaskService) Delete(ctx context.Context, taskID, actorID uuid.UUID) error {
	task, err := s.getTask(taskID)
	if err != nil {
		return err
	}
	if err := requireAdmin(s.authz, task.GroupID, actorID); err != nil {
		return err
	}

	attachments, err := s.attachmentRepo.ListByEntity(models.EntityTypeTask, taskID)
	if err != nil {
		return fmt.Errorf("failed to list attachments: %w", err)
	}

	if err := s.repo.Delete(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	removeStoredFiles(ctx, s.files, attachments)
	return nil
}

// CanAccessTask reports whether the user can access the task's group. A missing task yields false.
func (s *TaskService) CanAccessTask(taskID, userID uuid.UUID) (bool, error) {
	task, err := s.repo.GetByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get task: %w", err)
	}
	return s.authz.CanAccess(task.GroupID, userID)
}

// ListByGroup returns a group's tasks in board order along with per-status counts
func (s *TaskService) ListByGroup(groupID, actorID uuid.UUID, query *TaskQuery) (*GroupTasksResponse, error) {
	if _, err := s.getGroup(groupID); err != nil {
		return nil, err
	}
	if err := requireAccess(s.authz, groupID, actorID); err != nil {
		return nil, err
	}

	filter, err := buildTaskFilter(query, actorID)
	if err != nil {
		return nil, err
	}
	filter.GroupIDs = []uuid.UUID{groupID}

	tasks, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	SortTasks(tasks)

	counts, err := s.repo.CountByStatus(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	statusCounts := make(map[models.TaskStatus]int64, len(models.AllTaskStatuses()))
	for _, status := range models.AllTaskStatuses() {
		statusCounts[status] = counts[status]
	}

	return &GroupTasksResponse{
		Tasks:        toTaskResponses(tasks),
		StatusCounts: statusCounts,
	}, nil
}

// ListForUser returns tasks across every group the caller can access
func (s *TaskService) ListForUser(actorID uuid.UUID, query *TaskQuery) ([]TaskResponse, error) {
	filter, err := buildTaskFilter(query, actorID)
	if err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.GetAccessible(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if len(groups) == 0 {
		return []TaskResponse{}, nil
	}
	for _, g := range groups {
		filter.GroupIDs = append(filter.GroupIDs, g.ID)
	}

	tasks, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	SortTasks(tasks)

	return toTaskResponses(tasks), nil
}

// SortTasks orders tasks for a board: InProgress first by deadline with
// deadline-less tasks last, then ToDo, then the rest. Input order breaks ties.
func SortTasks(tasks []models.TaskItem) {
	rank := func(status models.TaskStatus) int {
		switch status {
		case models.TaskStatusInProgress:
			return 0
		case models.TaskStatusToDo:
			return 1
		default:
			return 2
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := rank(tasks[i].Status), rank(tasks[j].Status)
		if ri != rj {
			return ri < rj
		}
		if ri != 0 {
			return false
		}
		di, dj := tasks[i].Deadline, tasks[j].Deadline
		switch {
		case di == nil || dj == nil:
			return di != nil && dj == nil
		default:
			return di.Before(*dj)
		}
	})
}

func (s *TaskService) validateFields(group *models.Group, assignedTo, priorityID *uuid.UUID, deadline *time.Time, now time.Time) error {
	if assignedTo != nil && *assignedTo != group.CreatedBy {
		if _, err := s.memberRepo.GetActive(group.ID, *assignedTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvalidAssignee
			}
			return fmt.Errorf("failed to check assignee: %w", err)
		}
	}

	if priorityID != nil {
		if _, err := s.priorityRepo.GetByID(*priorityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvalidPriority
			}
			return fmt.Errorf("failed to check priority: %w", err)
		}
	}

	if deadline != nil && !deadline.After(now) {
		return apperrors.ErrDeadlineInPast
	}

	return nil
}

func (s *TaskService) adminsAndCreator(groupID, exclude uuid.UUID) ([]uuid.UUID, error) {
	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}
	admins, err := s.memberRepo.ListActiveByRole(groupID, models.MemberRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(admins)+1)
	for _, admin := range admins {
		ids = append(ids, admin.UserID)
	}
	ids = append(ids, group.CreatedBy)
	return recipients(exclude, ids...), nil
}

func (s *TaskService) getTask(taskID uuid.UUID) (*models.TaskItem, error) {
	task, err := s.repo.GetByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (s *TaskService) getGroup(groupID uuid.UUID) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func (s *TaskService) reload(taskID uuid.UUID) (*TaskResponse, error) {
	task, err := s.getTask(taskID)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

func buildTaskFilter(query *TaskQuery, actorID uuid.UUID) (repository.TaskFilter, error) {
	var filter repository.TaskFilter
	if query == nil {
		return filter, nil
	}

	filter.Search = strings.TrimSpace(query.Search)

	if query.Status != "" {
		status := models.TaskStatus(query.Status)
		if !status.IsValid() {
			return filter, apperrors.ErrInvalidStatus
		}
		filter.Status = &status
	}

	switch query.Assigned {
	case "":
	case "self":
		filter.AssignedTo = &actorID
	case "others":
		filter.NotAssignedTo = &actorID
	default:
		return filter, apperrors.NewValidationError("assigned", "must be 'self' or 'others'")
	}

	return filter, nil
}

func assigneeChanged(before, after *uuid.UUID) bool {
	if after == nil {
		return false
	}
	return before == nil || *before != *after
}

func toTaskResponse(task *models.TaskItem) *TaskResponse {
	resp := &TaskResponse{
		ID:              task.ID,
		GroupID:         task.GroupID,
		Title:           task.Title,
		Description:     task.Description,
		Status:          task.Status,
		Deadline:        task.Deadline,
		AssignedTo:      task.AssignedTo,
		PriorityID:      task.PriorityID,
		Tags:            task.Tags,
		CreatedBy:       task.CreatedBy,
		StatusChangedAt: task.StatusChangedAt,
		CompletedAt:     task.CompletedAt,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
	if task.Group != nil {
		resp.GroupName = task.Group.Name
	}
	if task.Assignee != nil {
		resp.AssigneeName = task.Assignee.Name
	}
	if task.Priority != nil {
		resp.PriorityName = task.Priority.Name
	}
	return resp
}

func toTaskResponses(tasks []models.TaskItem) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *toTaskResponse(&tasks[i])
	}
	return responses
}
