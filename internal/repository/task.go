package repository

import (
	"time"

	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.TaskItem) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task with its assignee, priority and group
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.TaskItem, error) {
	var task models.TaskItem
	err := r.db.Preload("Assignee").Preload("Priority").Preload("Group").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update saves every column of the task
func (r *TaskRepository) Update(task *models.TaskItem) error {
	return r.db.Omit("Group", "Assignee", "Priority").Save(task).Error
}

// Delete removes a task and its attachment rows
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entity_type = ? AND entity_id = ?", models.EntityTypeTask, id).
			Delete(&models.FileAttachment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.TaskItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List returns tasks matching the filter with assignee, priority and group preloaded
func (r *TaskRepository) List(filter TaskFilter) ([]models.TaskItem, error) {
	var tasks []models.TaskItem
	query := r.db.Model(&models.TaskItem{}).
		Preload("Assignee").Preload("Priority").Preload("Group")

	if len(filter.GroupIDs) > 0 {
		query = query.Where("group_id IN ?", filter.GroupIDs)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ? OR tags ILIKE ?)", like, like, like)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.NotAssignedTo != nil {
		query = query.Where("(assigned_to IS NULL OR assigned_to <> ?)", *filter.NotAssignedTo)
	}
	if filter.DeadlineFrom != nil {
		query = query.Where("deadline >= ?", *filter.DeadlineFrom)
	}
	if filter.DeadlineTo != nil {
		query = query.Where("deadline <= ?", *filter.DeadlineTo)
	}

	err := query.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// CountByStatus counts the tasks of a group per status
func (r *TaskRepository) CountByStatus(groupID uuid.UUID) (map[models.TaskStatus]int64, error) {
	type row struct {
		Status models.TaskStatus
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.TaskItem{}).
		Select("status, COUNT(*) AS total").
		Where("group_id = ?", groupID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.TaskStatus]int64, len(rows))
	for _, item := range rows {
		counts[item.Status] = item.Total
	}
	return counts, nil
}

// ListDueBetween returns tasks with a deadline in [from, to), any status
func (r *TaskRepository) ListDueBetween(from, to time.Time) ([]models.TaskItem, error) {
	var tasks []models.TaskItem
	err := r.db.
		Where("deadline IS NOT NULL AND deadline >= ? AND deadline < ?", from, to).
		Order("deadline ASC").
		Find(&tasks).Error
	return tasks, err
}
