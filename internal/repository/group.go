package repository

import (
	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithMembers inserts the group and its initial memberships in one transaction
func (r *GroupRepository) CreateWithMembers(group *models.Group, members []models.GroupMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].GroupID = group.ID
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByName retrieves a group by its exact name
func (r *GroupRepository) GetByName(name string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByIDs retrieves the groups with the given IDs
func (r *GroupRepository) GetByIDs(ids []uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	if len(ids) == 0 {
		return groups, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&groups).Error
	return groups, err
}

// GetAccessible returns groups the user created or actively belongs to, newest first
func (r *GroupRepository) GetAccessible(userID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	active := r.db.Model(&models.GroupMember{}).
		Select("group_id").
		Where("user_id = ? AND left_at IS NULL", userID)
	err := r.db.
		Where("(created_by = ? OR id IN (?))", userID, active).
		Order("created_at DESC").
		Find(&groups).Error
	return groups, err
}

// Update updates a group using a map of updates
func (r *GroupRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Group{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCascade removes memberships, task attachments, tasks, events and finally
// the group itself. Any failure rolls the whole unit back.
func (r *GroupRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}

		taskIDs := tx.Model(&models.TaskItem{}).Select("id").Where("group_id = ?", id)
		if err := tx.Where("entity_type = ? AND entity_id IN (?)", models.EntityTypeTask, taskIDs).
			Delete(&models.FileAttachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.TaskItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.CalendarEvent{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Group{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
