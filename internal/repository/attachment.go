package repository

import (
	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentRepository handles database operations for file attachments
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create creates a new attachment row
func (r *AttachmentRepository) Create(attachment *models.FileAttachment) error {
	return r.db.Create(attachment).Error
}

// GetByID retrieves an attachment by ID
func (r *AttachmentRepository) GetByID(id uuid.UUID) (*models.FileAttachment, error) {
	var attachment models.FileAttachment
	err := r.db.First(&attachment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// ListByEntity lists attachments of an entity, oldest first
func (r *AttachmentRepository) ListByEntity(entityType string, entityID uuid.UUID) ([]models.FileAttachment, error) {
	var attachments []models.FileAttachment
	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("uploaded_at ASC").
		Find(&attachments).Error
	return attachments, err
}

// ListForGroupTasks lists attachments of every task in a group
func (r *AttachmentRepository) ListForGroupTasks(groupID uuid.UUID) ([]models.FileAttachment, error) {
	var attachments []models.FileAttachment
	taskIDs := r.db.Model(&models.TaskItem{}).Select("id").Where("group_id = ?", groupID)
	err := r.db.Where("entity_type = ? AND entity_id IN (?)", models.EntityTypeTask, taskIDs).
		Find(&attachments).Error
	return attachments, err
}

// Delete removes an attachment row
func (r *AttachmentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.FileAttachment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
