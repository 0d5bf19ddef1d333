package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileAttachment is metadata for a stored file attached to an entity
type FileAttachment struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FileName   string    `json:"file_name" gorm:"size:255;not null"`
	FileURL    string    `json:"file_url" gorm:"size:1000;not null"`
	EntityType string    `json:"entity_type" gorm:"size:50;not null;index:idx_attachments_entity"`
	EntityID   uuid.UUID `json:"entity_id" gorm:"type:uuid;not null;index:idx_attachments_entity"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// TableName returns the table name for FileAttachment
func (FileAttachment) TableName() string {
	return "file_attachments"
}

// BeforeCreate sets the UUID if not already set
func (a *FileAttachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
