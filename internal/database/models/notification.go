package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is a message delivered to a single user. Only IsRead changes after creation.
type Notification struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID            uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Message           string     `json:"message" gorm:"size:1000;not null"`
	Type              string     `json:"type" gorm:"size:50;not null"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id,omitempty" gorm:"type:uuid"`
	RelatedEntityType string     `json:"related_entity_type,omitempty" gorm:"size:50"`
	IsRead            bool       `json:"is_read" gorm:"not null;default:false"`
	CreatedAt         time.Time  `json:"created_at" gorm:"index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// BeforeCreate sets the UUID if not already set
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
