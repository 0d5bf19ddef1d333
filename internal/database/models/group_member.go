package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupMember links a user to a group. A nil LeftAt marks an active membership;
// leaving or being removed sets LeftAt instead of deleting the row.
type GroupMember struct {
	BaseModel
	GroupID  uuid.UUID  `json:"group_id" gorm:"type:uuid;not null;index:idx_group_members_pair"`
	UserID   uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_group_members_pair"`
	Role     MemberRole `json:"role" gorm:"type:varchar(20);not null;default:'Member'"`
	JoinedAt time.Time  `json:"joined_at" gorm:"not null"`
	LeftAt   *time.Time `json:"left_at,omitempty" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}

// IsActive reports whether the membership has not ended
func (m *GroupMember) IsActive() bool {
	return m.LeftAt == nil
}
