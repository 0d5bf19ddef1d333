package repository

import (
	"errors"
	"time"

	"team-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrLastActiveAdmin is returned when a change would leave a group without an active admin
var ErrLastActiveAdmin = errors.New("group must keep at least one active admin")

// GroupMemberRepository handles database operations for group memberships
type GroupMemberRepository struct {
	db *gorm.DB
}

// NewGroupMemberRepository creates a new group member repository
func NewGroupMemberRepository(db *gorm.DB) *GroupMemberRepository {
	return &GroupMemberRepository{db: db}
}

// GetActive retrieves the active membership of a user in a group
func (r *GroupMemberRepository) GetActive(groupID, userID uuid.UUID) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.
		Where("group_id = ? AND user_id = ? AND left_at IS NULL", groupID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListActive lists active memberships of a group with their users
func (r *GroupMemberRepository) ListActive(groupID uuid.UUID) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.Preload("User").
		Where("group_id = ? AND left_at IS NULL", groupID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

// ListActiveByRole lists active memberships of a group holding the given role
func (r *GroupMemberRepository) ListActiveByRole(groupID uuid.UUID, role models.MemberRole) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.
		Where("group_id = ? AND role = ? AND left_at IS NULL", groupID, role).
		Find(&members).Error
	return members, err
}

// ListActiveByUser lists every active membership of a user
func (r *GroupMemberRepository) ListActiveByUser(userID uuid.UUID) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.Where("user_id = ? AND left_at IS NULL", userID).Find(&members).Error
	return members, err
}

// CountActiveByGroups counts active members per group
func (r *GroupMemberRepository) CountActiveByGroups(groupIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(groupIDs))
	if len(groupIDs) == 0 {
		return counts, nil
	}

	type row struct {
		GroupID uuid.UUID
		Total   int64
	}
	var rows []row
	err := r.db.Model(&models.GroupMember{}).
		Select("group_id, COUNT(*) AS total").
		Where("group_id IN ? AND left_at IS NULL", groupIDs).
		Group("group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, item := range rows {
		counts[item.GroupID] = item.Total
	}
	return counts, nil
}

// Rejoin hard-deletes stale (left) rows for the pair and inserts the fresh membership
func (r *GroupMemberRepository) Rejoin(member *models.GroupMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("group_id = ? AND user_id = ? AND left_at IS NOT NULL", member.GroupID, member.UserID).
			Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Create(member).Error
	})
}

// MarkLeft soft-deletes a membership
func (r *GroupMemberRepository) MarkLeft(id uuid.UUID, at time.Time) error {
	result := r.db.Model(&models.GroupMember{}).
		Where("id = ? AND left_at IS NULL", id).
		Update("left_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkLeftUnlessLastAdmin soft-deletes a membership, refusing when it is the
// group's only active admin row. Admin rows are locked for the check.
func (r *GroupMemberRepository) MarkLeftUnlessLastAdmin(id uuid.UUID, at time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		member, err := lockActive(tx, id)
		if err != nil {
			return err
		}
		if member.Role == models.MemberRoleAdmin {
			if err := ensureAnotherAdmin(tx, member); err != nil {
				return err
			}
		}
		return tx.Model(&models.GroupMember{}).Where("id = ?", id).Update("left_at", at).Error
	})
}

// UpdateRoleUnlessLastAdmin changes a membership role, refusing to demote the last active admin
func (r *GroupMemberRepository) UpdateRoleUnlessLastAdmin(id uuid.UUID, role models.MemberRole) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		member, err := lockActive(tx, id)
		if err != nil {
			return err
		}
		if member.Role == models.MemberRoleAdmin && role != models.MemberRoleAdmin {
			if err := ensureAnotherAdmin(tx, member); err != nil {
				return err
			}
		}
		return tx.Model(&models.GroupMember{}).Where("id = ?", id).Update("role", role).Error
	})
}

func lockActive(tx *gorm.DB, id uuid.UUID) (*models.GroupMember, error) {
	var member models.GroupMember
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND left_at IS NULL", id).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func ensureAnotherAdmin(tx *gorm.DB, member *models.GroupMember) error {
	var admins []models.GroupMember
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("group_id = ? AND role = ? AND left_at IS NULL", member.GroupID, models.MemberRoleAdmin).
		Find(&admins).Error
	if err != nil {
		return err
	}
	if len(admins) <= 1 {
		return ErrLastActiveAdmin
	}
	return nil
}
