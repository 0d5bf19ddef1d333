package service

import (
	"errors"
	"fmt"

	"team-planner-backend/internal/database/models"
	"team-planner-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthorizationService answers membership questions for a group.
// The group creator counts as an admin even without a membership row.
type AuthorizationService struct {
	groupRepo  repository.GroupRepositoryInterface
	memberRepo repository.GroupMemberRepositoryInterface
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(groupRepo repository.GroupRepositoryInterface, memberRepo repository.GroupMemberRepositoryInterface) *AuthorizationService {
	return &AuthorizationService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
	}
}

// CanAccess reports whether the user is the creator or an active member of the group
func (s *AuthorizationService) CanAccess(groupID, userID uuid.UUID) (bool, error) {
	group, member, err := s.lookup(groupID, userID)
	if err != nil || group == nil {
		return false, err
	}
	return group.CreatedBy == userID || member != nil, nil
}

// IsAdmin reports whether the user is the creator or an active admin of the group
func (s *AuthorizationService) IsAdmin(groupID, userID uuid.UUID) (bool, error) {
	group, member, err := s.lookup(groupID, userID)
	if err != nil || group == nil {
		return false, err
	}
	if group.CreatedBy == userID {
		return true, nil
	}
	return member != nil && member.Role == models.MemberRoleAdmin, nil
}

// lookup returns a nil group when it does not exist and a nil member when the
// user has no active membership.
func (s *AuthorizationService) lookup(groupID, userID uuid.UUID) (*models.Group, *models.GroupMember, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get group: %w", err)
	}

	if group.CreatedBy == userID {
		return group, nil, nil
	}

	member, err := s.memberRepo.GetActive(groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return group, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return group, member, nil
}
