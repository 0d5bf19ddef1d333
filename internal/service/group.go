package service

import (
	"context"
	"errors"
	"fmt"
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

const summaryDescriptionLength = 50

// GroupService handles business logic for groups and their memberships
type GroupService struct {
	repo           repository.GroupRepositoryInterface
	memberRepo     repository.GroupMemberRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	attachmentRepo repository.AttachmentRepositoryInterface
	authz          Authorizer
	notifier       Notifier
	files          storage.FileStore
	validator      *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(
	repo repository.GroupRepositoryInterface,
	memberRepo repository.GroupMemberRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	attachmentRepo repository.AttachmentRepositoryInterface,
	authz Authorizer,
	notifier Notifier,
	files storage.FileStore,
	validator *validator.Validate,
) *GroupService {
	return &GroupService{
		repo:           repo,
		memberRepo:     memberRepo,
		userRepo:       userRepo,
		attachmentRepo: attachmentRepo,
		authz:          authz,
		notifier:       notifier,
		files:          files,
		validator:      validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name        string      `json:"name" validate:"required,min=1,max=100"`
	Description string      `json:"description" validate:"max=500"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// GroupSearchRequest filters the caller's groups. Empty fields are not applied.
type GroupSearchRequest struct {
	Name      string `json:"name"`
	CreatedOn string `json:"created_on" example:"2025-01-31"`
	Role      string `json:"role" example:"Admin"`
}

// InviteMemberRequest represents the request to add a user to a group by email
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ChangeRoleRequest represents the request to change a member's role
type ChangeRoleRequest struct {
	Role models.MemberRole `json:"role" validate:"required"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupDetailResponse is a group with its active members and the caller's admin flag
type GroupDetailResponse struct {
	GroupResponse
	Members []MemberResponse `json:"members"`
	IsAdmin bool             `json:"is_admin"`
}

// MemberResponse represents an active group membership
type MemberResponse struct {
	UserID   uuid.UUID         `json:"user_id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Role     models.MemberRole `json:"role"`
	JoinedAt time.Time         `json:"joined_at"`
}

// GroupSummaryResponse is one row of the caller's group list
type GroupSummaryResponse struct {
	GroupID     uuid.UUID         `json:"group_id"`
	GroupName   string            `json:"group_name"`
	Description string            `json:"description"`
	MemberCount int64             `json:"member_count"`
	CreatedAt   time.Time         `json:"created_at"`
	Role        models.MemberRole `json:"role"`
	IsAdmin     bool              `json:"is_admin"`
}

// Create creates a group with the creator as its first admin. Initial member ids
// that do not resolve to users are skipped.
func (s *GroupService) Create(ctx context.Context, req *CreateGroupRequest, actorID uuid.UUID) (*GroupResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if group with same name exists
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing group: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGroupExists
	}

	now := time.Now().UTC()
	members := []models.GroupMember{{
		UserID:   actorID,
		Role:     models.MemberRoleAdmin,
		JoinedAt: now,
	}}

	invitees, err := s.resolveUsers(recipients(actorID, req.MemberIDs...))
	if err != nil {
		return nil, err
	}
	for _, user := range invitees {
		members = append(members, models.GroupMember{
			UserID:   user.ID,
			Role:     models.MemberRoleMember,
			JoinedAt: now,
		})
	}

	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   actorID,
	}

	if err := s.repo.CreateWithMembers(group, members); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrGroupExists
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	dispatch(ctx, s.notifier, []uuid.UUID{actorID}, models.NotificationGroupCreated,
		fmt.Sprintf("You created group '%s'.", group.Name), group.ID, models.EntityTypeGroup)

	invited := make([]uuid.UUID, len(invitees))
	for i, user := range invitees {
		invited[i] = user.ID
	}
	dispatch(ctx, s.notifier, invited, models.NotificationGroupInvite,
		fmt.Sprintf("You have joined '%s'.", group.Name), group.ID, models.EntityTypeGroup)

	return toGroupResponse(group), nil
}

// GetByID returns a group with its members if the caller can access it
func (s *GroupService) GetByID(groupID, actorID uuid.UUID) (*GroupDetailResponse, error) {
	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAccess(groupID, actorID); err != nil {
		return nil, err
	}

	isAdmin, err := s.authz.IsAdmin(groupID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin role: %w", err)
	}

	members, err := s.memberRepo.ListActive(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &GroupDetailResponse{
		GroupResponse: *toGroupResponse(group),
		Members:       toMemberResponses(members),
		IsAdmin:       isAdmin,
	}, nil
}

// Update renames or re-describes a group. Admin only.
func (s *GroupService) Update(ctx context.Context, groupID uuid.UUID, req *UpdateGroupRequest, actorID uuid.UUID) (*GroupResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.getGroup(groupID); err != nil {
		return nil, err
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}

	// Check if another group with same name exists
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing group: %w", err)
	}
	if existing != nil && existing.ID != groupID {
		return nil, apperrors.ErrGroupExists
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}
	if err := s.repo.Update(groupID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrGroupExists
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	updated, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("group_id", groupID.String()).Info("Group updated")
	return toGroupResponse(updated), nil
}

// Delete removes a group together with its memberships, tasks, task attachments
// and events. Active members other than the caller are told afterwards.
func (s *GroupService) Delete(ctx context.Context, groupID, actorID uuid.UUID) error {
	group, err := s.getGroup(groupID)
	if err != nil {
		return err
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return err
	}

	members, err := s.memberRepo.ListActive(groupID)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	attachments, err := s.attachmentRepo.ListForGroupTasks(groupID)
	if err != nil {
		return fmt.Errorf("failed to list attachments: %w", err)
	}

	if err := s.repo.DeleteCascade(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("failed to delete group: %w", err)
	}

	removeStoredFiles(ctx, s.files, attachments)

	ids := make([]uuid.UUID, len(members))
	for i, member := range members {
		ids[i] = member.UserID
	}
	dispatch(ctx, s.notifier, recipients(actorID, ids...), models.NotificationGroupDeleted,
		fmt.Sprintf("Group '%s' has been deleted.", group.Name), group.ID, models.EntityTypeGroup)

	return nil
}

// Search lists the groups the caller created or belongs to, newest first
func (s *GroupService) Search(actorID uuid.UUID, req *GroupSearchRequest) ([]GroupSummaryResponse, error) {
	if req == nil {
		req = &GroupSearchRequest{}
	}

	var createdOn *time.Time
	if req.CreatedOn != "" {
		day, err := time.Parse("2006-01-02", req.CreatedOn)
		if err != nil {
			return nil, apperrors.NewValidationError("created_on", "must be a date in YYYY-MM-DD format")
		}
		createdOn = &day
	}

	role := models.MemberRole(req.Role)
	if role != "" && !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	groups, err := s.repo.GetAccessible(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if len(groups) == 0 {
		return []GroupSummaryResponse{}, nil
	}

	memberships, err := s.memberRepo.ListActiveByUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	roles := make(map[uuid.UUID]models.MemberRole, len(memberships))
	for _, m := range memberships {
		roles[m.GroupID] = m.Role
	}

	ids := make([]uuid.UUID, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	counts, err := s.memberRepo.CountActiveByGroups(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	summaries := make([]GroupSummaryResponse, 0, len(groups))
	for _, g := range groups {
		summary := toGroupSummary(&g, actorID, roles, counts[g.ID])

		if name != "" && !strings.Contains(strings.ToLower(g.Name), name) {
			continue
		}
		if createdOn != nil && g.CreatedAt.UTC().Format("2006-01-02") != createdOn.Format("2006-01-02") {
			continue
		}
		if role != "" && summary.Role != role {
			continue
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// ListMembers lists the active members of a group the caller can access
func (s *GroupService) ListMembers(groupID, actorID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.getGroup(groupID); err != nil {
		return nil, err
	}
	if err := s.requireAccess(groupID, actorID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListActive(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return toMemberResponses(members), nil
}

// Invite adds a registered user to the group as a plain member. Admin only.
func (s *GroupService) Invite(ctx context.Context, groupID uuid.UUID, req *InviteMemberRequest, actorID uuid.UUID) (*MemberResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := s.memberRepo.GetActive(groupID, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMemberExists
	}

	member := &models.GroupMember{
		GroupID:  groupID,
		UserID:   user.ID,
		Role:     models.MemberRoleMember,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.memberRepo.Rejoin(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	member.User = user

	dispatch(ctx, s.notifier, []uuid.UUID{user.ID}, models.NotificationGroupInvite,
		fmt.Sprintf("You have joined '%s'.", group.Name), group.ID, models.EntityTypeGroup)

	return toMemberResponse(member), nil
}

// RemoveMember soft-removes another user's active membership. Admin only.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, memberUserID, actorID uuid.UUID) error {
	group, err := s.getGroup(groupID)
	if err != nil {
		return err
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return err
	}

	target, err := s.getActiveMember(groupID, memberUserID)
	if err != nil {
		return err
	}

	if memberUserID == actorID {
		return apperrors.ErrSelfRemoval
	}

	if err := s.memberRepo.MarkLeft(target.ID, time.Now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	dispatch(ctx, s.notifier, []uuid.UUID{memberUserID}, models.NotificationGroupMemberRemoved,
		fmt.Sprintf("You have been removed from '%s'.", group.Name), group.ID, models.EntityTypeGroup)

	return nil
}

// ChangeRole promotes or demotes an active member. Admin only; the last active
// admin cannot be demoted.
func (s *GroupService) ChangeRole(ctx context.Context, groupID, memberUserID uuid.UUID, req *ChangeRoleRequest, actorID uuid.UUID) (*MemberResponse, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	group, err := s.getGroup(groupID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(groupID, actorID); err != nil {
		return nil, err
	}

	target, err := s.getActiveMember(groupID, memberUserID)
	if err != nil {
		return nil, err
	}
	if target.Role == req.Role {
		return toMemberResponse(target), nil
	}

	if err := s.memberRepo.UpdateRoleUnlessLastAdmin(target.ID, req.Role); err != nil {
		switch {
		case errors.Is(err, repository.ErrLastActiveAdmin):
			return nil, apperrors.ErrLastAdmin
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to change role: %w", err)
	}
	target.Role = req.Role

	dispatch(ctx, s.notifier, recipients(actorID, memberUserID), models.NotificationRoleChanged,
		fmt.Sprintf("Your role in '%s' is now %s.", group.Name, req.Role), group.ID, models.EntityTypeGroup)

	return toMemberResponse(target), nil
}

// Leave ends the caller's own membership. The only active admin must hand over first.
func (s *GroupService) Leave(ctx context.Context, groupID, actorID uuid.UUID) error {
	group, err := s.getGroup(groupID)
	if err != nil {
		return err
	}

	member, err := s.getActiveMember(groupID, actorID)
	if err != nil {
		return err
	}

	if err := s.memberRepo.MarkLeftUnlessLastAdmin(member.ID, time.Now().UTC()); err != nil {
		switch {
		case errors.Is(err, repository.ErrLastActiveAdmin):
			return apperrors.ErrLastAdmin
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to leave group: %w", err)
	}

	admins, err := s.memberRepo.ListActiveByRole(groupID, models.MemberRoleAdmin)
	if err != nil {
		logger.WithContext(ctx).Warnf("Failed to list admins for leave notification: %v", err)
		return nil
	}
	ids := []uuid.UUID{group.CreatedBy}
	for _, admin := range admins {
		ids = append(ids, admin.UserID)
	}

	dispatch(ctx, s.notifier, recipients(actorID, ids...), models.NotificationGroupMemberLeft,
		fmt.Sprintf("%s has left '%s'.", s.displayName(actorID), group.Name), group.ID, models.EntityTypeGroup)

	return nil
}

func (s *GroupService) getGroup(groupID uuid.UUID) (*models.Group, error) {
	group, err := s.repo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func (s *GroupService) getActiveMember(groupID, userID uuid.UUID) (*models.GroupMember, error) {
	member, err := s.memberRepo.GetActive(groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

func (s *GroupService) requireAdmin(groupID, userID uuid.UUID) error {
	return requireAdmin(s.authz, groupID, userID)
}

func (s *GroupService) requireAccess(groupID, userID uuid.UUID) error {
	return requireAccess(s.authz, groupID, userID)
}

func (s *GroupService) resolveUsers(ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve members: %w", err)
	}
	return users, nil
}

func (s *GroupService) displayName(userID uuid.UUID) string {
	user, err := s.userRepo.GetByID(userID)
	if err != nil || user.Name == "" {
		return "A member"
	}
	return user.Name
}

func toGroupResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// toGroupSummary reports the creator as Admin even without a membership row
func toGroupSummary(group *models.Group, actorID uuid.UUID, roles map[uuid.UUID]models.MemberRole, memberCount int64) GroupSummaryResponse {
	role, ok := roles[group.ID]
	if !ok && group.CreatedBy == actorID {
		role = models.MemberRoleAdmin
	}

	return GroupSummaryResponse{
		GroupID:     group.ID,
		GroupName:   group.Name,
		Description: truncate(group.Description, summaryDescriptionLength),
		MemberCount: memberCount,
		CreatedAt:   group.CreatedAt,
		Role:        role,
		IsAdmin:     group.CreatedBy == actorID || role == models.MemberRoleAdmin,
	}
}

func toMemberResponse(member *models.GroupMember) *MemberResponse {
	resp := &MemberResponse{
		UserID:   member.UserID,
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
	if member.User != nil {
		resp.Name = member.User.Name
		resp.Email = member.User.Email
	}
	return resp
}

func toMemberResponses(members []models.GroupMember) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *toMemberResponse(&members[i])
	}
	return responses
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
