package handlers

import (
	"net/http"

	"team-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups and their membership
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// ListGroups lists the caller's groups
// @Summary List my groups
// @Description Groups the authenticated user belongs to, newest first
// @Tags groups
// @Produce json
// @Success 200 {array} service.GroupSummaryResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	groups, err := h.service.Search(userID, &service.GroupSearchRequest{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// SearchGroups filters the caller's groups
// @Summary Search my groups
// @Description Filter the caller's groups by name, creation date and role
// @Tags groups
// @Accept json
// @Produce json
// @Param request body service.GroupSearchRequest true "Search filters"
// @Success 200 {array} service.GroupSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /groups/search [post]
func (h *GroupHandler) SearchGroups(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.GroupSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	groups, err := h.service.Search(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// CreateGroup creates a new group
// @Summary Create a new group
// @Description Create a group with the caller as its first admin
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Group already exists"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	group, err := h.service.Create(c, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup retrieves a group with its members
// @Summary Get group by ID
// @Description Get a group, its active members and whether the caller is an admin
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} service.GroupDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 403 {object} ErrorResponse "No access"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}

	group, err := h.service.GetByID(groupID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroup updates a group
// @Summary Update group
// @Description Rename a group or change its description. Admin only.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param group body service.UpdateGroupRequest true "Group data"
// @Success 200 {object} service.GroupResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}

	var req service.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	group, err := h.service.Update(c, groupID, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteGroup deletes a group
// @Summary Delete group
// @Description Delete a group with its tasks, events and memberships. Admin only.
// @Tags groups
// @Param id path string true "Group ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}

	if err := h.service.Delete(c, groupID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers lists a group's active members
// @Summary List group members
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {array} service.MemberResponse
// @Failure 403 {object} ErrorResponse "No access"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/members [get]
func (h *GroupHandler) ListMembers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}

	members, err := h.service.ListMembers(groupID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// InviteMember adds a user to a group by email
// @Summary Invite member
// @Description Add a registered user to the group by email. Admin only.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body service.InviteMemberRequest true "Invitee email"
// @Success 201 {object} service.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "User or group not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /groups/{id}/members [post]
func (h *GroupHandler) InviteMember(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}

	var req service.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := h.service.Invite(c, groupID, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RemoveMember removes a member from a group
// @Summary Remove member
// @Tags groups
// @Param id path string true "Group ID"
// @Param userId path string true "Member user ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Cannot remove yourself"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /groups/{id}/members/{userId} [delete]
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c, groupID, memberID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeRole changes a member's role
// @Summary Change member role
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param userId path string true "Member user ID"
// @Param request body service.ChangeRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid role or last admin"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /groups/{id}/members/{userId}/role [put]
func (h *GroupHandler) ChangeRole(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}

	var req service.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := h.service.ChangeRole(c, groupID, memberID, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// LeaveGroup removes the caller from a group
// @Summary Leave group
// @Tags groups
// @Param id path string true "Group ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Last admin cannot leave"
// @Failure 404 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /groups/{id}/leave [post]
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}

	if err := h.service.Leave(c, groupID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
