package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/mocks"
	"team-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *GroupHandler
	userID      uuid.UUID
	groupID     uuid.UUID
}

// SetupSuite sets up the test suite
func (suite *GroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService)
	suite.userID = uuid.New()
	suite.groupID = uuid.New()

	suite.router = newTestRouter(suite.userID)
	groups := suite.router.Group("/api/v1/groups")
	{
		groups.GET("", suite.handler.ListGroups)
		groups.POST("", suite.handler.CreateGroup)
		groups.POST("/search", suite.handler.SearchGroups)
		groups.GET("/:id", suite.handler.GetGroup)
		groups.PUT("/:id", suite.handler.UpdateGroup)
		groups.DELETE("/:id", suite.handler.DeleteGroup)
		groups.GET("/:id/members", suite.handler.ListMembers)
		groups.POST("/:id/members", suite.handler.InviteMember)
		groups.DELETE("/:id/members/:userId", suite.handler.RemoveMember)
		groups.PUT("/:id/members/:userId/role", suite.handler.ChangeRole)
		groups.POST("/:id/leave", suite.handler.LeaveGroup)
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupHandlerTestSuite) groupPath(suffix string) string {
	return "/api/v1/groups/" + suite.groupID.String() + suffix
}

func (suite *GroupHandlerTestSuite) TestListGroups() {
	suite.mockService.EXPECT().
		Search(suite.userID, &service.GroupSearchRequest{}).
		Return([]service.GroupSummaryResponse{{GroupID: suite.groupID, GroupName: "Release crew", Role: models.MemberRoleAdmin, IsAdmin: true}}, nil)

	w := doJSON(suite.router, http.MethodGet, "/api/v1/groups", nil)

	suite.Equal(http.StatusOK, w.Code)
	var response []service.GroupSummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 1)
	suite.Equal("Release crew", response[0].GroupName)
	suite.True(response[0].IsAdmin)
}

func (suite *GroupHandlerTestSuite) TestSearchGroups() {
	suite.mockService.EXPECT().
		Search(suite.userID, &service.GroupSearchRequest{Name: "crew", Role: "Member"}).
		Return([]service.GroupSummaryResponse{}, nil)

	w := doJSON(suite.router, http.MethodPost, "/api/v1/groups/search", `{"name":"crew","role":"Member"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *GroupHandlerTestSuite) TestSearchGroups_InvalidDate() {
	suite.mockService.EXPECT().
		Search(suite.userID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("created_on", "must be YYYY-MM-DD"))

	w := doJSON(suite.router, http.MethodPost, "/api/v1/groups/search", `{"created_on":"31/01/2025"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	request := service.CreateGroupRequest{Name: "Release crew", Description: "Ships things"}
	expected := &service.GroupResponse{ID: suite.groupID, Name: "Release crew", CreatedBy: suite.userID, CreatedAt: time.Now().UTC()}

	suite.mockService.EXPECT().
		Create(gomock.Any(), &request, suite.userID).
		Return(expected, nil)

	w := doJSON(suite.router, http.MethodPost, "/api/v1/groups", request)

	suite.Equal(http.StatusCreated, w.Code)
	var response service.GroupResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(suite.groupID, response.ID)
	suite.Equal(suite.userID, response.CreatedBy)
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_Errors() {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed body", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "duplicate name", body: `{"name":"Release crew"}`, err: apperrors.ErrGroupExists, wantStatus: http.StatusConflict},
		{name: "store failure", body: `{"name":"Release crew"}`, err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			if tt.err != nil {
				suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), suite.userID).Return(nil, tt.err)
			}

			w := doJSON(suite.router, http.MethodPost, "/api/v1/groups", tt.body)

			suite.Equal(tt.wantStatus, w.Code)
			suite.NotEmpty(errorMessage(w))
		})
	}
}

func (suite *GroupHandlerTestSuite) TestGetGroup() {
	detail := &service.GroupDetailResponse{
		GroupResponse: service.GroupResponse{ID: suite.groupID, Name: "Release crew"},
		Members:       []service.MemberResponse{{UserID: suite.userID, Role: models.MemberRoleAdmin}},
		IsAdmin:       true,
	}
	suite.mockService.EXPECT().GetByID(suite.groupID, suite.userID).Return(detail, nil)

	w := doJSON(suite.router, http.MethodGet, suite.groupPath(""), nil)

	suite.Equal(http.StatusOK, w.Code)
	var response service.GroupDetailResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(suite.groupID, response.ID)
	suite.Len(response.Members, 1)
	suite.True(response.IsAdmin)
}

func (suite *GroupHandlerTestSuite) TestGetGroup_Errors() {
	suite.Run("invalid id", func() {
		w := doJSON(suite.router, http.MethodGet, "/api/v1/groups/not-a-uuid", nil)

		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal("Invalid group ID", errorMessage(w))
	})

	suite.Run("not found", func() {
		suite.mockService.EXPECT().GetByID(suite.groupID, suite.userID).Return(nil, apperrors.ErrGroupNotFound)

		w := doJSON(suite.router, http.MethodGet, suite.groupPath(""), nil)

		suite.Equal(http.StatusNotFound, w.Code)
	})

	suite.Run("no access", func() {
		suite.mockService.EXPECT().GetByID(suite.groupID, suite.userID).Return(nil, apperrors.ErrNoGroupAccess)

		w := doJSON(suite.router, http.MethodGet, suite.groupPath(""), nil)

		suite.Equal(http.StatusForbidden, w.Code)
	})
}

func (suite *GroupHandlerTestSuite) TestUpdateGroup() {
	request := service.UpdateGroupRequest{Name: "Renamed"}
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.groupID, &request, suite.userID).
		Return(&service.GroupResponse{ID: suite.groupID, Name: "Renamed"}, nil)

	w := doJSON(suite.router, http.MethodPut, suite.groupPath(""), request)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Renamed")
}

func (suite *GroupHandlerTestSuite) TestUpdateGroup_NotAdmin() {
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.groupID, gomock.Any(), suite.userID).
		Return(nil, apperrors.ErrNotGroupAdmin)

	w := doJSON(suite.router, http.MethodPut, suite.groupPath(""), `{"name":"Renamed"}`)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal(apperrors.ErrNotGroupAdmin.Error(), errorMessage(w))
}

func (suite *GroupHandlerTestSuite) TestDeleteGroup() {
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.groupID, suite.userID).Return(nil)

	w := doJSON(suite.router, http.MethodDelete, suite.groupPath(""), nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *GroupHandlerTestSuite) TestListMembers() {
	suite.mockService.EXPECT().
		ListMembers(suite.groupID, suite.userID).
		Return([]service.MemberResponse{{UserID: suite.userID, Name: "Mia"}, {UserID: uuid.New(), Name: "Noah"}}, nil)

	w := doJSON(suite.router, http.MethodGet, suite.groupPath("/members"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var response []service.MemberResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 2)
}

func (suite *GroupHandlerTestSuite) TestInviteMember() {
	invitee := uuid.New()
	suite.mockService.EXPECT().
		Invite(gomock.Any(), suite.groupID, &service.InviteMemberRequest{Email: "noah@example.com"}, suite.userID).
		Return(&service.MemberResponse{UserID: invitee, Email: "noah@example.com", Role: models.MemberRoleMember}, nil)

	w := doJSON(suite.router, http.MethodPost, suite.groupPath("/members"), `{"email":"noah@example.com"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), invitee.String())
}

func (suite *GroupHandlerTestSuite) TestInviteMember_Errors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown email", err: apperrors.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "already member", err: apperrors.ErrMemberExists, wantStatus: http.StatusConflict},
		{name: "not admin", err: apperrors.ErrNotGroupAdmin, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockService.EXPECT().Invite(gomock.Any(), suite.groupID, gomock.Any(), suite.userID).Return(nil, tt.err)

			w := doJSON(suite.router, http.MethodPost, suite.groupPath("/members"), `{"email":"noah@example.com"}`)

			suite.Equal(tt.wantStatus, w.Code)
		})
	}
}

func (suite *GroupHandlerTestSuite) TestRemoveMember() {
	memberID := uuid.New()

	suite.Run("removed", func() {
		suite.mockService.EXPECT().RemoveMember(gomock.Any(), suite.groupID, memberID, suite.userID).Return(nil)

		w := doJSON(suite.router, http.MethodDelete, suite.groupPath("/members/"+memberID.String()), nil)

		suite.Equal(http.StatusNoContent, w.Code)
	})

	suite.Run("self removal", func() {
		suite.mockService.EXPECT().RemoveMember(gomock.Any(), suite.groupID, suite.userID, suite.userID).Return(apperrors.ErrSelfRemoval)

		w := doJSON(suite.router, http.MethodDelete, suite.groupPath("/members/"+suite.userID.String()), nil)

		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal(apperrors.ErrSelfRemoval.Error(), errorMessage(w))
	})

	suite.Run("invalid user id", func() {
		w := doJSON(suite.router, http.MethodDelete, suite.groupPath("/members/nope"), nil)

		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal("Invalid user ID", errorMessage(w))
	})
}

func (suite *GroupHandlerTestSuite) TestChangeRole() {
	memberID := uuid.New()

	suite.Run("promoted", func() {
		suite.mockService.EXPECT().
			ChangeRole(gomock.Any(), suite.groupID, memberID, &service.ChangeRoleRequest{Role: models.MemberRoleAdmin}, suite.userID).
			Return(&service.MemberResponse{UserID: memberID, Role: models.MemberRoleAdmin}, nil)

		w := doJSON(suite.router, http.MethodPut, suite.groupPath("/members/"+memberID.String()+"/role"), `{"role":"Admin"}`)

		suite.Equal(http.StatusOK, w.Code)
		suite.Contains(w.Body.String(), `"role":"Admin"`)
	})

	suite.Run("last admin demotion", func() {
		suite.mockService.EXPECT().
			ChangeRole(gomock.Any(), suite.groupID, suite.userID, gomock.Any(), suite.userID).
			Return(nil, apperrors.ErrLastAdmin)

		w := doJSON(suite.router, http.MethodPut, suite.groupPath("/members/"+suite.userID.String()+"/role"), `{"role":"Member"}`)

		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal(apperrors.ErrLastAdmin.Error(), errorMessage(w))
	})
}

func (suite *GroupHandlerTestSuite) TestLeaveGroup() {
	suite.Run("left", func() {
		suite.mockService.EXPECT().Leave(gomock.Any(), suite.groupID, suite.userID).Return(nil)

		w := doJSON(suite.router, http.MethodPost, suite.groupPath("/leave"), nil)

		suite.Equal(http.StatusNoContent, w.Code)
	})

	suite.Run("last admin", func() {
		suite.mockService.EXPECT().Leave(gomock.Any(), suite.groupID, suite.userID).Return(apperrors.ErrLastAdmin)

		w := doJSON(suite.router, http.MethodPost, suite.groupPath("/leave"), nil)

		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *GroupHandlerTestSuite) TestUnauthenticated() {
	router := newTestRouter(uuid.Nil)
	router.GET("/api/v1/groups", suite.handler.ListGroups)

	w := doJSON(router, http.MethodGet, "/api/v1/groups", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// TestGroupHandlerTestSuite runs the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
