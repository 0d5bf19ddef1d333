package handlers

import (
	"context"
	"encoding/json"
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

// TaskHandlerTestSuite tests the TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockTaskServiceInterface
	userID      uuid.UUID
	taskID      uuid.UUID
}

func (suite *TaskHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.taskID = uuid.New()
	handler := NewTaskHandler(suite.mockService)

	suite.router = newTestRouter(suite.userID)
	v1 := suite.router.Group("/api/v1")
	{
		v1.GET("/groups/:id/tasks", handler.ListGroupTasks)
		v1.GET("/tasks", handler.ListMyTasks)
		v1.POST("/tasks", handler.CreateTask)
		v1.GET("/tasks/:id", handler.GetTask)
		v1.PUT("/tasks/:id", handler.UpdateTask)
		v1.PATCH("/tasks/:id/status", handler.UpdateTaskStatus)
		v1.DELETE("/tasks/:id", handler.DeleteTask)
	}
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) taskPath(suffix string) string {
	return "/api/v1/tasks/" + suite.taskID.String() + suffix
}

func (suite *TaskHandlerTestSuite) TestListMyTasks() {
	suite.mockService.EXPECT().
		ListForUser(suite.userID, &service.TaskQuery{Search: "release", Status: "InProgress", Assigned: "self"}).
		Return([]service.TaskResponse{{ID: suite.taskID, Title: "Ship release", Status: models.TaskStatusInProgress}}, nil)

	w := doJSON(suite.router, http.MethodGet, "/api/v1/tasks?search=release&status=InProgress&assigned=self", nil)

	suite.Equal(http.StatusOK, w.Code)
	var response []service.TaskResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 1)
	suite.Equal("Ship release", response[0].Title)
}

func (suite *TaskHandlerTestSuite) TestListMyTasks_InvalidFilter() {
	suite.mockService.EXPECT().
		ListForUser(suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidStatus)

	w := doJSON(suite.router, http.MethodGet, "/api/v1/tasks?status=Sleeping", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListGroupTasks() {
	groupID := uuid.New()
	suite.mockService.EXPECT().
		ListByGroup(groupID, suite.userID, &service.TaskQuery{}).
		Return(&service.GroupTasksResponse{
			Tasks: []service.TaskResponse{{ID: suite.taskID}},
			StatusCounts: map[models.TaskStatus]int64{
				models.TaskStatusToDo: 1, models.TaskStatusInProgress: 0, models.TaskStatusDone: 0, models.TaskStatusBlocked: 0,
			},
		}, nil)

	w := doJSON(suite.router, http.MethodGet, "/api/v1/groups/"+groupID.String()+"/tasks", nil)

	suite.Equal(http.StatusOK, w.Code)
	var response service.GroupTasksResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Tasks, 1)
	suite.Len(response.StatusCounts, 4)
	suite.Equal(int64(1), response.StatusCounts[models.TaskStatusToDo])
}

func (suite *TaskHandlerTestSuite) TestCreateTask() {
	groupID := uuid.New()
	deadline := time.Date(2030, 3, 1, 14, 0, 0, 0, time.UTC)

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), suite.userID).
		DoAndReturn(func(_ context.Context, req *service.CreateTaskRequest, _ uuid.UUID) (*service.TaskResponse, error) {
			suite.Equal(groupID, req.GroupID)
			suite.Equal("Ship release", req.Title)
			suite.True(deadline.Equal(*req.Deadline))
			return &service.TaskResponse{ID: suite.taskID, GroupID: groupID, Title: req.Title, Status: models.TaskStatusToDo}, nil
		})

	body := map[string]interface{}{"group_id": groupID, "title": "Ship release", "deadline": deadline}
	w := doJSON(suite.router, http.MethodPost, "/api/v1/tasks", body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), suite.taskID.String())
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Errors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not admin", err: apperrors.ErrNotGroupAdmin, wantStatus: http.StatusForbidden},
		{name: "deadline in past", err: apperrors.ErrDeadlineInPast, wantStatus: http.StatusBadRequest},
		{name: "invalid assignee", err: apperrors.ErrInvalidAssignee, wantStatus: http.StatusBadRequest},
		{name: "group missing", err: apperrors.ErrGroupNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), suite.userID).Return(nil, tt.err)

			w := doJSON(suite.router, http.MethodPost, "/api/v1/tasks", `{"title":"Ship release"}`)

			suite.Equal(tt.wantStatus, w.Code)
			suite.Equal(tt.err.Error(), errorMessage(w))
		})
	}
}

func (suite *TaskHandlerTestSuite) TestGetTask() {
	suite.mockService.EXPECT().
		GetByID(suite.taskID, suite.userID).
		Return(&service.TaskResponse{ID: suite.taskID, Title: "Ship release"}, nil)

	w := doJSON(suite.router, http.MethodGet, suite.taskPath(""), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Ship release")
}

func (suite *TaskHandlerTestSuite) TestGetTask_InvalidID() {
	w := doJSON(suite.router, http.MethodGet, "/api/v1/tasks/123", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid task ID", errorMessage(w))
}

func (suite *TaskHandlerTestSuite) TestUpdateTask() {
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.taskID, &service.UpdateTaskRequest{Title: "Ship it", Status: models.TaskStatusBlocked}, suite.userID).
		Return(&service.TaskResponse{ID: suite.taskID, Title: "Ship it", Status: models.TaskStatusBlocked}, nil)

	w := doJSON(suite.router, http.MethodPut, suite.taskPath(""), `{"title":"Ship it","status":"Blocked"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"Blocked"`)
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskStatus() {
	suite.Run("member moves task", func() {
		suite.mockService.EXPECT().
			UpdateStatus(gomock.Any(), suite.taskID, models.TaskStatusDone, suite.userID).
			Return(&service.TaskResponse{ID: suite.taskID, Status: models.TaskStatusDone}, nil)

		w := doJSON(suite.router, http.MethodPatch, suite.taskPath("/status"), `{"status":"Done"}`)

		suite.Equal(http.StatusOK, w.Code)
	})

	suite.Run("no access", func() {
		suite.mockService.EXPECT().
			UpdateStatus(gomock.Any(), suite.taskID, models.TaskStatusToDo, suite.userID).
			Return(nil, apperrors.ErrNoGroupAccess)

		w := doJSON(suite.router, http.MethodPatch, suite.taskPath("/status"), `{"status":"ToDo"}`)

		suite.Equal(http.StatusForbidden, w.Code)
	})

	suite.Run("malformed body", func() {
		w := doJSON(suite.router, http.MethodPatch, suite.taskPath("/status"), `status=Done`)

		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	suite.Run("deleted", func() {
		suite.mockService.EXPECT().Delete(gomock.Any(), suite.taskID, suite.userID).Return(nil)

		w := doJSON(suite.router, http.MethodDelete, suite.taskPath(""), nil)

		suite.Equal(http.StatusNoContent, w.Code)
	})

	suite.Run("not found", func() {
		suite.mockService.EXPECT().Delete(gomock.Any(), suite.taskID, suite.userID).Return(apperrors.ErrTaskNotFound)

		w := doJSON(suite.router, http.MethodDelete, suite.taskPath(""), nil)

		suite.Equal(http.StatusNotFound, w.Code)
	})
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
