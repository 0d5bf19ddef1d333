package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/mocks"
	"team-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTaskRepo       *mocks.MockTaskRepositoryInterface
	mockGroupRepo      *mocks.MockGroupRepositoryInterface
	mockMemberRepo     *mocks.MockGroupMemberRepositoryInterface
	mockPriorityRepo   *mocks.MockPriorityRepositoryInterface
	mockAttachmentRepo *mocks.MockAttachmentRepositoryInterface
	mockAuthz          *mocks.MockAuthorizer
	mockNotifier       *mocks.MockNotifier
	taskService        *service.TaskService

	ctx      context.Context
	group    *models.Group
	adminID  uuid.UUID
	memberID uuid.UUID
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockGroupMemberRepositoryInterface(suite.ctrl)
	suite.mockPriorityRepo = mocks.NewMockPriorityRepositoryInterface(suite.ctrl)
	suite.mockAttachmentRepo = mocks.NewMockAttachmentRepositoryInterface(suite.ctrl)
	suite.mockAuthz = mocks.NewMockAuthorizer(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)

	suite.taskService = service.NewTaskService(
		suite.mockTaskRepo,
		suite.mockGroupRepo,
		suite.mockMemberRepo,
		suite.mockPriorityRepo,
		suite.mockAttachmentRepo,
		suite.mockAuthz,
		suite.mockNotifier,
		nil,
		validator.New(),
	)

	suite.ctx = context.Background()
	suite.adminID = uuid.New()
	suite.memberID = uuid.New()
	suite.group = &models.Group{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Eng",
		CreatedBy: suite.adminID,
	}
}

func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskServiceTestSuite) task(status models.TaskStatus) *models.TaskItem {
	deadline := time.Now().Add(48 * time.Hour)
	return &models.TaskItem{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Title:           "Write docs",
		Status:          status,
		Deadline:        &deadline,
		AssignedTo:      &suite.memberID,
		GroupID:         suite.group.ID,
		CreatedBy:       suite.adminID,
		StatusChangedAt: time.Now().Add(-24 * time.Hour),
	}
}

func (suite *TaskServiceTestSuite) captureNotifications(times int) *[]service.NotificationInput {
	sent := &[]service.NotificationInput{}
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.NotificationInput) error {
			*sent = append(*sent, in)
			return nil
		}).
		Times(times)
	return sent
}

// expectCreate stores the created task so the follow-up reload returns it
func (suite *TaskServiceTestSuite) expectCreate() **models.TaskItem {
	var created *models.TaskItem
	suite.mockTaskRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(t *models.TaskItem) error {
			t.ID = uuid.New()
			created = t
			return nil
		}).
		Times(1)
	suite.mockTaskRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.TaskItem, error) {
			return created, nil
		}).
		Times(1)
	return &created
}

func (suite *TaskServiceTestSuite) TestCreate_AssignsAndNotifies() {
	deadline := time.Now().Add(2 * time.Hour)
	req := &service.CreateTaskRequest{
		GroupID:    suite.group.ID,
		Title:      "Write docs",
		Deadline:   &deadline,
		AssignedTo: &suite.memberID,
	}

	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetActive(suite.group.ID, suite.memberID).Return(&models.GroupMember{}, nil).Times(1)
	created := suite.expectCreate()
	sent := suite.captureNotifications(1)

	resp, err := suite.taskService.Create(suite.ctx, req, suite.adminID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusToDo, resp.Status)
	assert.Nil(suite.T(), resp.CompletedAt)
	assert.False(suite.T(), (*created).StatusChangedAt.IsZero())
	assert.Equal(suite.T(), suite.adminID, (*created).CreatedBy)

	assert.Equal(suite.T(), suite.memberID, (*sent)[0].UserID)
	assert.Equal(suite.T(), models.NotificationTaskAssigned, (*sent)[0].Type)
	assert.Equal(suite.T(), models.EntityTypeTask, (*sent)[0].RelatedEntityType)
}

func (suite *TaskServiceTestSuite) TestCreate_DoneSetsCompletedAt() {
	req := &service.CreateTaskRequest{GroupID: suite.group.ID, Title: "Already shipped", Status: models.TaskStatusDone}

	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	suite.expectCreate()

	resp, err := suite.taskService.Create(suite.ctx, req, suite.adminID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusDone, resp.Status)
	assert.NotNil(suite.T(), resp.CompletedAt)
}

func (suite *TaskServiceTestSuite) TestCreate_SelfAssignedDoesNotNotify() {
	req := &service.CreateTaskRequest{GroupID: suite.group.ID, Title: "Mine", AssignedTo: &suite.adminID}

	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	suite.expectCreate()
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.taskService.Create(suite.ctx, req, suite.adminID)

	require.NoError(suite.T(), err)
}

func (suite *TaskServiceTestSuite) TestCreate_NotAdmin() {
	req := &service.CreateTaskRequest{GroupID: suite.group.ID, Title: "Nope"}

	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.memberID).Return(false, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Create(gomock.Any()).Times(0)

	_, err := suite.taskService.Create(suite.ctx, req, suite.memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotGroupAdmin)
}

func (suite *TaskServiceTestSuite) TestCreate_FieldValidation() {
	past := time.Now().Add(-time.Minute)
	stranger := uuid.New()
	priorityID := uuid.New()

	testCases := []struct {
		name    string
		req     *service.CreateTaskRequest
		setup   func()
		wantErr error
	}{
		{
			name:    "deadline in the past",
			req:     &service.CreateTaskRequest{GroupID: suite.group.ID, Title: "Late", Deadline: &past},
			wantErr: apperrors.ErrDeadlineInPast,
		},
		{
			name: "assignee not an active member",
			req:  &service.CreateTaskRequest{GroupID: suite.group.ID, Title: "Who", AssignedTo: &stranger},
			setup: func() {
				suite.mockMemberRepo.EXPECT().GetActive(suite.group.ID, stranger).Return(nil, gorm.ErrRecordNotFound).Times(1)
			},
			wantErr: apperrors.ErrInvalidAssignee,
		},
		{
			name: "unknown priority",
			req:  &service.CreateTaskRequest{GroupID: suite.group.ID, Title: "Rank", PriorityID: &priorityID},
			setup: func() {
				suite.mockPriorityRepo.EXPECT().GetByID(priorityID).Return(nil, gorm.ErrRecordNotFound).Times(1)
			},
			wantErr: apperrors.ErrInvalidPriority,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
			suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
			if tc.setup != nil {
				tc.setup()
			}

			_, err := suite.taskService.Create(suite.ctx, tc.req, suite.adminID)

			assert.ErrorIs(suite.T(), err, tc.wantErr)
		})
	}
}

func (suite *TaskServiceTestSuite) TestCreate_InvalidStatus() {
	_, err := suite.taskService.Create(suite.ctx, &service.CreateTaskRequest{GroupID: suite.group.ID, Title: "x", Status: "Archived"}, suite.adminID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *TaskServiceTestSuite) TestUpdateStatus_MemberNotifiesAdminsAndCreator() {
	task := suite.task(models.TaskStatusToDo)
	previousChange := task.StatusChangedAt
	otherAdmin := uuid.New()

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(2)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, suite.memberID).Return(true, nil).Times(1)
	suite.mockTaskRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(t *models.TaskItem) error {
			assert.Equal(suite.T(), models.TaskStatusInProgress, t.Status)
			assert.True(suite.T(), t.StatusChangedAt.After(previousChange))
			assert.Nil(suite.T(), t.CompletedAt)
			return nil
		}).
		Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.memberID).Return(false, nil).Times(1)
	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		ListActiveByRole(suite.group.ID, models.MemberRoleAdmin).
		Return([]models.GroupMember{{UserID: suite.adminID}, {UserID: otherAdmin}}, nil).
		Times(1)
	sent := suite.captureNotifications(2)

	resp, err := suite.taskService.UpdateStatus(suite.ctx, task.ID, models.TaskStatusInProgress, suite.memberID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusInProgress, resp.Status)

	var to []uuid.UUID
	for _, n := range *sent {
		to = append(to, n.UserID)
		assert.Equal(suite.T(), models.NotificationTaskStatusUpdated, n.Type)
	}
	assert.ElementsMatch(suite.T(), []uuid.UUID{suite.adminID, otherAdmin}, to)
	assert.NotContains(suite.T(), to, suite.memberID)
}

func (suite *TaskServiceTestSuite) TestUpdateStatus_AdminNotifiesAssignee() {
	task := suite.task(models.TaskStatusInProgress)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(2)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	sent := suite.captureNotifications(1)

	resp, err := suite.taskService.UpdateStatus(suite.ctx, task.ID, models.TaskStatusDone, suite.adminID)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.CompletedAt)
	assert.Equal(suite.T(), suite.memberID, (*sent)[0].UserID)
}

func (suite *TaskServiceTestSuite) TestUpdateStatus_UnchangedIsNoop() {
	task := suite.task(models.TaskStatusToDo)
	previousChange := task.StatusChangedAt

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, suite.memberID).Return(true, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any()).Times(0)

	resp, err := suite.taskService.UpdateStatus(suite.ctx, task.ID, models.TaskStatusToDo, suite.memberID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), previousChange, resp.StatusChangedAt)
}

func (suite *TaskServiceTestSuite) TestUpdateStatus_UnchangedDoneReturnsStoredTimestamps() {
	task := suite.task(models.TaskStatusDone)
	completedAt := time.Now().UTC().Add(-48 * time.Hour)
	updatedAt := completedAt
	task.CompletedAt = &completedAt
	task.UpdatedAt = updatedAt

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, suite.memberID).Return(true, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any()).Times(0)

	resp, err := suite.taskService.UpdateStatus(suite.ctx, task.ID, models.TaskStatusDone, suite.memberID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.CompletedAt)
	assert.True(suite.T(), completedAt.Equal(*resp.CompletedAt))
	assert.True(suite.T(), updatedAt.Equal(resp.UpdatedAt))
}

func (suite *TaskServiceTestSuite) TestUpdateStatus_RoleLookupFailsBeforeWrite() {
	task := suite.task(models.TaskStatusToDo)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, suite.memberID).Return(true, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.memberID).Return(false, errors.New("db down")).Times(1)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any()).Times(0)

	_, err := suite.taskService.UpdateStatus(suite.ctx, task.ID, models.TaskStatusDone, suite.memberID)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to check admin role")
}

func (suite *TaskServiceTestSuite) TestUpdateStatus_RecipientLookupFailureStillSucceeds() {
	task := suite.task(models.TaskStatusToDo)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(2)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, suite.memberID).Return(true, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.memberID).Return(false, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		ListActiveByRole(suite.group.ID, models.MemberRoleAdmin).
		Return(nil, errors.New("db down")).
		Times(1)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	resp, err := suite.taskService.UpdateStatus(suite.ctx, task.ID, models.TaskStatusInProgress, suite.memberID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TaskStatusInProgress, resp.Status)
}

func (suite *TaskServiceTestSuite) TestUpdateStatus_NoAccess() {
	task := suite.task(models.TaskStatusToDo)
	outsider := uuid.New()

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, outsider).Return(false, nil).Times(1)

	_, err := suite.taskService.UpdateStatus(suite.ctx, task.ID, models.TaskStatusDone, outsider)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoGroupAccess)
}

func (suite *TaskServiceTestSuite) TestUpdateStatus_TaskNotFound() {
	id := uuid.New()
	suite.mockTaskRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.taskService.UpdateStatus(suite.ctx, id, models.TaskStatusDone, suite.memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestUpdate_ReassignNotifiesNewAssignee() {
	task := suite.task(models.TaskStatusDone)
	completedAt := time.Now().Add(-time.Hour)
	task.CompletedAt = &completedAt
	newAssignee := uuid.New()
	deadline := time.Now().Add(time.Hour)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(2)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetActive(suite.group.ID, newAssignee).Return(&models.GroupMember{}, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	sent := suite.captureNotifications(1)

	resp, err := suite.taskService.Update(suite.ctx, task.ID, &service.UpdateTaskRequest{
		Title:      "Write better docs",
		Status:     models.TaskStatusInProgress,
		Deadline:   &deadline,
		AssignedTo: &newAssignee,
	}, suite.adminID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Write better docs", resp.Title)
	assert.Nil(suite.T(), resp.CompletedAt, "leaving Done clears the completion time")
	assert.Equal(suite.T(), newAssignee, (*sent)[0].UserID)
}

func (suite *TaskServiceTestSuite) TestUpdate_SameAssigneeDoesNotNotify() {
	task := suite.task(models.TaskStatusToDo)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(2)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetActive(suite.group.ID, suite.memberID).Return(&models.GroupMember{}, nil).Times(1)
	var saved *models.TaskItem
	suite.mockTaskRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(t *models.TaskItem) error {
			saved = t
			return nil
		}).
		Times(1)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)
	previousChange := task.StatusChangedAt

	_, err := suite.taskService.Update(suite.ctx, task.ID, &service.UpdateTaskRequest{
		Title:      "Write docs",
		Status:     models.TaskStatusToDo,
		AssignedTo: &suite.memberID,
	}, suite.adminID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), saved)
	assert.Equal(suite.T(), previousChange, saved.StatusChangedAt)
	assert.Nil(suite.T(), saved.CompletedAt)
}

func (suite *TaskServiceTestSuite) TestUpdate_StillDoneRecomputesCompletedAt() {
	task := suite.task(models.TaskStatusDone)
	completedAt := time.Now().Add(-48 * time.Hour)
	task.CompletedAt = &completedAt
	previousChange := task.StatusChangedAt

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(2)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetActive(suite.group.ID, suite.memberID).Return(&models.GroupMember{}, nil).Times(1)
	var saved *models.TaskItem
	suite.mockTaskRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(t *models.TaskItem) error {
			saved = t
			return nil
		}).
		Times(1)

	before := time.Now().UTC()
	_, err := suite.taskService.Update(suite.ctx, task.ID, &service.UpdateTaskRequest{
		Title:      "Write docs",
		Status:     models.TaskStatusDone,
		AssignedTo: &suite.memberID,
	}, suite.adminID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), saved)
	assert.Equal(suite.T(), previousChange, saved.StatusChangedAt)
	require.NotNil(suite.T(), saved.CompletedAt)
	assert.False(suite.T(), saved.CompletedAt.Before(before))
}

func (suite *TaskServiceTestSuite) TestDelete_NotAdmin() {
	task := suite.task(models.TaskStatusToDo)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.memberID).Return(false, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Delete(gomock.Any()).Times(0)

	err := suite.taskService.Delete(suite.ctx, task.ID, suite.memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotGroupAdmin)
}

func (suite *TaskServiceTestSuite) TestDelete_Success() {
	task := suite.task(models.TaskStatusToDo)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.group.ID, suite.adminID).Return(true, nil).Times(1)
	suite.mockAttachmentRepo.EXPECT().ListByEntity(models.EntityTypeTask, task.ID).Return(nil, nil).Times(1)
	suite.mockTaskRepo.EXPECT().Delete(task.ID).Return(nil).Times(1)

	err := suite.taskService.Delete(suite.ctx, task.ID, suite.adminID)

	assert.NoError(suite.T(), err)
}

func (suite *TaskServiceTestSuite) TestCanAccessTask_MissingTask() {
	id := uuid.New()
	suite.mockTaskRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	ok, err := suite.taskService.CanAccessTask(id, suite.memberID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), ok)
}

func (suite *TaskServiceTestSuite) TestListByGroup_OrdersAndCounts() {
	soon := time.Now().Add(time.Hour)
	later := time.Now().Add(5 * time.Hour)
	tasks := []models.TaskItem{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "done", Status: models.TaskStatusDone},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "todo", Status: models.TaskStatusToDo},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "progress-nodeadline", Status: models.TaskStatusInProgress},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "progress-later", Status: models.TaskStatusInProgress, Deadline: &later},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "progress-soon", Status: models.TaskStatusInProgress, Deadline: &soon},
	}

	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, suite.memberID).Return(true, nil).Times(1)
	suite.mockTaskRepo.EXPECT().List(gomock.Any()).Return(tasks, nil).Times(1)
	suite.mockTaskRepo.EXPECT().
		CountByStatus(suite.group.ID).
		Return(map[models.TaskStatus]int64{models.TaskStatusInProgress: 3, models.TaskStatusToDo: 1, models.TaskStatusDone: 1}, nil).
		Times(1)

	resp, err := suite.taskService.ListByGroup(suite.group.ID, suite.memberID, &service.TaskQuery{})

	require.NoError(suite.T(), err)
	var titles []string
	for _, t := range resp.Tasks {
		titles = append(titles, t.Title)
	}
	assert.Equal(suite.T(), []string{"progress-soon", "progress-later", "progress-nodeadline", "todo", "done"}, titles)
	assert.Equal(suite.T(), int64(0), resp.StatusCounts[models.TaskStatusBlocked])
	assert.Len(suite.T(), resp.StatusCounts, 4)
}

func (suite *TaskServiceTestSuite) TestListByGroup_InvalidFilter() {
	suite.mockGroupRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(suite.group.ID, suite.memberID).Return(true, nil).Times(1)

	_, err := suite.taskService.ListByGroup(suite.group.ID, suite.memberID, &service.TaskQuery{Assigned: "everyone"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TaskServiceTestSuite) TestListForUser_NoGroups() {
	suite.mockGroupRepo.EXPECT().GetAccessible(suite.memberID).Return(nil, nil).Times(1)

	tasks, err := suite.taskService.ListForUser(suite.memberID, nil)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), tasks)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
