package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/mocks"
	"team-planner-backend/internal/service"
	"team-planner-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AttachmentServiceTestSuite defines the test suite for AttachmentService
type AttachmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAttachmentRepo *mocks.MockAttachmentRepositoryInterface
	mockTaskRepo       *mocks.MockTaskRepositoryInterface
	mockAuthz          *mocks.MockAuthorizer
	service            *service.AttachmentService

	uploadDir string
	groupID   uuid.UUID
	memberID  uuid.UUID
}

func (suite *AttachmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAttachmentRepo = mocks.NewMockAttachmentRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockAuthz = mocks.NewMockAuthorizer(suite.ctrl)

	suite.uploadDir = suite.T().TempDir()
	files, err := storage.NewLocalStore(suite.uploadDir, "/uploads")
	require.NoError(suite.T(), err)

	suite.service = service.NewAttachmentService(suite.mockAttachmentRepo, suite.mockTaskRepo, suite.mockAuthz, files)
	suite.groupID = uuid.New()
	suite.memberID = uuid.New()
}

func (suite *AttachmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AttachmentServiceTestSuite) task(deadline *time.Time) *models.TaskItem {
	return &models.TaskItem{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Design review",
		GroupID:   suite.groupID,
		Deadline:  deadline,
	}
}

func (suite *AttachmentServiceTestSuite) expectRole(isAdmin bool) {
	suite.mockAuthz.EXPECT().CanAccess(suite.groupID, suite.memberID).Return(true, nil).Times(1)
	suite.mockAuthz.EXPECT().IsAdmin(suite.groupID, suite.memberID).Return(isAdmin, nil).Times(1)
}

func (suite *AttachmentServiceTestSuite) storedFiles() []string {
	entries, err := os.ReadDir(suite.uploadDir)
	require.NoError(suite.T(), err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func (suite *AttachmentServiceTestSuite) TestUpload_MemberBeforeDeadline() {
	deadline := time.Now().Add(time.Hour)
	task := suite.task(&deadline)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.expectRole(false)
	suite.mockAttachmentRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	resp, err := suite.service.Upload(context.Background(), task.ID, suite.memberID, "../../spec sheet.pdf", strings.NewReader("%PDF-1.7"))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "spec_sheet.pdf", resp.FileName)
	assert.Equal(suite.T(), models.EntityTypeTask, resp.EntityType)
	assert.True(suite.T(), strings.HasPrefix(resp.FileURL, "/uploads/"))

	content, err := os.ReadFile(filepath.Join(suite.uploadDir, strings.TrimPrefix(resp.FileURL, "/uploads/")))
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "%PDF-1.7", string(content))
}

func (suite *AttachmentServiceTestSuite) TestUpload_MemberLockRules() {
	past := time.Now().Add(-time.Minute)

	testCases := []struct {
		name     string
		deadline *time.Time
	}{
		{name: "deadline passed", deadline: &past},
		{name: "no deadline", deadline: nil},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			task := suite.task(tc.deadline)
			suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
			suite.expectRole(false)

			_, err := suite.service.Upload(context.Background(), task.ID, suite.memberID, "a.txt", strings.NewReader("a"))

			assert.ErrorIs(suite.T(), err, apperrors.ErrAttachmentLock)
			assert.Empty(suite.T(), suite.storedFiles())
		})
	}
}

func (suite *AttachmentServiceTestSuite) TestUpload_AdminIgnoresDeadline() {
	task := suite.task(nil)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.expectRole(true)
	suite.mockAttachmentRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	_, err := suite.service.Upload(context.Background(), task.ID, suite.memberID, "notes.md", strings.NewReader("# notes"))

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), suite.storedFiles(), 1)
}

func (suite *AttachmentServiceTestSuite) TestUpload_MetadataFailureRemovesFile() {
	task := suite.task(nil)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.expectRole(true)
	suite.mockAttachmentRepo.EXPECT().Create(gomock.Any()).Return(errors.New("db down")).Times(1)

	_, err := suite.service.Upload(context.Background(), task.ID, suite.memberID, "notes.md", strings.NewReader("# notes"))

	assert.Error(suite.T(), err)
	assert.Empty(suite.T(), suite.storedFiles())
}

func (suite *AttachmentServiceTestSuite) TestUpload_NoAccess() {
	task := suite.task(nil)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(suite.groupID, suite.memberID).Return(false, nil).Times(1)

	_, err := suite.service.Upload(context.Background(), task.ID, suite.memberID, "a.txt", strings.NewReader("a"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoGroupAccess)
}

func (suite *AttachmentServiceTestSuite) TestUpload_NoStorage() {
	svc := service.NewAttachmentService(suite.mockAttachmentRepo, suite.mockTaskRepo, suite.mockAuthz, nil)

	_, err := svc.Upload(context.Background(), uuid.New(), suite.memberID, "a.txt", strings.NewReader("a"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrStorageUnavailable)
}

func (suite *AttachmentServiceTestSuite) TestDelete_RemovesRowAndFile() {
	deadline := time.Now().Add(time.Hour)
	task := suite.task(&deadline)

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(2)
	suite.mockAuthz.EXPECT().CanAccess(suite.groupID, suite.memberID).Return(true, nil).Times(2)
	suite.mockAuthz.EXPECT().IsAdmin(suite.groupID, suite.memberID).Return(false, nil).Times(2)

	var stored *models.FileAttachment
	suite.mockAttachmentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.FileAttachment) error {
			a.ID = uuid.New()
			stored = a
			return nil
		}).
		Times(1)

	resp, err := suite.service.Upload(context.Background(), task.ID, suite.memberID, "a.txt", strings.NewReader("a"))
	require.NoError(suite.T(), err)
	require.Len(suite.T(), suite.storedFiles(), 1)

	suite.mockAttachmentRepo.EXPECT().GetByID(resp.ID).Return(stored, nil).Times(1)
	suite.mockAttachmentRepo.EXPECT().Delete(resp.ID).Return(nil).Times(1)

	err = suite.service.Delete(context.Background(), resp.ID, suite.memberID)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), suite.storedFiles())
}

func (suite *AttachmentServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockAttachmentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.service.Delete(context.Background(), id, suite.memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAttachmentNotFound)
}

func (suite *AttachmentServiceTestSuite) TestList() {
	task := suite.task(nil)
	attachments := []models.FileAttachment{
		{ID: uuid.New(), FileName: "a.txt", EntityType: models.EntityTypeTask, EntityID: task.ID},
	}

	suite.mockTaskRepo.EXPECT().GetByID(task.ID).Return(task, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(suite.groupID, suite.memberID).Return(true, nil).Times(1)
	suite.mockAttachmentRepo.EXPECT().ListByEntity(models.EntityTypeTask, task.ID).Return(attachments, nil).Times(1)

	list, err := suite.service.List(task.ID, suite.memberID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 1)
	assert.Equal(suite.T(), "a.txt", list[0].FileName)
}

func TestAttachmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}
