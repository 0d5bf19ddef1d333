package service_test

import (
	"testing"
	"time"

	"team-planner-backend/internal/database/models"
	apperrors "team-planner-backend/internal/errors"
	"team-planner-backend/internal/mocks"
	"team-planner-backend/internal/repository"
	"team-planner-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CalendarServiceTestSuite defines the test suite for CalendarService
type CalendarServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGroupRepo *mocks.MockGroupRepositoryInterface
	mockEventRepo *mocks.MockEventRepositoryInterface
	mockTaskRepo  *mocks.MockTaskRepositoryInterface
	mockAuthz     *mocks.MockAuthorizer
	service       *service.CalendarService

	userID   uuid.UUID
	from, to time.Time
}

func (suite *CalendarServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockAuthz = mocks.NewMockAuthorizer(suite.ctrl)
	suite.service = service.NewCalendarService(suite.mockGroupRepo, suite.mockEventRepo, suite.mockTaskRepo, suite.mockAuthz)

	suite.userID = uuid.New()
	suite.from = time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *CalendarServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CalendarServiceTestSuite) TestGroupEvents() {
	groupID := uuid.New()
	event := models.CalendarEvent{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Title:          "Sprint review",
		StartTime:      suite.from.Add(48 * time.Hour),
		TimeZoneID:     "Europe/Paris",
		GroupID:        groupID,
		RecurrenceRule: "FREQ=WEEKLY",
		EventType:      models.EventTypeMeeting,
	}

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(&models.Group{BaseModel: models.BaseModel{ID: groupID}}, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(groupID, suite.userID).Return(true, nil).Times(1)
	suite.mockEventRepo.EXPECT().ListInRange([]uuid.UUID{groupID}, suite.from, suite.to).Return([]models.CalendarEvent{event}, nil).Times(1)

	items, err := suite.service.GroupEvents(groupID, suite.userID, suite.from, suite.to)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), event.ID.String(), items[0].ID)
	assert.Equal(suite.T(), "FREQ=WEEKLY", items[0].RRule)
	assert.Equal(suite.T(), "Europe/Paris", items[0].ExtendedProps["time_zone_id"])
}

func (suite *CalendarServiceTestSuite) TestGroupEvents_Errors() {
	groupID := uuid.New()

	_, err := suite.service.GroupEvents(groupID, suite.userID, suite.to, suite.from)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	_, err = suite.service.GroupEvents(groupID, suite.userID, suite.from, suite.to)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)

	suite.mockGroupRepo.EXPECT().GetByID(groupID).Return(&models.Group{BaseModel: models.BaseModel{ID: groupID}}, nil).Times(1)
	suite.mockAuthz.EXPECT().CanAccess(groupID, suite.userID).Return(false, nil).Times(1)
	_, err = suite.service.GroupEvents(groupID, suite.userID, suite.from, suite.to)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoGroupAccess)
}

func (suite *CalendarServiceTestSuite) TestAllItems_MergesEventsAndDeadlines() {
	group := models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Eng"}
	deadline := suite.from.Add(72 * time.Hour)
	event := models.CalendarEvent{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Retro",
		StartTime: suite.from.Add(24 * time.Hour),
		GroupID:   group.ID,
		EventType: models.EventTypeMeeting,
	}
	task := models.TaskItem{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Release notes",
		Status:    models.TaskStatusToDo,
		Deadline:  &deadline,
		GroupID:   group.ID,
		Priority:  &models.Priority{Name: "High"},
		Assignee:  &models.User{Name: "Mia"},
	}

	suite.mockGroupRepo.EXPECT().GetAccessible(suite.userID).Return([]models.Group{group}, nil).Times(1)
	suite.mockEventRepo.EXPECT().ListInRange([]uuid.UUID{group.ID}, suite.from, suite.to).Return([]models.CalendarEvent{event}, nil).Times(1)
	suite.mockTaskRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filter repository.TaskFilter) ([]models.TaskItem, error) {
			assert.Equal(suite.T(), []uuid.UUID{group.ID}, filter.GroupIDs)
			assert.True(suite.T(), filter.DeadlineFrom.Equal(suite.from))
			assert.True(suite.T(), filter.DeadlineTo.Equal(suite.to))
			return []models.TaskItem{task}, nil
		}).
		Times(1)

	items, err := suite.service.AllItems(suite.userID, suite.from, suite.to)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), "event-"+event.ID.String(), items[0].ID)
	assert.Equal(suite.T(), "Retro (Eng)", items[0].Title)
	assert.Equal(suite.T(), "task-"+task.ID.String(), items[1].ID)
	assert.True(suite.T(), items[1].Start.Equal(deadline))
	assert.Equal(suite.T(), "High", items[1].ExtendedProps["priority"])
	assert.Equal(suite.T(), "Mia", items[1].ExtendedProps["assignee"])
	assert.Equal(suite.T(), "Eng", items[1].ExtendedProps["group_name"])
}

func (suite *CalendarServiceTestSuite) TestAllItems_NoGroups() {
	suite.mockGroupRepo.EXPECT().GetAccessible(suite.userID).Return(nil, nil).Times(1)
	suite.mockEventRepo.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	items, err := suite.service.AllItems(suite.userID, suite.from, suite.to)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), items)
}

func TestCalendarServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}
