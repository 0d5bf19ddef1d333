//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"team-planner-backend/internal/database/models"
	"team-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GroupRepositoryTestSuite tests GroupRepository and GroupMemberRepository
type GroupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupRepository
	members       *GroupMemberRepository
	users         *UserRepository
	factories     *testutils.FactorySet

	admin  *models.User
	member *models.User
}

func (suite *GroupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewGroupRepository(db)
	suite.members = NewGroupMemberRepository(db)
	suite.users = NewUserRepository(db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *GroupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.admin = suite.factories.User.Create()
	suite.member = suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(suite.admin))
	suite.Require().NoError(suite.users.Create(suite.member))
}

func (suite *GroupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createGroup stores a group with the admin as Admin and the member as Member
func (suite *GroupRepositoryTestSuite) createGroup() *models.Group {
	group := suite.factories.Group.Create(suite.admin.ID)
	members := []models.GroupMember{
		*suite.factories.GroupMember.Create(uuid.Nil, suite.admin.ID, models.MemberRoleAdmin),
		*suite.factories.GroupMember.Create(uuid.Nil, suite.member.ID, models.MemberRoleMember),
	}
	suite.Require().NoError(suite.repo.CreateWithMembers(group, members))
	return group
}

func (suite *GroupRepositoryTestSuite) TestCreateWithMembers() {
	group := suite.createGroup()

	active, err := suite.members.ListActive(group.ID)
	suite.NoError(err)
	suite.Len(active, 2)

	admins, err := suite.members.ListActiveByRole(group.ID, models.MemberRoleAdmin)
	suite.NoError(err)
	suite.Require().Len(admins, 1)
	suite.Equal(suite.admin.ID, admins[0].UserID)
}

func (suite *GroupRepositoryTestSuite) TestCreateWithMembersDuplicateName() {
	group := suite.createGroup()

	dup := suite.factories.Group.Create(suite.admin.ID)
	dup.Name = group.Name
	err := suite.repo.CreateWithMembers(dup, []models.GroupMember{
		*suite.factories.GroupMember.Create(uuid.Nil, suite.admin.ID, models.MemberRoleAdmin),
	})

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
	_, err = suite.repo.GetByID(dup.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestGetByName() {
	group := suite.createGroup()

	found, err := suite.repo.GetByName(group.Name)
	suite.NoError(err)
	suite.Equal(group.ID, found.ID)

	_, err = suite.repo.GetByName("no such group")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestGetAccessible() {
	group := suite.createGroup()

	// created by the outsider, who never joined
	outsider := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(outsider))
	own := suite.factories.Group.Create(outsider.ID)
	suite.Require().NoError(suite.repo.CreateWithMembers(own, nil))

	groups, err := suite.repo.GetAccessible(suite.member.ID)
	suite.NoError(err)
	suite.Require().Len(groups, 1)
	suite.Equal(group.ID, groups[0].ID)

	groups, err = suite.repo.GetAccessible(outsider.ID)
	suite.NoError(err)
	suite.Require().Len(groups, 1)
	suite.Equal(own.ID, groups[0].ID)

	membership, err := suite.members.GetActive(group.ID, suite.member.ID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.members.MarkLeft(membership.ID, time.Now().UTC()))

	groups, err = suite.repo.GetAccessible(suite.member.ID)
	suite.NoError(err)
	suite.Empty(groups)
}

func (suite *GroupRepositoryTestSuite) TestUpdate() {
	group := suite.createGroup()

	err := suite.repo.Update(group.ID, map[string]interface{}{"description": "renamed"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(group.ID)
	suite.NoError(err)
	suite.Equal("renamed", found.Description)
}

func (suite *GroupRepositoryTestSuite) TestDeleteCascade() {
	group := suite.createGroup()
	db := suite.baseTestSuite.DB

	task := suite.factories.Task.Create(group.ID, suite.admin.ID)
	suite.Require().NoError(NewTaskRepository(db).Create(task))
	event := suite.factories.Event.Create(group.ID, suite.admin.ID, time.Now().UTC().Add(time.Hour))
	suite.Require().NoError(NewEventRepository(db).Create(event))
	attachment := &models.FileAttachment{
		FileName:   "notes.txt",
		FileURL:    "/uploads/notes.txt",
		EntityType: models.EntityTypeTask,
		EntityID:   task.ID,
		UserID:     suite.admin.ID,
		UploadedAt: time.Now().UTC(),
	}
	suite.Require().NoError(NewAttachmentRepository(db).Create(attachment))

	suite.NoError(suite.repo.DeleteCascade(group.ID))

	var count int64
	db.Model(&models.GroupMember{}).Where("group_id = ?", group.ID).Count(&count)
	suite.Zero(count)
	db.Model(&models.TaskItem{}).Where("group_id = ?", group.ID).Count(&count)
	suite.Zero(count)
	db.Model(&models.CalendarEvent{}).Where("group_id = ?", group.ID).Count(&count)
	suite.Zero(count)
	db.Model(&models.FileAttachment{}).Where("entity_id = ?", task.ID).Count(&count)
	suite.Zero(count)

	suite.ErrorIs(suite.repo.DeleteCascade(group.ID), gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestCountActiveByGroups() {
	group := suite.createGroup()
	empty := suite.factories.Group.Create(suite.admin.ID)
	suite.Require().NoError(suite.repo.CreateWithMembers(empty, nil))

	counts, err := suite.members.CountActiveByGroups([]uuid.UUID{group.ID, empty.ID})

	suite.NoError(err)
	suite.Equal(int64(2), counts[group.ID])
	suite.Zero(counts[empty.ID])
}

func (suite *GroupRepositoryTestSuite) TestMarkLeftUnlessLastAdmin() {
	group := suite.createGroup()
	adminRow, err := suite.members.GetActive(group.ID, suite.admin.ID)
	suite.Require().NoError(err)

	err = suite.members.MarkLeftUnlessLastAdmin(adminRow.ID, time.Now().UTC())
	suite.ErrorIs(err, ErrLastActiveAdmin)

	memberRow, err := suite.members.GetActive(group.ID, suite.member.ID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.members.UpdateRoleUnlessLastAdmin(memberRow.ID, models.MemberRoleAdmin))

	suite.NoError(suite.members.MarkLeftUnlessLastAdmin(adminRow.ID, time.Now().UTC()))
	_, err = suite.members.GetActive(group.ID, suite.admin.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.members.MarkLeftUnlessLastAdmin(adminRow.ID, time.Now().UTC()), gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestUpdateRoleUnlessLastAdmin() {
	group := suite.createGroup()
	adminRow, err := suite.members.GetActive(group.ID, suite.admin.ID)
	suite.Require().NoError(err)

	suite.ErrorIs(suite.members.UpdateRoleUnlessLastAdmin(adminRow.ID, models.MemberRoleMember), ErrLastActiveAdmin)

	// admin to admin is a no-op and allowed
	suite.NoError(suite.members.UpdateRoleUnlessLastAdmin(adminRow.ID, models.MemberRoleAdmin))

	memberRow, err := suite.members.GetActive(group.ID, suite.member.ID)
	suite.Require().NoError(err)
	suite.NoError(suite.members.UpdateRoleUnlessLastAdmin(memberRow.ID, models.MemberRoleAdmin))
	suite.NoError(suite.members.UpdateRoleUnlessLastAdmin(adminRow.ID, models.MemberRoleMember))

	found, err := suite.members.GetActive(group.ID, suite.admin.ID)
	suite.NoError(err)
	suite.Equal(models.MemberRoleMember, found.Role)
}

func (suite *GroupRepositoryTestSuite) TestRejoin() {
	group := suite.createGroup()
	memberRow, err := suite.members.GetActive(group.ID, suite.member.ID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.members.MarkLeft(memberRow.ID, time.Now().UTC()))

	fresh := suite.factories.GroupMember.Create(group.ID, suite.member.ID, models.MemberRoleMember)
	suite.NoError(suite.members.Rejoin(fresh))

	var rows int64
	suite.baseTestSuite.DB.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", group.ID, suite.member.ID).
		Count(&rows)
	suite.Equal(int64(1), rows)

	memberships, err := suite.members.ListActiveByUser(suite.member.ID)
	suite.NoError(err)
	suite.Require().Len(memberships, 1)
	suite.Equal(fresh.ID, memberships[0].ID)
}

func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}
