//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"octofit-backend/internal/database/models"
	"octofit-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests the unique email index
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user1 := suite.factories.User.WithEmail("tony.stark@avengers.com")
	suite.NoError(suite.repo.Create(user1))

	user2 := suite.factories.User.WithEmail("tony.stark@avengers.com")
	err := suite.repo.Create(user2)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Email, found.Email)
	suite.Nil(found.TeamID)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(found)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("diana.prince@justiceleague.com")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("diana.prince@justiceleague.com")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestGetByTeamID tests filtering and counting users by team reference
func (suite *UserRepositoryTestSuite) TestGetByTeamID() {
	teamID := uuid.New()
	suite.NoError(suite.repo.Create(suite.factories.User.WithTeam(teamID)))
	suite.NoError(suite.repo.Create(suite.factories.User.WithTeam(teamID)))
	suite.NoError(suite.repo.Create(suite.factories.User.WithTeam(uuid.New())))
	suite.NoError(suite.repo.Create(suite.factories.User.Create()))

	members, err := suite.repo.GetByTeamID(models.NewTeamRef(teamID))
	suite.NoError(err)
	suite.Len(members, 2)

	count, err := suite.repo.CountByTeamID(models.NewTeamRef(teamID))
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestGetAllOrder tests that users come back oldest first
func (suite *UserRepositoryTestSuite) TestGetAllOrder() {
	first := suite.factories.User.Create()
	second := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	users, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(users, 2)
	suite.Equal(first.ID, users[0].ID)
	suite.Equal(second.ID, users[1].ID)
}

// TestUpdateAndDelete tests updating then deleting a user
func (suite *UserRepositoryTestSuite) TestUpdateAndDelete() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))
	created := user.CreatedAt

	user.Name = "Steve Rogers"
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("Steve Rogers", found.Name)
	suite.WithinDuration(created, found.CreatedAt, time.Millisecond)

	suite.NoError(suite.repo.Delete(user.ID))
	_, err = suite.repo.GetByID(user.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteAll tests clearing the collection
func (suite *UserRepositoryTestSuite) TestDeleteAll() {
	suite.NoError(suite.repo.Create(suite.factories.User.Create()))
	suite.NoError(suite.repo.Create(suite.factories.User.Create()))

	suite.NoError(suite.repo.DeleteAll())

	users, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Empty(users)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
