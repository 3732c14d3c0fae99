//go:build integration
// +build integration

package repository

import (
	"testing"

	"octofit-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeaderboardRepositoryTestSuite tests the LeaderboardRepository
type LeaderboardRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeaderboardRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LeaderboardRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLeaderboardRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeaderboardRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeaderboardRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeaderboardRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByCalories tests ordering by calories with build order breaking ties
func (suite *LeaderboardRepositoryTestSuite) TestGetByCalories() {
	low := suite.factories.Leaderboard.WithCalories(500, 0)
	tieFirst := suite.factories.Leaderboard.WithCalories(1200, 1)
	tieSecond := suite.factories.Leaderboard.WithCalories(1200, 2)
	suite.NoError(suite.repo.Create(tieSecond))
	suite.NoError(suite.repo.Create(low))
	suite.NoError(suite.repo.Create(tieFirst))

	all, err := suite.repo.GetByCalories(0)
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal(tieFirst.ID, all[0].ID)
	suite.Equal(tieSecond.ID, all[1].ID)
	suite.Equal(low.ID, all[2].ID)

	top, err := suite.repo.GetByCalories(2)
	suite.NoError(err)
	suite.Len(top, 2)
}

// TestUpdateRankAndGetAllByRank tests persisting ranks and reading by them
func (suite *LeaderboardRepositoryTestSuite) TestUpdateRankAndGetAllByRank() {
	a := suite.factories.Leaderboard.WithCalories(100, 0)
	b := suite.factories.Leaderboard.WithCalories(900, 1)
	suite.NoError(suite.repo.Create(a))
	suite.NoError(suite.repo.Create(b))

	suite.NoError(suite.repo.UpdateRank(b.ID, 1))
	suite.NoError(suite.repo.UpdateRank(a.ID, 2))

	entries, err := suite.repo.GetAllByRank()
	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(b.ID, entries[0].ID)
	suite.Equal(1, entries[0].Rank)
	suite.Equal(2, entries[1].Rank)
}

// TestUpdateRankNotFound tests ranking a missing row
func (suite *LeaderboardRepositoryTestSuite) TestUpdateRankNotFound() {
	err := suite.repo.UpdateRank(uuid.New(), 1)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteAll tests clearing the board
func (suite *LeaderboardRepositoryTestSuite) TestDeleteAll() {
	suite.NoError(suite.repo.Create(suite.factories.Leaderboard.Create()))
	suite.NoError(suite.repo.DeleteAll())

	entries, err := suite.repo.GetAllByRank()
	suite.NoError(err)
	suite.Empty(entries)
}

// TestLeaderboardRepositoryTestSuite runs the test suite
func TestLeaderboardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardRepositoryTestSuite))
}
