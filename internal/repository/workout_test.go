//go:build integration
// +build integration

package repository

import (
	"testing"

	"octofit-backend/internal/database/models"
	"octofit-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// WorkoutRepositoryTestSuite tests the WorkoutRepository
type WorkoutRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkoutRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkoutRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewWorkoutRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkoutRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkoutRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkoutRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateKeepsExercises tests that the exercise JSON round-trips through jsonb
func (suite *WorkoutRepositoryTestSuite) TestCreateKeepsExercises() {
	workout := suite.factories.Workout.Create()
	suite.NoError(suite.repo.Create(workout))

	found, err := suite.repo.GetByID(workout.ID)

	suite.NoError(err)
	suite.JSONEq(string(workout.Exercises), string(found.Exercises))
}

// TestGetByDifficulty tests filtering in catalog order
func (suite *WorkoutRepositoryTestSuite) TestGetByDifficulty() {
	suite.NoError(suite.repo.Create(suite.factories.Workout.WithDifficulty("Beginner Hero Training", models.DifficultyBeginner)))
	suite.NoError(suite.repo.Create(suite.factories.Workout.WithDifficulty("Avenger HIIT", models.DifficultyAdvanced)))
	suite.NoError(suite.repo.Create(suite.factories.Workout.WithDifficulty("Warrior Yoga Flow", models.DifficultyBeginner)))

	beginner, err := suite.repo.GetByDifficulty(models.DifficultyBeginner)
	suite.NoError(err)
	suite.Len(beginner, 2)
	suite.Equal("Beginner Hero Training", beginner[0].Name)
	suite.Equal("Warrior Yoga Flow", beginner[1].Name)

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal("Avenger HIIT", all[1].Name)
}

// TestWorkoutRepositoryTestSuite runs the test suite
func TestWorkoutRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkoutRepositoryTestSuite))
}
