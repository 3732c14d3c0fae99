package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	"octofit-backend/internal/database/models"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/mocks"
	"octofit-backend/internal/repository/memory"
	"octofit-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWorkoutService(t *testing.T) *service.WorkoutService {
	t.Helper()
	return service.NewWorkoutService(memory.NewStore().Workouts, service.NewValidator())
}

func addWorkout(t *testing.T, svc *service.WorkoutService, name string, difficulty models.Difficulty) *service.WorkoutResponse {
	t.Helper()
	w, err := svc.CreateWorkout(&service.CreateWorkoutRequest{
		Name:             name,
		Description:      name + " routine",
		Difficulty:       difficulty,
		Duration:         30,
		CaloriesEstimate: 300,
		Exercises:        json.RawMessage(`[{"name":"Burpees","reps":20}]`),
	})
	require.NoError(t, err)
	return w
}

func TestGroupByDifficulty_PartitionsCatalog(t *testing.T) {
	svc := newWorkoutService(t)
	addWorkout(t, svc, "Shield Agent Basics", models.DifficultyBeginner)
	addWorkout(t, svc, "Thunder Strike Cardio", models.DifficultyIntermediate)
	addWorkout(t, svc, "Hero Stretch", models.DifficultyBeginner)
	addWorkout(t, svc, "Super Soldier Training", models.DifficultyAdvanced)
	addWorkout(t, svc, "Amazon Warrior", models.DifficultyIntermediate)

	grouped, err := svc.GroupByDifficulty()
	require.NoError(t, err)

	require.Len(t, grouped.Beginner, 2)
	require.Len(t, grouped.Intermediate, 2)
	require.Len(t, grouped.Advanced, 1)
	assert.Equal(t, "Shield Agent Basics", grouped.Beginner[0].Name)
	assert.Equal(t, "Hero Stretch", grouped.Beginner[1].Name)
	assert.Equal(t, "Thunder Strike Cardio", grouped.Intermediate[0].Name)
}

func TestGroupByDifficulty_EmptyGroupsEncodeAsArrays(t *testing.T) {
	svc := newWorkoutService(t)
	addWorkout(t, svc, "Only Advanced", models.DifficultyAdvanced)

	grouped, err := svc.GroupByDifficulty()
	require.NoError(t, err)

	body, err := json.Marshal(grouped)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"beginner":[]`)
	assert.Contains(t, string(body), `"intermediate":[]`)
}

func TestListWorkouts_DifficultyFilter(t *testing.T) {
	svc := newWorkoutService(t)
	addWorkout(t, svc, "A", models.DifficultyBeginner)
	addWorkout(t, svc, "B", models.DifficultyAdvanced)

	all, err := svc.ListWorkouts(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	advanced := "advanced"
	filtered, err := svc.ListWorkouts(&advanced)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "B", filtered[0].Name)

	unknown := "legendary"
	none, err := svc.ListWorkouts(&unknown)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateWorkout_Validation(t *testing.T) {
	svc := newWorkoutService(t)

	_, err := svc.CreateWorkout(&service.CreateWorkoutRequest{
		Name:        "Bad",
		Description: "x",
		Difficulty:  "expert",
	})
	v, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "difficulty", v.Field)

	_, err = svc.CreateWorkout(&service.CreateWorkoutRequest{
		Name:        "Bad",
		Description: "x",
		Difficulty:  models.DifficultyBeginner,
		Exercises:   json.RawMessage(`{"name":"Squats"}`),
	})
	v, ok = apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "exercises", v.Field)
}

func TestCreateWorkout_MissingExercisesBecomeEmptyArray(t *testing.T) {
	svc := newWorkoutService(t)

	w, err := svc.CreateWorkout(&service.CreateWorkoutRequest{
		Name:        "Rest Day",
		Description: "Walk",
		Difficulty:  models.DifficultyBeginner,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(w.Exercises))
}

func TestUpdateWorkout(t *testing.T) {
	svc := newWorkoutService(t)
	w := addWorkout(t, svc, "Hero Stretch", models.DifficultyBeginner)

	difficulty := models.DifficultyIntermediate
	updated, err := svc.UpdateWorkout(w.ID, &service.UpdateWorkoutRequest{Difficulty: &difficulty})
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyIntermediate, updated.Difficulty)
	assert.Equal(t, "Hero Stretch", updated.Name)
	assert.JSONEq(t, `[{"name":"Burpees","reps":20}]`, string(updated.Exercises))

	_, err = svc.UpdateWorkout(uuid.New(), &service.UpdateWorkoutRequest{Difficulty: &difficulty})
	assert.ErrorIs(t, err, apperrors.ErrWorkoutNotFound)
}

func TestDeleteWorkout(t *testing.T) {
	svc := newWorkoutService(t)
	w := addWorkout(t, svc, "Hero Stretch", models.DifficultyBeginner)

	require.NoError(t, svc.DeleteWorkout(w.ID))
	_, err := svc.GetWorkoutByID(w.ID)
	assert.ErrorIs(t, err, apperrors.ErrWorkoutNotFound)
	assert.ErrorIs(t, svc.DeleteWorkout(w.ID), apperrors.ErrWorkoutNotFound)
}

func TestGroupByDifficulty_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWorkoutRepositoryInterface(ctrl)
	svc := service.NewWorkoutService(repo, service.NewValidator())

	repo.EXPECT().GetAll().Return(nil, errors.New("database error"))

	grouped, err := svc.GroupByDifficulty()

	assert.Nil(t, grouped)
	assert.ErrorContains(t, err, "failed to list workouts")
}
