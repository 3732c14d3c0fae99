package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"octofit-backend/internal/api/handlers"
	"octofit-backend/internal/database/models"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/mocks"
	"octofit-backend/internal/service"
	"octofit-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupWorkoutHandler(t *testing.T) (*mocks.MockWorkoutServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockWorkoutServiceInterface(ctrl)
	handler := handlers.NewWorkoutHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	workouts := httpSuite.Router.Group("/api/workouts")
	{
		workouts.GET("/", handler.ListWorkouts)
		workouts.POST("/", handler.CreateWorkout)
		workouts.GET("/by_difficulty/", handler.ByDifficulty)
		workouts.GET("/:id/", handler.GetWorkout)
		workouts.PUT("/:id/", handler.ReplaceWorkout)
		workouts.PATCH("/:id/", handler.UpdateWorkout)
		workouts.DELETE("/:id/", handler.DeleteWorkout)
	}
	return mockService, httpSuite
}

func TestWorkoutHandler_List(t *testing.T) {
	mockService, httpSuite := setupWorkoutHandler(t)

	mockService.EXPECT().
		ListWorkouts(gomock.Any()).
		DoAndReturn(func(difficulty *string) ([]service.WorkoutResponse, error) {
			require.NotNil(t, difficulty)
			assert.Equal(t, "beginner", *difficulty)
			return []service.WorkoutResponse{{Name: "Warrior Yoga Flow", Difficulty: models.DifficultyBeginner}}, nil
		}).
		Times(1)

	recorder := httpSuite.MakeRequest("GET", "/api/workouts/?difficulty=beginner", nil)

	var response []service.WorkoutResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Len(t, response, 1)
}

func TestWorkoutHandler_ByDifficulty(t *testing.T) {
	mockService, httpSuite := setupWorkoutHandler(t)

	mockService.EXPECT().
		GroupByDifficulty().
		Return(&service.WorkoutsByDifficultyResponse{
			Beginner:     []service.WorkoutResponse{},
			Intermediate: []service.WorkoutResponse{},
			Advanced:     []service.WorkoutResponse{{Name: "Avenger HIIT", Exercises: json.RawMessage(`[]`)}},
		}, nil).
		Times(1)

	recorder := httpSuite.MakeRequest("GET", "/api/workouts/by_difficulty/", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var response map[string][]map[string]interface{}
	testutils.ParseJSONResponse(t, recorder, &response)
	assert.Empty(t, response["beginner"])
	assert.NotNil(t, response["beginner"])
	assert.Len(t, response["advanced"], 1)
}

func TestWorkoutHandler_Create(t *testing.T) {
	mockService, httpSuite := setupWorkoutHandler(t)

	t.Run("Exercises pass through untouched", func(t *testing.T) {
		mockService.EXPECT().
			CreateWorkout(gomock.Any()).
			DoAndReturn(func(req *service.CreateWorkoutRequest) (*service.WorkoutResponse, error) {
				assert.JSONEq(t, `[{"name":"Plank","duration":"30 seconds"}]`, string(req.Exercises))
				return &service.WorkoutResponse{ID: uuid.New(), Exercises: req.Exercises}, nil
			}).
			Times(1)

		recorder := httpSuite.MakeRequest("POST", "/api/workouts/", map[string]interface{}{
			"name":        "Core",
			"description": "Core work",
			"difficulty":  "beginner",
			"exercises":   []map[string]interface{}{{"name": "Plank", "duration": "30 seconds"}},
		})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Bad difficulty", func(t *testing.T) {
		mockService.EXPECT().
			CreateWorkout(gomock.Any()).
			Return(nil, apperrors.NewValidationError("difficulty", "must be one of beginner, intermediate, advanced")).
			Times(1)

		recorder := httpSuite.MakeRequest("POST", "/api/workouts/", map[string]interface{}{
			"name":        "Core",
			"description": "Core work",
			"difficulty":  "legendary",
		})

		testutils.AssertFieldError(t, recorder, "difficulty")
	})
}

func TestWorkoutHandler_ByID(t *testing.T) {
	mockService, httpSuite := setupWorkoutHandler(t)
	id := uuid.New()

	mockService.EXPECT().GetWorkoutByID(id).Return(&service.WorkoutResponse{ID: id}, nil).Times(1)
	recorder := httpSuite.MakeRequest("GET", "/api/workouts/"+id.String()+"/", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	mockService.EXPECT().UpdateWorkout(id, gomock.Any()).Return(nil, apperrors.ErrWorkoutNotFound).Times(1)
	recorder = httpSuite.MakeRequest("PATCH", "/api/workouts/"+id.String()+"/", map[string]interface{}{"duration": 10})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	mockService.EXPECT().
		UpdateWorkout(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateWorkoutRequest) (*service.WorkoutResponse, error) {
			assert.JSONEq(t, `[]`, string(req.Exercises))
			return &service.WorkoutResponse{ID: id}, nil
		}).
		Times(1)
	recorder = httpSuite.MakeRequest("PUT", "/api/workouts/"+id.String()+"/", map[string]interface{}{
		"name":        "Core",
		"description": "Core work",
		"difficulty":  "beginner",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	mockService.EXPECT().DeleteWorkout(id).Return(nil).Times(1)
	recorder = httpSuite.MakeRequest("DELETE", "/api/workouts/"+id.String()+"/", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
