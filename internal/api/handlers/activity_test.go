package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"octofit-backend/internal/api/handlers"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/mocks"
	"octofit-backend/internal/service"
	"octofit-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupActivityHandler(t *testing.T) (*mocks.MockActivityServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockActivityServiceInterface(ctrl)
	handler := handlers.NewActivityHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	activities := httpSuite.Router.Group("/api/activities")
	{
		activities.GET("/", handler.ListActivities)
		activities.POST("/", handler.CreateActivity)
		activities.GET("/:id/", handler.GetActivity)
		activities.PUT("/:id/", handler.ReplaceActivity)
		activities.PATCH("/:id/", handler.UpdateActivity)
		activities.DELETE("/:id/", handler.DeleteActivity)
	}
	return mockService, httpSuite
}

func TestActivityHandler_List(t *testing.T) {
	mockService, httpSuite := setupActivityHandler(t)

	t.Run("Without filter", func(t *testing.T) {
		mockService.EXPECT().ListActivities(nil).Return([]service.ActivityResponse{}, nil).Times(1)

		recorder := httpSuite.MakeRequest("GET", "/api/activities/", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("With user filter", func(t *testing.T) {
		mockService.EXPECT().
			ListActivities(gomock.Any()).
			DoAndReturn(func(userID *string) ([]service.ActivityResponse, error) {
				require.NotNil(t, userID)
				assert.Equal(t, "abc", *userID)
				return []service.ActivityResponse{{ActivityType: "Yoga"}}, nil
			}).
			Times(1)

		recorder := httpSuite.MakeRequest("GET", "/api/activities/?user_id=abc", nil)

		var response []service.ActivityResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
	})

	t.Run("Store failure", func(t *testing.T) {
		mockService.EXPECT().ListActivities(nil).Return(nil, errors.New("failed to list activities: boom")).Times(1)

		recorder := httpSuite.MakeRequest("GET", "/api/activities/", nil)
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestActivityHandler_Create(t *testing.T) {
	mockService, httpSuite := setupActivityHandler(t)

	t.Run("Date parsed from RFC 3339", func(t *testing.T) {
		mockService.EXPECT().
			CreateActivity(gomock.Any()).
			DoAndReturn(func(req *service.CreateActivityRequest) (*service.ActivityResponse, error) {
				require.NotNil(t, req.Date)
				assert.True(t, req.Date.Equal(time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)))
				return &service.ActivityResponse{ID: uuid.New(), UserName: "Tony Stark"}, nil
			}).
			Times(1)

		recorder := httpSuite.MakeRequest("POST", "/api/activities/", map[string]interface{}{
			"user_id":       uuid.New().String(),
			"activity_type": "Running",
			"duration":      30,
			"calories":      300,
			"date":          "2024-03-01T07:30:00Z",
		})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Negative calories", func(t *testing.T) {
		mockService.EXPECT().
			CreateActivity(gomock.Any()).
			Return(nil, apperrors.NewValidationError("calories", "must be greater than or equal to 0")).
			Times(1)

		recorder := httpSuite.MakeRequest("POST", "/api/activities/", map[string]interface{}{
			"user_id":       "x",
			"activity_type": "Running",
			"calories":      -5,
		})

		testutils.AssertFieldError(t, recorder, "calories")
	})
}

func TestActivityHandler_ByID(t *testing.T) {
	mockService, httpSuite := setupActivityHandler(t)
	id := uuid.New()

	mockService.EXPECT().GetActivityByID(id).Return(nil, apperrors.ErrActivityNotFound).Times(1)
	recorder := httpSuite.MakeRequest("GET", "/api/activities/"+id.String()+"/", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "activity not found")

	mockService.EXPECT().
		UpdateActivity(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateActivityRequest) (*service.ActivityResponse, error) {
			require.NotNil(t, req.Calories)
			assert.Equal(t, 999, *req.Calories)
			assert.Nil(t, req.ActivityType)
			return &service.ActivityResponse{ID: id, Calories: 999}, nil
		}).
		Times(1)
	recorder = httpSuite.MakeRequest("PATCH", "/api/activities/"+id.String()+"/", map[string]interface{}{"calories": 999})
	assert.Equal(t, http.StatusOK, recorder.Code)

	mockService.EXPECT().
		UpdateActivity(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateActivityRequest) (*service.ActivityResponse, error) {
			require.NotNil(t, req.ActivityType)
			require.NotNil(t, req.Notes)
			assert.Equal(t, "", *req.Notes)
			return &service.ActivityResponse{ID: id}, nil
		}).
		Times(1)
	recorder = httpSuite.MakeRequest("PUT", "/api/activities/"+id.String()+"/", map[string]interface{}{
		"user_id":       "u",
		"activity_type": "HIIT",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	mockService.EXPECT().DeleteActivity(id).Return(nil).Times(1)
	recorder = httpSuite.MakeRequest("DELETE", "/api/activities/"+id.String()+"/", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
