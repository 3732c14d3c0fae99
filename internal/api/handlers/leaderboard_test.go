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

func setupLeaderboardHandler(t *testing.T) (*mocks.MockLeaderboardServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLeaderboardServiceInterface(ctrl)
	handler := handlers.NewLeaderboardHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	leaderboard := httpSuite.Router.Group("/api/leaderboard")
	{
		leaderboard.GET("/", handler.ListLeaderboard)
		leaderboard.POST("/", handler.CreateEntry)
		leaderboard.GET("/top_users/", handler.TopUsers)
		leaderboard.POST("/recompute/", handler.Recompute)
		leaderboard.GET("/:id/", handler.GetEntry)
		leaderboard.PUT("/:id/", handler.ReplaceEntry)
		leaderboard.PATCH("/:id/", handler.UpdateEntry)
		leaderboard.DELETE("/:id/", handler.DeleteEntry)
	}
	return mockService, httpSuite
}

func TestLeaderboardHandler_TopUsers(t *testing.T) {
	mockService, httpSuite := setupLeaderboardHandler(t)

	expectTop := func(limit int, rows []service.LeaderboardResponse) func() {
		return func() {
			mockService.EXPECT().Top(limit).Return(rows, nil).Times(1)
		}
	}

	httpSuite.RunHTTPTestCases(t, []testutils.HTTPTestCase{
		{
			Name:           "Default",
			Method:         "GET",
			URL:            "/api/leaderboard/top_users/",
			Setup:          expectTop(0, []service.LeaderboardResponse{}),
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   []interface{}{},
		},
		{
			Name:   "Explicit",
			Method: "GET",
			URL:    "/api/leaderboard/top_users/?limit=3",
			Setup: expectTop(3, []service.LeaderboardResponse{
				{UserName: "Thor", TotalCalories: 900, TotalActivities: 3, Rank: 1},
			}),
			ExpectedStatus: http.StatusOK,
			ExpectedBody: []map[string]interface{}{{
				"id":               uuid.Nil.String(),
				"user_id":          "",
				"user_name":        "Thor",
				"team_id":          nil,
				"team_name":        nil,
				"total_calories":   900,
				"total_activities": 3,
				"rank":             1,
			}},
		},
		{
			Name:           "Negative passed through",
			Method:         "GET",
			URL:            "/api/leaderboard/top_users/?limit=-1",
			Setup:          expectTop(-1, []service.LeaderboardResponse{}),
			ExpectedStatus: http.StatusOK,
		},
	})

	t.Run("Non-numeric limit", func(t *testing.T) {
		recorder := httpSuite.MakeRequest("GET", "/api/leaderboard/top_users/?limit=ten", nil)

		testutils.AssertFieldError(t, recorder, "limit")
	})
}

func TestLeaderboardHandler_Recompute(t *testing.T) {
	mockService, httpSuite := setupLeaderboardHandler(t)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			Recompute(gomock.Any()).
			Return(&service.RecomputeResult{Rows: 10, Duration: 5 * time.Millisecond}, nil).
			Times(1)

		recorder := httpSuite.MakeRequest("POST", "/api/leaderboard/recompute/", nil)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.EqualValues(t, 10, response["rows"])
	})

	t.Run("Failure", func(t *testing.T) {
		mockService.EXPECT().
			Recompute(gomock.Any()).
			Return(nil, errors.New("failed to clear leaderboard: db down")).
			Times(1)

		recorder := httpSuite.MakeRequest("POST", "/api/leaderboard/recompute/", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "db down")
	})
}

func TestLeaderboardHandler_List(t *testing.T) {
	mockService, httpSuite := setupLeaderboardHandler(t)
	teamName := "Team Marvel"

	mockService.EXPECT().
		ListByRank().
		Return([]service.LeaderboardResponse{
			{UserName: "Thor Odinson", TeamName: &teamName, TotalCalories: 1200, Rank: 1},
			{UserName: "Steve Rogers", TotalCalories: 500, Rank: 2},
		}, nil).
		Times(1)

	recorder := httpSuite.MakeRequest("GET", "/api/leaderboard/", nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	require.Len(t, response, 2)
	assert.Equal(t, "Team Marvel", response[0]["team_name"])
	assert.Nil(t, response[1]["team_name"])
	assert.Contains(t, response[1], "team_id")
}

func TestLeaderboardHandler_Entries(t *testing.T) {
	mockService, httpSuite := setupLeaderboardHandler(t)
	id := uuid.New()

	mockService.EXPECT().
		CreateEntry(gomock.Any()).
		Return(&service.LeaderboardResponse{ID: id, UserName: "Someone"}, nil).
		Times(1)
	recorder := httpSuite.MakeRequest("POST", "/api/leaderboard/", map[string]interface{}{"user_id": "u", "user_name": "Someone"})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	mockService.EXPECT().GetEntryByID(id).Return(nil, apperrors.ErrLeaderboardNotFound).Times(1)
	recorder = httpSuite.MakeRequest("GET", "/api/leaderboard/"+id.String()+"/", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "leaderboard entry not found")

	mockService.EXPECT().
		UpdateEntry(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateLeaderboardRequest) (*service.LeaderboardResponse, error) {
			require.NotNil(t, req.Rank)
			assert.Equal(t, 7, *req.Rank)
			assert.Nil(t, req.UserName)
			return &service.LeaderboardResponse{ID: id, Rank: 7}, nil
		}).
		Times(1)
	recorder = httpSuite.MakeRequest("PATCH", "/api/leaderboard/"+id.String()+"/", map[string]interface{}{"rank": 7})
	assert.Equal(t, http.StatusOK, recorder.Code)

	mockService.EXPECT().
		UpdateEntry(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateLeaderboardRequest) (*service.LeaderboardResponse, error) {
			require.NotNil(t, req.TeamID)
			assert.Equal(t, "", *req.TeamID)
			return &service.LeaderboardResponse{ID: id}, nil
		}).
		Times(1)
	recorder = httpSuite.MakeRequest("PUT", "/api/leaderboard/"+id.String()+"/", map[string]interface{}{"user_id": "u", "user_name": "Someone"})
	assert.Equal(t, http.StatusOK, recorder.Code)

	mockService.EXPECT().DeleteEntry(id).Return(nil).Times(1)
	recorder = httpSuite.MakeRequest("DELETE", "/api/leaderboard/"+id.String()+"/", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
