package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"octofit-backend/internal/api/routes"
	"octofit-backend/internal/config"
	"octofit-backend/internal/repository/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return routes.SetupRoutes(ctx, routes.Dependencies{
		Store:  memory.NewStore(),
		Config: cfg,
	})
}

func defaultConfig() *config.Config {
	return &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func TestIndexLinks(t *testing.T) {
	r := newRouter(t, defaultConfig())

	for _, path := range []string{"/", "/api/"} {
		w := do(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)

		var links map[string]string
		decode(t, w, &links)
		assert.Len(t, links, 5)
		assert.Equal(t, "http://example.com/api/users/", links["users"])
		assert.Equal(t, "http://example.com/api/workouts/", links["workouts"])
	}
}

func TestOperationalRoutes(t *testing.T) {
	r := newRouter(t, defaultConfig())

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health/ready", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health/live", "").Code)

	do(r, http.MethodGet, "/api/users/", "")
	metrics := do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "octofit_http_requests_total")

	w := do(r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
}

func TestSlashlessPathRedirects(t *testing.T) {
	r := newRouter(t, defaultConfig())

	w := do(r, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/api/users/", w.Header().Get("Location"))
}

func TestEndToEndLeaderboardFlow(t *testing.T) {
	r := newRouter(t, defaultConfig())

	w := do(r, http.MethodPost, "/api/teams/", `{"name":"Team Marvel","description":"Avengers"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var team map[string]interface{}
	decode(t, w, &team)
	teamID := team["id"].(string)

	w = do(r, http.MethodPost, "/api/users/", `{"email":"tony.stark@avengers.com","name":"Tony Stark","team_id":"`+teamID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var tony map[string]interface{}
	decode(t, w, &tony)
	assert.Equal(t, "tony.stark", tony["username"])
	assert.Equal(t, "Tony", tony["first_name"])
	assert.Equal(t, "Stark", tony["last_name"])

	w = do(r, http.MethodPost, "/api/users/", `{"email":"tony.stark@avengers.com","name":"Impostor"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var problem map[string]string
	decode(t, w, &problem)
	assert.Equal(t, "email", problem["field"])

	w = do(r, http.MethodPost, "/api/users/", `{"email":"steve.rogers@avengers.com","name":"Steve Rogers"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var steve map[string]interface{}
	decode(t, w, &steve)

	for _, body := range []string{
		`{"user_id":"` + steve["id"].(string) + `","activity_type":"Running","duration":20,"calories":200}`,
		`{"user_id":"` + steve["id"].(string) + `","activity_type":"Yoga","duration":30,"calories":300}`,
		`{"user_id":"` + tony["id"].(string) + `","activity_type":"Boxing","duration":60,"calories":1200}`,
	} {
		require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/activities/", body).Code)
	}

	w = do(r, http.MethodPost, "/api/leaderboard/recompute/", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/leaderboard/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var board []map[string]interface{}
	decode(t, w, &board)
	require.Len(t, board, 2)
	assert.Equal(t, "Tony Stark", board[0]["user_name"])
	assert.Equal(t, "Team Marvel", board[0]["team_name"])
	assert.EqualValues(t, 1, board[0]["rank"])
	assert.EqualValues(t, 500, board[1]["total_calories"])
	assert.Nil(t, board[1]["team_id"])

	w = do(r, http.MethodGet, "/api/leaderboard/top_users/?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var top []map[string]interface{}
	decode(t, w, &top)
	require.Len(t, top, 1)
	assert.EqualValues(t, 1200, top[0]["total_calories"])

	w = do(r, http.MethodGet, "/api/teams/"+teamID+"/", "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &team)
	assert.EqualValues(t, 1, team["members_count"])

	w = do(r, http.MethodGet, "/api/users/"+steve["id"].(string)+"/activities/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var activities []map[string]interface{}
	decode(t, w, &activities)
	assert.Len(t, activities, 2)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/api/users/"+steve["id"].(string)+"/", "").Code)
	w = do(r, http.MethodGet, "/api/activities/", "")
	decode(t, w, &activities)
	unknown := 0
	for _, a := range activities {
		if a["user_name"] == "Unknown User" {
			unknown++
		}
	}
	assert.Equal(t, 2, unknown)
}

func TestMalformedIDIsNotFound(t *testing.T) {
	r := newRouter(t, defaultConfig())

	for _, path := range []string{"/api/users/abc/", "/api/teams/abc/", "/api/activities/abc/", "/api/leaderboard/abc/", "/api/workouts/abc/"} {
		assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, path, "").Code, path)
	}
}

func TestRateLimitAppliesToAPI(t *testing.T) {
	cfg := defaultConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	r := newRouter(t, cfg)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/workouts/", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/api/workouts/", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health/live", "").Code)
}
