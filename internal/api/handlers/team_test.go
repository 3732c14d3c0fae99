package handlers_test

import (
	"net/http"
	"testing"

	"octofit-backend/internal/api/handlers"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/mocks"
	"octofit-backend/internal/service"
	"octofit-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	teams := suite.httpSuite.Router.Group("/api/teams")
	{
		teams.GET("/", suite.handler.ListTeams)
		teams.POST("/", suite.handler.CreateTeam)
		teams.GET("/:id/", suite.handler.GetTeam)
		teams.PUT("/:id/", suite.handler.ReplaceTeam)
		teams.PATCH("/:id/", suite.handler.UpdateTeam)
		teams.DELETE("/:id/", suite.handler.DeleteTeam)
		teams.GET("/:id/members/", suite.handler.GetTeamMembers)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any()).
			Return(&service.TeamResponse{ID: id, Name: "Team Marvel"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/", map[string]interface{}{
			"name":        "Team Marvel",
			"description": "Earth's Mightiest Heroes fighting for fitness!",
		})

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, id, response.ID)
		assert.Equal(t, int64(0), response.MembersCount)
	})

	suite.T().Run("Missing name", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "this field is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/", map[string]interface{}{})

		testutils.AssertFieldError(t, recorder, "name")
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success with member count", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			GetTeamByID(id).
			Return(&service.TeamResponse{ID: id, Name: "Team DC", MembersCount: 5}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+id.String()+"/", nil)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.EqualValues(t, 5, response["members_count"])
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetTeamByID(id).Return(nil, apperrors.ErrTeamNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+id.String()+"/", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.mockService.EXPECT().ListTeams().Return([]service.TeamResponse{}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`[]`, recorder.Body.String())
}

func (suite *TeamHandlerTestSuite) TestReplaceAndUpdateTeam() {
	id := uuid.New()

	suite.mockService.EXPECT().
		UpdateTeam(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateTeamRequest) (*service.TeamResponse, error) {
			suite.Require().NotNil(req.Description)
			suite.Equal("", *req.Description)
			return &service.TeamResponse{ID: id, Name: *req.Name}, nil
		}).
		Times(1)
	recorder := suite.httpSuite.MakeRequest("PUT", "/api/teams/"+id.String()+"/", map[string]interface{}{"name": "Justice League"})
	suite.Equal(http.StatusOK, recorder.Code)

	suite.mockService.EXPECT().
		UpdateTeam(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateTeamRequest) (*service.TeamResponse, error) {
			suite.Nil(req.Name)
			return &service.TeamResponse{ID: id}, nil
		}).
		Times(1)
	recorder = suite.httpSuite.MakeRequest("PATCH", "/api/teams/"+id.String()+"/", map[string]interface{}{"description": "new"})
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteTeam(id).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/"+id.String()+"/", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	recorder = suite.httpSuite.MakeRequest("DELETE", "/api/teams/bad/", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestGetTeamMembers() {
	id := uuid.New().String()
	suite.mockService.EXPECT().
		GetTeamMembers(id).
		Return([]service.UserResponse{{Name: "Diana Prince"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+id+"/members/", nil)

	var response []service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("Diana Prince", response[0].Name)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
