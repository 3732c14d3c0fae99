package handlers

import (
	"net/http"

	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams/
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams/ [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam handles POST /teams/
// @Summary Create a new team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams/ [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	team, err := h.teamService.CreateTeam(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id/
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams/{id}/ [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrTeamNotFound)
	if !ok {
		return
	}

	team, err := h.teamService.GetTeamByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// ReplaceTeam handles PUT /teams/:id/
// @Summary Replace a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams/{id}/ [put]
func (h *TeamHandler) ReplaceTeam(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrTeamNotFound)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	team, err := h.teamService.UpdateTeam(id, req.AsUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PATCH /teams/:id/
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams/{id}/ [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrTeamNotFound)
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	team, err := h.teamService.UpdateTeam(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id/
// @Summary Delete a team
// @Description Users keep their team_id, which then dangles
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams/{id}/ [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrTeamNotFound)
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTeamMembers handles GET /teams/:id/members/
// @Summary List team members
// @Description Users whose team_id equals the path id
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} service.UserResponse "Successfully retrieved members"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/teams/{id}/members/ [get]
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	members, err := h.teamService.GetTeamMembers(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
