package handlers

import (
	"net/http"
	"strconv"

	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles HTTP requests for the leaderboard
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService service.LeaderboardServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// ListLeaderboard handles GET /leaderboard/
// @Summary List the leaderboard
// @Description Every row ordered by stored rank
// @Tags leaderboard
// @Produce json
// @Success 200 {array} service.LeaderboardResponse "Successfully retrieved leaderboard"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leaderboard/ [get]
func (h *LeaderboardHandler) ListLeaderboard(c *gin.Context) {
	entries, err := h.leaderboardService.ListByRank()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// TopUsers handles GET /leaderboard/top_users/
// @Summary Top users by calories
// @Description Rows by total_calories descending regardless of stored rank. limit defaults to 10 and is capped at 100.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of rows" default(10)
// @Success 200 {array} service.LeaderboardResponse "Successfully retrieved top users"
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leaderboard/top_users/ [get]
func (h *LeaderboardHandler) TopUsers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, apperrors.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	entries, err := h.leaderboardService.Top(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Recompute handles POST /leaderboard/recompute/
// @Summary Rebuild the leaderboard
// @Description Replace every row with fresh totals from users, teams and activities
// @Tags leaderboard
// @Produce json
// @Success 200 {object} service.RecomputeResult "Leaderboard rebuilt"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leaderboard/recompute/ [post]
func (h *LeaderboardHandler) Recompute(c *gin.Context) {
	result, err := h.leaderboardService.Recompute(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateEntry handles POST /leaderboard/
// @Summary Create a leaderboard row
// @Description Hand-written rows are replaced by the next recompute
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param entry body service.CreateLeaderboardRequest true "Leaderboard row"
// @Success 201 {object} service.LeaderboardResponse "Successfully created row"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leaderboard/ [post]
func (h *LeaderboardHandler) CreateEntry(c *gin.Context) {
	var req service.CreateLeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.leaderboardService.CreateEntry(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetEntry handles GET /leaderboard/:id/
// @Summary Get leaderboard row by ID
// @Tags leaderboard
// @Produce json
// @Param id path string true "Row ID (UUID)"
// @Success 200 {object} service.LeaderboardResponse "Successfully retrieved row"
// @Failure 404 {object} ErrorResponse "Row not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leaderboard/{id}/ [get]
func (h *LeaderboardHandler) GetEntry(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrLeaderboardNotFound)
	if !ok {
		return
	}

	entry, err := h.leaderboardService.GetEntryByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ReplaceEntry handles PUT /leaderboard/:id/
// @Summary Replace a leaderboard row
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Row ID (UUID)"
// @Param entry body service.CreateLeaderboardRequest true "Leaderboard row"
// @Success 200 {object} service.LeaderboardResponse "Successfully updated row"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Row not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leaderboard/{id}/ [put]
func (h *LeaderboardHandler) ReplaceEntry(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrLeaderboardNotFound)
	if !ok {
		return
	}

	var req service.CreateLeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.leaderboardService.UpdateEntry(id, req.AsUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles PATCH /leaderboard/:id/
// @Summary Update a leaderboard row
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Row ID (UUID)"
// @Param entry body service.UpdateLeaderboardRequest true "Fields to change"
// @Success 200 {object} service.LeaderboardResponse "Successfully updated row"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Row not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leaderboard/{id}/ [patch]
func (h *LeaderboardHandler) UpdateEntry(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrLeaderboardNotFound)
	if !ok {
		return
	}

	var req service.UpdateLeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.leaderboardService.UpdateEntry(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /leaderboard/:id/
// @Summary Delete a leaderboard row
// @Tags leaderboard
// @Param id path string true "Row ID (UUID)"
// @Success 204 "Row deleted"
// @Failure 404 {object} ErrorResponse "Row not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/leaderboard/{id}/ [delete]
func (h *LeaderboardHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrLeaderboardNotFound)
	if !ok {
		return
	}

	if err := h.leaderboardService.DeleteEntry(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
