package handlers

import (
	"net/http"

	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for activity operations
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListActivities handles GET /activities/
// @Summary List activities
// @Description Most recent first, optionally narrowed to one user
// @Tags activities
// @Produce json
// @Param user_id query string false "Only activities of this user"
// @Success 200 {array} service.ActivityResponse "Successfully retrieved activities"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/activities/ [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activityService.ListActivities(optionalQuery(c, "user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// CreateActivity handles POST /activities/
// @Summary Log an activity
// @Description date defaults to now; user_id is not checked
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} service.ActivityResponse "Successfully created activity"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/activities/ [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	activity, err := h.activityService.CreateActivity(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// GetActivity handles GET /activities/:id/
// @Summary Get activity by ID
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} service.ActivityResponse "Successfully retrieved activity"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/activities/{id}/ [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrActivityNotFound)
	if !ok {
		return
	}

	activity, err := h.activityService.GetActivityByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// ReplaceActivity handles PUT /activities/:id/
// @Summary Replace an activity
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 200 {object} service.ActivityResponse "Successfully updated activity"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/activities/{id}/ [put]
func (h *ActivityHandler) ReplaceActivity(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrActivityNotFound)
	if !ok {
		return
	}

	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	activity, err := h.activityService.UpdateActivity(id, req.AsUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// UpdateActivity handles PATCH /activities/:id/
// @Summary Update an activity
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param activity body service.UpdateActivityRequest true "Fields to change"
// @Success 200 {object} service.ActivityResponse "Successfully updated activity"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/activities/{id}/ [patch]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrActivityNotFound)
	if !ok {
		return
	}

	var req service.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	activity, err := h.activityService.UpdateActivity(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// DeleteActivity handles DELETE /activities/:id/
// @Summary Delete an activity
// @Description Leaderboard totals change only on the next recompute
// @Tags activities
// @Param id path string true "Activity ID (UUID)"
// @Success 204 "Activity deleted"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/activities/{id}/ [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrActivityNotFound)
	if !ok {
		return
	}

	if err := h.activityService.DeleteActivity(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
