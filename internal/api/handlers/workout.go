package handlers

import (
	"net/http"

	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler handles HTTP requests for the workout catalog
type WorkoutHandler struct {
	workoutService service.WorkoutServiceInterface
}

// NewWorkoutHandler creates a new workout handler
func NewWorkoutHandler(workoutService service.WorkoutServiceInterface) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
	}
}

// ListWorkouts handles GET /workouts/
// @Summary List workouts
// @Description The catalog in insertion order, optionally narrowed to one difficulty
// @Tags workouts
// @Produce json
// @Param difficulty query string false "beginner, intermediate or advanced"
// @Success 200 {array} service.WorkoutResponse "Successfully retrieved workouts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/workouts/ [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(optionalQuery(c, "difficulty"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// ByDifficulty handles GET /workouts/by_difficulty/
// @Summary Workouts grouped by difficulty
// @Tags workouts
// @Produce json
// @Success 200 {object} service.WorkoutsByDifficultyResponse "Catalog partitioned by difficulty"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/workouts/by_difficulty/ [get]
func (h *WorkoutHandler) ByDifficulty(c *gin.Context) {
	grouped, err := h.workoutService.GroupByDifficulty()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// CreateWorkout handles POST /workouts/
// @Summary Add a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param workout body service.CreateWorkoutRequest true "Workout data"
// @Success 201 {object} service.WorkoutResponse "Successfully created workout"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/workouts/ [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req service.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	workout, err := h.workoutService.CreateWorkout(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// GetWorkout handles GET /workouts/:id/
// @Summary Get workout by ID
// @Tags workouts
// @Produce json
// @Param id path string true "Workout ID (UUID)"
// @Success 200 {object} service.WorkoutResponse "Successfully retrieved workout"
// @Failure 404 {object} ErrorResponse "Workout not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/workouts/{id}/ [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrWorkoutNotFound)
	if !ok {
		return
	}

	workout, err := h.workoutService.GetWorkoutByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// ReplaceWorkout handles PUT /workouts/:id/
// @Summary Replace a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID (UUID)"
// @Param workout body service.CreateWorkoutRequest true "Workout data"
// @Success 200 {object} service.WorkoutResponse "Successfully updated workout"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Workout not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/workouts/{id}/ [put]
func (h *WorkoutHandler) ReplaceWorkout(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrWorkoutNotFound)
	if !ok {
		return
	}

	var req service.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	workout, err := h.workoutService.UpdateWorkout(id, req.AsUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout handles PATCH /workouts/:id/
// @Summary Update a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID (UUID)"
// @Param workout body service.UpdateWorkoutRequest true "Fields to change"
// @Success 200 {object} service.WorkoutResponse "Successfully updated workout"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Workout not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/workouts/{id}/ [patch]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrWorkoutNotFound)
	if !ok {
		return
	}

	var req service.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	workout, err := h.workoutService.UpdateWorkout(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout handles DELETE /workouts/:id/
// @Summary Delete a workout
// @Tags workouts
// @Param id path string true "Workout ID (UUID)"
// @Success 204 "Workout deleted"
// @Failure 404 {object} ErrorResponse "Workout not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/workouts/{id}/ [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrWorkoutNotFound)
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
