package handlers

import (
	"net/http"

	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService     service.UserServiceInterface
	activityService service.ActivityServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, activityService service.ActivityServiceInterface) *UserHandler {
	return &UserHandler{
		userService:     userService,
		activityService: activityService,
	}
}

// ListUsers handles GET /users/
// @Summary List all users
// @Description Get every user, oldest first
// @Tags users
// @Produce json
// @Success 200 {array} service.UserResponse "Successfully retrieved users"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/users/ [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users/
// @Summary Create a new user
// @Description Create a user; the email must be unused
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid request body or duplicate email"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/users/ [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /users/:id/
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/users/{id}/ [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ReplaceUser handles PUT /users/:id/
// @Summary Replace a user
// @Description Overwrite every writable field; a missing team_id clears the team
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.CreateUserRequest true "User data"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body or duplicate email"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/users/{id}/ [put]
func (h *UserHandler) ReplaceUser(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(id, req.AsUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PATCH /users/:id/
// @Summary Update a user
// @Description Change only the fields present in the body; a null or empty team_id clears the team
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body or duplicate email"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/users/{id}/ [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id/
// @Summary Delete a user
// @Description Activities and leaderboard rows that reference the user are kept
// @Tags users
// @Param id path string true "User ID (UUID)"
// @Success 204 "User deleted"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/users/{id}/ [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserActivities handles GET /users/:id/activities/
// @Summary List a user's activities
// @Description Activities whose user_id equals the path id; empty when there are none
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} service.ActivityResponse "Successfully retrieved activities"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/users/{id}/activities/ [get]
func (h *UserHandler) GetUserActivities(c *gin.Context) {
	activities, err := h.activityService.ListActivitiesByUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
