package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Field string `json:"field,omitempty" example:"email"`
}

// respondError maps service errors onto status codes
func respondError(c *gin.Context, err error) {
	if v, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: v.Message, Field: v.Field})
		return
	}
	if apperrors.IsNotFound(err) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	logger.WithContext(c).WithError(err).WithFields(map[string]interface{}{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("request failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// respondBindError reports a body that could not be decoded
func respondBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "must be of type " + typeErr.Type.String(),
			Field: typeErr.Field,
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
}

// parseID reads the :id path parameter. A malformed id cannot name any
// record, so it is reported as notFound.
func parseID(c *gin.Context, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFound.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// optionalQuery returns a pointer to the query value, or nil when the key is absent
func optionalQuery(c *gin.Context, key string) *string {
	if value, ok := c.GetQuery(key); ok {
		return &value
	}
	return nil
}
