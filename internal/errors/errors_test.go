package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "workout"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrUserNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup: %w", ErrActivityNotFound)
		assert.True(t, errors.Is(wrapped, ErrActivityNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrLeaderboardNotFound))
		assert.False(t, IsNotFound(ErrUserEmailExists))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(fmt.Errorf("create user: %w", ErrUserEmailExists)))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})

	t.Run("AsValidation exposes the field", func(t *testing.T) {
		v, ok := AsValidation(fmt.Errorf("wrapped: %w", ErrUserEmailExists))
		assert.True(t, ok)
		assert.Equal(t, "email", v.Field)

		_, ok = AsValidation(ErrUserNotFound)
		assert.False(t, ok)
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("bad driver")
		assert.Equal(t, "bad driver", err.Error())

		var configErr *ConfigurationError
		assert.True(t, errors.As(fmt.Errorf("load: %w", err), &configErr))
	})
}
