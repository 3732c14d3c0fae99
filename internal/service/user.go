package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"octofit-backend/internal/database/models"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Email  string  `json:"email" validate:"required,email,max=254" example:"tony.stark@avengers.com"`
	Name   string  `json:"name" validate:"required,max=100" example:"Tony Stark"`
	TeamID *string `json:"team_id,omitempty"`
}

// UpdateUserRequest represents a partial user update. Absent fields are left
// unchanged; a null or empty team_id clears the team.
type UpdateUserRequest struct {
	Email  *string        `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Name   *string        `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TeamID NullableString `json:"team_id" swaggertype:"string"`
}

// NullableString distinguishes an absent JSON field (Set false) from an
// explicit null (Set true, Value nil).
type NullableString struct {
	Set   bool
	Value *string
}

// SetString returns a NullableString carrying v
func SetString(v string) NullableString {
	return NullableString{Set: true, Value: &v}
}

// UnmarshalJSON records that the field was present, null included
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// AsUpdate converts a full replacement into an update that sets every field
func (r *CreateUserRequest) AsUpdate() *UpdateUserRequest {
	return &UpdateUserRequest{
		Email:  &r.Email,
		Name:   &r.Name,
		TeamID: NullableString{Set: true, Value: r.TeamID},
	}
}

// UserResponse represents a user with its derived convenience fields
type UserResponse struct {
	ID         uuid.UUID       `json:"id"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	TeamID     *models.TeamRef `json:"team_id" swaggertype:"string"`
	CreatedAt  time.Time       `json:"created_at"`
	Username   string          `json:"username"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	DateJoined time.Time       `json:"date_joined"`
}

// CreateUser creates a new user; the email must not belong to another user
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(req.Email, uuid.Nil); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:  req.Email,
		Name:   req.Name,
		TeamID: teamRefFromInput(req.TeamID),
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers retrieves every user
func (s *UserService) ListUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return toUserResponses(users), nil
}

// UpdateUser applies req to an existing user. created_at is never touched.
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.ensureEmailFree(*req.Email, user.ID); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.TeamID.Set {
		user.TeamID = teamRefFromInput(req.TeamID.Value)
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserEmailExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return toUserResponse(user), nil
}

// DeleteUser deletes a user. Activities and leaderboard rows that reference it are kept.
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) get(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ensureEmailFree fails when email belongs to a user other than self
func (s *UserService) ensureEmailFree(email string, self uuid.UUID) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrUserEmailExists
	}
	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	first, last := SplitName(user.Name)
	return &UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		TeamID:     user.TeamID,
		CreatedAt:  user.CreatedAt,
		Username:   Username(user.Email),
		FirstName:  first,
		LastName:   last,
		DateJoined: user.CreatedAt,
	}
}

func toUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses
}
