package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"octofit-backend/internal/database/models"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutService handles business logic for the workout catalog
type WorkoutService struct {
	repo      repository.WorkoutRepositoryInterface
	validator *validator.Validate
}

// NewWorkoutService creates a new workout service
func NewWorkoutService(repo repository.WorkoutRepositoryInterface, validator *validator.Validate) *WorkoutService {
	return &WorkoutService{
		repo:      repo,
		validator: validator,
	}
}

// CreateWorkoutRequest represents the request to add a workout.
// exercises is any JSON array; its items are not inspected.
type CreateWorkoutRequest struct {
	Name             string            `json:"name" validate:"required,max=100" example:"Avenger HIIT"`
	Description      string            `json:"description" validate:"required"`
	Difficulty       models.Difficulty `json:"difficulty" validate:"required,oneof=beginner intermediate advanced" example:"advanced"`
	Duration         int               `json:"duration" validate:"gte=0" example:"45"`
	CaloriesEstimate int               `json:"calories_estimate" validate:"gte=0" example:"600"`
	Exercises        json.RawMessage   `json:"exercises" swaggertype:"array,object"`
}

// UpdateWorkoutRequest represents a partial workout update
type UpdateWorkoutRequest struct {
	Name             *string            `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description      *string            `json:"description,omitempty" validate:"omitempty,min=1"`
	Difficulty       *models.Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration         *int               `json:"duration,omitempty" validate:"omitempty,gte=0"`
	CaloriesEstimate *int               `json:"calories_estimate,omitempty" validate:"omitempty,gte=0"`
	Exercises        json.RawMessage    `json:"exercises,omitempty" swaggertype:"array,object"`
}

// AsUpdate converts a full replacement into an update that sets every field
func (r *CreateWorkoutRequest) AsUpdate() *UpdateWorkoutRequest {
	exercises := r.Exercises
	if len(exercises) == 0 {
		exercises = json.RawMessage("[]")
	}
	return &UpdateWorkoutRequest{
		Name:             &r.Name,
		Description:      &r.Description,
		Difficulty:       &r.Difficulty,
		Duration:         &r.Duration,
		CaloriesEstimate: &r.CaloriesEstimate,
		Exercises:        exercises,
	}
}

// WorkoutResponse represents one catalog entry
type WorkoutResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Difficulty       models.Difficulty `json:"difficulty"`
	Duration         int               `json:"duration"`
	CaloriesEstimate int               `json:"calories_estimate"`
	Exercises        json.RawMessage   `json:"exercises" swaggertype:"array,object"`
}

// WorkoutsByDifficultyResponse partitions the catalog. Empty groups are [] not null.
type WorkoutsByDifficultyResponse struct {
	Beginner     []WorkoutResponse `json:"beginner"`
	Intermediate []WorkoutResponse `json:"intermediate"`
	Advanced     []WorkoutResponse `json:"advanced"`
}

// CreateWorkout adds a workout to the catalog
func (s *WorkoutService) CreateWorkout(req *CreateWorkoutRequest) (*WorkoutResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	exercises, err := normalizeExercises(req.Exercises)
	if err != nil {
		return nil, err
	}

	workout := &models.Workout{
		Name:             req.Name,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		Duration:         req.Duration,
		CaloriesEstimate: req.CaloriesEstimate,
		Exercises:        exercises,
	}
	if err := s.repo.Create(workout); err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return toWorkoutResponse(workout), nil
}

// GetWorkoutByID retrieves a workout by ID
func (s *WorkoutService) GetWorkoutByID(id uuid.UUID) (*WorkoutResponse, error) {
	workout, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toWorkoutResponse(workout), nil
}

// ListWorkouts retrieves the catalog, narrowed to one difficulty when set.
// An unrecognised difficulty matches nothing.
func (s *WorkoutService) ListWorkouts(difficulty *string) ([]WorkoutResponse, error) {
	var (
		workouts []models.Workout
		err      error
	)
	if difficulty != nil {
		workouts, err = s.repo.GetByDifficulty(models.Difficulty(*difficulty))
	} else {
		workouts, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return toWorkoutResponses(workouts), nil
}

// GroupByDifficulty partitions the whole catalog, keeping catalog order within each group
func (s *WorkoutService) GroupByDifficulty() (*WorkoutsByDifficultyResponse, error) {
	workouts, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	grouped := &WorkoutsByDifficultyResponse{
		Beginner:     []WorkoutResponse{},
		Intermediate: []WorkoutResponse{},
		Advanced:     []WorkoutResponse{},
	}
	for i := range workouts {
		resp := *toWorkoutResponse(&workouts[i])
		switch workouts[i].Difficulty {
		case models.DifficultyBeginner:
			grouped.Beginner = append(grouped.Beginner, resp)
		case models.DifficultyIntermediate:
			grouped.Intermediate = append(grouped.Intermediate, resp)
		case models.DifficultyAdvanced:
			grouped.Advanced = append(grouped.Advanced, resp)
		}
	}
	return grouped, nil
}

// UpdateWorkout applies req to an existing workout
func (s *WorkoutService) UpdateWorkout(id uuid.UUID, req *UpdateWorkoutRequest) (*WorkoutResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	workout, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		workout.Name = *req.Name
	}
	if req.Description != nil {
		workout.Description = *req.Description
	}
	if req.Difficulty != nil {
		workout.Difficulty = *req.Difficulty
	}
	if req.Duration != nil {
		workout.Duration = *req.Duration
	}
	if req.CaloriesEstimate != nil {
		workout.CaloriesEstimate = *req.CaloriesEstimate
	}
	if len(req.Exercises) > 0 {
		exercises, err := normalizeExercises(req.Exercises)
		if err != nil {
			return nil, err
		}
		workout.Exercises = exercises
	}

	if err := s.repo.Update(workout); err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}
	return toWorkoutResponse(workout), nil
}

// DeleteWorkout removes a workout from the catalog
func (s *WorkoutService) DeleteWorkout(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil
}

func (s *WorkoutService) get(id uuid.UUID) (*models.Workout, error) {
	workout, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	return workout, nil
}

// normalizeExercises accepts a JSON array (or nothing, meaning empty)
func normalizeExercises(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage("[]"), nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, apperrors.NewValidationError("exercises", "must be a JSON array")
	}
	return json.RawMessage(trimmed), nil
}

func toWorkoutResponse(workout *models.Workout) *WorkoutResponse {
	exercises := workout.Exercises
	if len(exercises) == 0 {
		exercises = json.RawMessage("[]")
	}
	return &WorkoutResponse{
		ID:               workout.ID,
		Name:             workout.Name,
		Description:      workout.Description,
		Difficulty:       workout.Difficulty,
		Duration:         workout.Duration,
		CaloriesEstimate: workout.CaloriesEstimate,
		Exercises:        exercises,
	}
}

func toWorkoutResponses(workouts []models.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = *toWorkoutResponse(&workouts[i])
	}
	return responses
}
