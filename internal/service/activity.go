package service

import (
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

// ActivityService handles business logic for activities
type ActivityService struct {
	repo      repository.ActivityRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *ActivityService {
	return &ActivityService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateActivityRequest represents the request to log an activity.
// user_id is not checked against existing users.
type CreateActivityRequest struct {
	UserID       string     `json:"user_id" validate:"required,max=50"`
	ActivityType string     `json:"activity_type" validate:"required,max=50" example:"Running"`
	Duration     int        `json:"duration" validate:"gte=0" example:"45"`
	Calories     int        `json:"calories" validate:"gte=0" example:"450"`
	Date         *time.Time `json:"date,omitempty"`
	Notes        string     `json:"notes"`
}

// UpdateActivityRequest represents a partial activity update
type UpdateActivityRequest struct {
	UserID       *string    `json:"user_id,omitempty" validate:"omitempty,min=1,max=50"`
	ActivityType *string    `json:"activity_type,omitempty" validate:"omitempty,min=1,max=50"`
	Duration     *int       `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Calories     *int       `json:"calories,omitempty" validate:"omitempty,gte=0"`
	Date         *time.Time `json:"date,omitempty"`
	Notes        *string    `json:"notes,omitempty"`

	// set by AsUpdate: a replacement without a date gets the current time
	resetDate bool
}

// AsUpdate converts a full replacement into an update that sets every field.
// A missing date is replaced with now, as on create.
func (r *CreateActivityRequest) AsUpdate() *UpdateActivityRequest {
	return &UpdateActivityRequest{
		UserID:       &r.UserID,
		ActivityType: &r.ActivityType,
		Duration:     &r.Duration,
		Calories:     &r.Calories,
		Date:         r.Date,
		Notes:        &r.Notes,
		resetDate:    r.Date == nil,
	}
}

// ActivityResponse represents an activity with the resolved user name
type ActivityResponse struct {
	ID           uuid.UUID      `json:"id"`
	UserID       models.UserRef `json:"user_id" swaggertype:"string"`
	UserName     string         `json:"user_name"`
	ActivityType string         `json:"activity_type"`
	Duration     int            `json:"duration"`
	Calories     int            `json:"calories"`
	Date         time.Time      `json:"date"`
	Notes        string         `json:"notes"`
}

// CreateActivity logs a new activity; date defaults to now
func (s *ActivityService) CreateActivity(req *CreateActivityRequest) (*ActivityResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}

	activity := &models.Activity{
		UserID:       userRefFromInput(req.UserID),
		ActivityType: req.ActivityType,
		Duration:     req.Duration,
		Calories:     req.Calories,
		Date:         date,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return s.toResponse(activity)
}

// GetActivityByID retrieves an activity by ID
func (s *ActivityService) GetActivityByID(id uuid.UUID) (*ActivityResponse, error) {
	activity, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(activity)
}

// ListActivities retrieves every activity, narrowed to one user when userID is set
func (s *ActivityService) ListActivities(userID *string) ([]ActivityResponse, error) {
	if userID != nil {
		return s.ListActivitiesByUser(*userID)
	}

	activities, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return s.toResponses(activities)
}

// ListActivitiesByUser retrieves the activities logged under userID.
// An unknown user yields an empty list.
func (s *ActivityService) ListActivitiesByUser(userID string) ([]ActivityResponse, error) {
	activities, err := s.repo.GetByUserID(userRefFromInput(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for user: %w", err)
	}
	return s.toResponses(activities)
}

// UpdateActivity applies req to an existing activity
func (s *ActivityService) UpdateActivity(id uuid.UUID, req *UpdateActivityRequest) (*ActivityResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	activity, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.UserID != nil {
		activity.UserID = userRefFromInput(*req.UserID)
	}
	if req.ActivityType != nil {
		activity.ActivityType = *req.ActivityType
	}
	if req.Duration != nil {
		activity.Duration = *req.Duration
	}
	if req.Calories != nil {
		activity.Calories = *req.Calories
	}
	if req.Date != nil {
		activity.Date = *req.Date
	} else if req.resetDate {
		activity.Date = s.now()
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}

	if err := s.repo.Update(activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	return s.toResponse(activity)
}

// DeleteActivity deletes an activity
func (s *ActivityService) DeleteActivity(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

func (s *ActivityService) get(id uuid.UUID) (*models.Activity, error) {
	activity, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return activity, nil
}

func (s *ActivityService) toResponse(activity *models.Activity) (*ActivityResponse, error) {
	responses, err := s.toResponses([]models.Activity{*activity})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// toResponses resolves each distinct user reference once
func (s *ActivityService) toResponses(activities []models.Activity) ([]ActivityResponse, error) {
	names := make(map[models.UserRef]string)
	responses := make([]ActivityResponse, len(activities))

	for i, a := range activities {
		name, seen := names[a.UserID]
		if !seen {
			user, found, err := resolveUser(s.userRepo, a.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve user: %w", err)
			}
			name = UnknownUserName
			if found {
				name = user.Name
			}
			names[a.UserID] = name
		}

		responses[i] = ActivityResponse{
			ID:           a.ID,
			UserID:       a.UserID,
			UserName:     name,
			ActivityType: a.ActivityType,
			Duration:     a.Duration,
			Calories:     a.Calories,
			Date:         a.Date,
			Notes:        a.Notes,
		}
	}
	return responses, nil
}
