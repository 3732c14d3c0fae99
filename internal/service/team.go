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

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"Team Marvel"`
	Description string `json:"description" example:"Earth's Mightiest Heroes fighting for fitness!"`
}

// UpdateTeamRequest represents a partial team update
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// AsUpdate converts a full replacement into an update that sets every field
func (r *CreateTeamRequest) AsUpdate() *UpdateTeamRequest {
	return &UpdateTeamRequest{
		Name:        &r.Name,
		Description: &r.Description,
	}
}

// TeamResponse represents a team with its live member count
type TeamResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	MembersCount int64     `json:"members_count"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team)
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(team)
}

// ListTeams retrieves every team
func (s *TeamService) ListTeams() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp, err := s.toResponse(&teams[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// UpdateTeam applies req to an existing team
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team)
}

// DeleteTeam deletes a team. Users keep their team_id, which then dangles.
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// GetTeamMembers returns the users whose team_id equals teamID.
// The team itself does not have to exist.
func (s *TeamService) GetTeamMembers(teamID string) ([]UserResponse, error) {
	ref := teamRefFromInput(&teamID)
	if ref == nil {
		return []UserResponse{}, nil
	}

	users, err := s.userRepo.GetByTeamID(*ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return toUserResponses(users), nil
}

func (s *TeamService) get(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *TeamService) toResponse(team *models.Team) (*TeamResponse, error) {
	count, err := s.userRepo.CountByTeamID(models.NewTeamRef(team.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}
	return &TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		Description:  team.Description,
		CreatedAt:    team.CreatedAt,
		MembersCount: count,
	}, nil
}
