package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"octofit-backend/internal/database/models"
	apperrors "octofit-backend/internal/errors"
	"octofit-backend/internal/logger"
	"octofit-backend/internal/observability"
	"octofit-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultTopUsers = 10
	MaxTopUsers     = 100
)

// LeaderboardService rebuilds and serves the derived leaderboard
type LeaderboardService struct {
	repo         repository.LeaderboardRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	activityRepo repository.ActivityRepositoryInterface
	validator    *validator.Validate
	metrics      *observability.Metrics

	// serializes rebuilds; overlapping ones would each insert a full board
	rebuildMu sync.Mutex
}

// NewLeaderboardService creates a new leaderboard service. metrics may be nil.
func NewLeaderboardService(store *repository.Store, validator *validator.Validate, metrics *observability.Metrics) *LeaderboardService {
	return &LeaderboardService{
		repo:         store.Leaderboard,
		userRepo:     store.Users,
		teamRepo:     store.Teams,
		activityRepo: store.Activities,
		validator:    validator,
		metrics:      metrics,
	}
}

// CreateLeaderboardRequest represents a hand-written leaderboard row.
// Rows written this way are replaced by the next recompute.
type CreateLeaderboardRequest struct {
	UserID          string  `json:"user_id" validate:"required,max=50"`
	UserName        string  `json:"user_name" validate:"required,max=100"`
	TeamID          *string `json:"team_id,omitempty"`
	TeamName        *string `json:"team_name,omitempty" validate:"omitempty,max=100"`
	TotalCalories   int     `json:"total_calories" validate:"gte=0"`
	TotalActivities int     `json:"total_activities" validate:"gte=0"`
	Rank            int     `json:"rank" validate:"gte=0"`
}

// UpdateLeaderboardRequest represents a partial leaderboard row update
type UpdateLeaderboardRequest struct {
	UserID          *string `json:"user_id,omitempty" validate:"omitempty,min=1,max=50"`
	UserName        *string `json:"user_name,omitempty" validate:"omitempty,min=1,max=100"`
	TeamID          *string `json:"team_id,omitempty"`
	TeamName        *string `json:"team_name,omitempty" validate:"omitempty,max=100"`
	TotalCalories   *int    `json:"total_calories,omitempty" validate:"omitempty,gte=0"`
	TotalActivities *int    `json:"total_activities,omitempty" validate:"omitempty,gte=0"`
	Rank            *int    `json:"rank,omitempty" validate:"omitempty,gte=0"`
}

// AsUpdate converts a full replacement into an update that sets every field
func (r *CreateLeaderboardRequest) AsUpdate() *UpdateLeaderboardRequest {
	teamID, teamName := "", ""
	if r.TeamID != nil {
		teamID = *r.TeamID
	}
	if r.TeamName != nil {
		teamName = *r.TeamName
	}
	return &UpdateLeaderboardRequest{
		UserID:          &r.UserID,
		UserName:        &r.UserName,
		TeamID:          &teamID,
		TeamName:        &teamName,
		TotalCalories:   &r.TotalCalories,
		TotalActivities: &r.TotalActivities,
		Rank:            &r.Rank,
	}
}

// LeaderboardResponse represents one leaderboard row
type LeaderboardResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserID          models.UserRef  `json:"user_id" swaggertype:"string"`
	UserName        string          `json:"user_name"`
	TeamID          *models.TeamRef `json:"team_id" swaggertype:"string"`
	TeamName        *string         `json:"team_name"`
	TotalCalories   int             `json:"total_calories"`
	TotalActivities int             `json:"total_activities"`
	Rank            int             `json:"rank"`
}

// RecomputeResult summarizes a completed rebuild
type RecomputeResult struct {
	Rows     int           `json:"rows"`
	Duration time.Duration `json:"duration_ns" swaggertype:"integer"`
}

// Recompute rebuilds the leaderboard from users, teams and activities.
// Concurrent calls run one after another. The steps are not atomic: on error
// the board is left partially rebuilt.
func (s *LeaderboardService) Recompute(ctx context.Context) (*RecomputeResult, error) {
	log := logger.WithComponent(ctx, "leaderboard")

	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	start := time.Now()
	rows, err := s.rebuild(log)
	elapsed := time.Since(start)
	s.metrics.ObserveRecompute(rows, elapsed, err)

	if err != nil {
		log.WithError(err).Error("leaderboard recompute failed")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"rows":        rows,
		"duration_ms": elapsed.Milliseconds(),
	}).Info("leaderboard recomputed")

	return &RecomputeResult{Rows: rows, Duration: elapsed}, nil
}

func (s *LeaderboardService) rebuild(log *logger.Logger) (int, error) {
	if err := s.repo.DeleteAll(); err != nil {
		return 0, fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	totals, err := s.activityRepo.TotalsByUser()
	if err != nil {
		return 0, fmt.Errorf("failed to total activities: %w", err)
	}

	teams := make(map[models.TeamRef]*models.Team)
	for i := range users {
		user := &users[i]
		ref := models.NewUserRef(user.ID)
		sum := totals[ref]

		entry := &models.Leaderboard{
			UserID:          ref,
			UserName:        user.Name,
			TotalCalories:   sum.TotalCalories,
			TotalActivities: sum.TotalActivities,
			BuildOrder:      i,
		}

		if team := s.lookupTeam(log, teams, user.TeamID); team != nil {
			teamRef := models.NewTeamRef(team.ID)
			teamName := team.Name
			entry.TeamID = &teamRef
			entry.TeamName = &teamName
		}

		if err := s.repo.Create(entry); err != nil {
			return 0, fmt.Errorf("failed to insert leaderboard row for user %s: %w", user.ID, err)
		}
	}

	ordered, err := s.repo.GetByCalories(0)
	if err != nil {
		return 0, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	for i := range ordered {
		if err := s.repo.UpdateRank(ordered[i].ID, i+1); err != nil {
			return 0, fmt.Errorf("failed to rank leaderboard row %s: %w", ordered[i].ID, err)
		}
	}

	return len(ordered), nil
}

// lookupTeam resolves a team once per rebuild. Any failure degrades to no team.
func (s *LeaderboardService) lookupTeam(log *logger.Logger, cache map[models.TeamRef]*models.Team, ref *models.TeamRef) *models.Team {
	if ref == nil {
		return nil
	}
	if team, ok := cache[*ref]; ok {
		return team
	}

	team, found, err := resolveTeam(s.teamRepo, ref)
	if err != nil {
		log.WithError(err).WithField("team_id", string(*ref)).Warn("team lookup failed, leaving team fields empty")
	}
	if !found {
		team = nil
	}
	cache[*ref] = team
	return team
}

// Top returns up to n rows by total_calories descending, ignoring stored rank.
// n <= 0 means DefaultTopUsers; n is capped at MaxTopUsers.
func (s *LeaderboardService) Top(n int) ([]LeaderboardResponse, error) {
	if n <= 0 {
		n = DefaultTopUsers
	}
	if n > MaxTopUsers {
		n = MaxTopUsers
	}

	entries, err := s.repo.GetByCalories(n)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}
	return toLeaderboardResponses(entries), nil
}

// ListByRank returns every row ordered by stored rank
func (s *LeaderboardService) ListByRank() ([]LeaderboardResponse, error) {
	entries, err := s.repo.GetAllByRank()
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	return toLeaderboardResponses(entries), nil
}

// CreateEntry stores a hand-written row
func (s *LeaderboardService) CreateEntry(req *CreateLeaderboardRequest) (*LeaderboardResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	entry := &models.Leaderboard{
		UserID:          userRefFromInput(req.UserID),
		UserName:        req.UserName,
		TeamID:          teamRefFromInput(req.TeamID),
		TeamName:        optionalString(req.TeamName),
		TotalCalories:   req.TotalCalories,
		TotalActivities: req.TotalActivities,
		Rank:            req.Rank,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create leaderboard entry: %w", err)
	}
	return toLeaderboardResponse(entry), nil
}

// GetEntryByID retrieves a row by ID
func (s *LeaderboardService) GetEntryByID(id uuid.UUID) (*LeaderboardResponse, error) {
	entry, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toLeaderboardResponse(entry), nil
}

// UpdateEntry applies req to an existing row
func (s *LeaderboardService) UpdateEntry(id uuid.UUID, req *UpdateLeaderboardRequest) (*LeaderboardResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	entry, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.UserID != nil {
		entry.UserID = userRefFromInput(*req.UserID)
	}
	if req.UserName != nil {
		entry.UserName = *req.UserName
	}
	if req.TeamID != nil {
		entry.TeamID = teamRefFromInput(req.TeamID)
	}
	if req.TeamName != nil {
		entry.TeamName = optionalString(req.TeamName)
	}
	if req.TotalCalories != nil {
		entry.TotalCalories = *req.TotalCalories
	}
	if req.TotalActivities != nil {
		entry.TotalActivities = *req.TotalActivities
	}
	if req.Rank != nil {
		entry.Rank = *req.Rank
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update leaderboard entry: %w", err)
	}
	return toLeaderboardResponse(entry), nil
}

// DeleteEntry deletes a row
func (s *LeaderboardService) DeleteEntry(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete leaderboard entry: %w", err)
	}
	return nil
}

func (s *LeaderboardService) get(id uuid.UUID) (*models.Leaderboard, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderboardNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard entry: %w", err)
	}
	return entry, nil
}

// optionalString maps nil and "" to nil
func optionalString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func toLeaderboardResponse(entry *models.Leaderboard) *LeaderboardResponse {
	return &LeaderboardResponse{
		ID:              entry.ID,
		UserID:          entry.UserID,
		UserName:        entry.UserName,
		TeamID:          entry.TeamID,
		TeamName:        entry.TeamName,
		TotalCalories:   entry.TotalCalories,
		TotalActivities: entry.TotalActivities,
		Rank:            entry.Rank,
	}
}

func toLeaderboardResponses(entries []models.Leaderboard) []LeaderboardResponse {
	responses := make([]LeaderboardResponse, len(entries))
	for i := range entries {
		responses[i] = *toLeaderboardResponse(&entries[i])
	}
	return responses
}
