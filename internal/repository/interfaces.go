package repository

import (
	"context"

	"octofit-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetByTeamID(teamID models.TeamRef) ([]models.User, error)
	CountByTeamID(teamID models.TeamRef) (int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	DeleteAll() error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	DeleteAll() error
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(activity *models.Activity) error
	GetByID(id uuid.UUID) (*models.Activity, error)
	GetAll() ([]models.Activity, error)
	GetByUserID(userID models.UserRef) ([]models.Activity, error)
	TotalsByUser() (map[models.UserRef]ActivityTotals, error)
	Update(activity *models.Activity) error
	Delete(id uuid.UUID) error
	DeleteAll() error
}

// LeaderboardRepositoryInterface defines the interface for leaderboard repository operations
type LeaderboardRepositoryInterface interface {
	Create(entry *models.Leaderboard) error
	GetByID(id uuid.UUID) (*models.Leaderboard, error)
	GetAllByRank() ([]models.Leaderboard, error)
	GetByCalories(limit int) ([]models.Leaderboard, error)
	UpdateRank(id uuid.UUID, rank int) error
	Update(entry *models.Leaderboard) error
	Delete(id uuid.UUID) error
	DeleteAll() error
}

// WorkoutRepositoryInterface defines the interface for workout repository operations
type WorkoutRepositoryInterface interface {
	Create(workout *models.Workout) error
	GetByID(id uuid.UUID) (*models.Workout, error)
	GetAll() ([]models.Workout, error)
	GetByDifficulty(difficulty models.Difficulty) ([]models.Workout, error)
	Update(workout *models.Workout) error
	Delete(id uuid.UUID) error
	DeleteAll() error
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// ActivityTotals is the calorie sum and row count of one user's activities
type ActivityTotals struct {
	TotalCalories   int
	TotalActivities int
}
