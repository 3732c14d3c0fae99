package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	ListUsers() ([]UserResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamResponse, error)
	ListTeams() ([]TeamResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id uuid.UUID) error
	GetTeamMembers(teamID string) ([]UserResponse, error)
}

// ActivityServiceInterface defines the interface for activity service
type ActivityServiceInterface interface {
	CreateActivity(req *CreateActivityRequest) (*ActivityResponse, error)
	GetActivityByID(id uuid.UUID) (*ActivityResponse, error)
	ListActivities(userID *string) ([]ActivityResponse, error)
	ListActivitiesByUser(userID string) ([]ActivityResponse, error)
	UpdateActivity(id uuid.UUID, req *UpdateActivityRequest) (*ActivityResponse, error)
	DeleteActivity(id uuid.UUID) error
}

// LeaderboardServiceInterface defines the interface for leaderboard service
type LeaderboardServiceInterface interface {
	Recompute(ctx context.Context) (*RecomputeResult, error)
	Top(n int) ([]LeaderboardResponse, error)
	ListByRank() ([]LeaderboardResponse, error)
	CreateEntry(req *CreateLeaderboardRequest) (*LeaderboardResponse, error)
	GetEntryByID(id uuid.UUID) (*LeaderboardResponse, error)
	UpdateEntry(id uuid.UUID, req *UpdateLeaderboardRequest) (*LeaderboardResponse, error)
	DeleteEntry(id uuid.UUID) error
}

// WorkoutServiceInterface defines the interface for workout service
type WorkoutServiceInterface interface {
	CreateWorkout(req *CreateWorkoutRequest) (*WorkoutResponse, error)
	GetWorkoutByID(id uuid.UUID) (*WorkoutResponse, error)
	ListWorkouts(difficulty *string) ([]WorkoutResponse, error)
	GroupByDifficulty() (*WorkoutsByDifficultyResponse, error)
	UpdateWorkout(id uuid.UUID, req *UpdateWorkoutRequest) (*WorkoutResponse, error)
	DeleteWorkout(id uuid.UUID) error
}

var (
	_ UserServiceInterface        = (*UserService)(nil)
	_ TeamServiceInterface        = (*TeamService)(nil)
	_ ActivityServiceInterface    = (*ActivityService)(nil)
	_ LeaderboardServiceInterface = (*LeaderboardService)(nil)
	_ WorkoutServiceInterface     = (*WorkoutService)(nil)
)
