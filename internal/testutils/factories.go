package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"octofit-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and no team
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     fmt.Sprintf("athlete-%s@octofit.test", id.String()[:8]),
		Name:      "Test Athlete",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithTeam places the user on a team
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	ref := models.NewTeamRef(teamID)
	user.TeamID = &ref
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Test Team",
		Description: "A test team for testing purposes",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// ActivityFactory provides methods to create test Activity data
type ActivityFactory struct{}

// NewActivityFactory creates a new ActivityFactory
func NewActivityFactory() *ActivityFactory {
	return &ActivityFactory{}
}

// Create creates a test Activity with default values
func (f *ActivityFactory) Create() *models.Activity {
	return &models.Activity{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		UserID:       models.NewUserRef(uuid.New()),
		ActivityType: "Running",
		Duration:     30,
		Calories:     300,
		Date:         time.Now().UTC().Truncate(time.Second),
		Notes:        "Running session",
	}
}

// ForUser creates an activity logged under userID with the given calories
func (f *ActivityFactory) ForUser(userID uuid.UUID, calories int) *models.Activity {
	activity := f.Create()
	activity.UserID = models.NewUserRef(userID)
	activity.Calories = calories
	return activity
}

// LeaderboardFactory provides methods to create test Leaderboard data
type LeaderboardFactory struct{}

// NewLeaderboardFactory creates a new LeaderboardFactory
func NewLeaderboardFactory() *LeaderboardFactory {
	return &LeaderboardFactory{}
}

// Create creates an unranked test Leaderboard row
func (f *LeaderboardFactory) Create() *models.Leaderboard {
	return &models.Leaderboard{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		UserID:          models.NewUserRef(uuid.New()),
		UserName:        "Test Athlete",
		TotalCalories:   0,
		TotalActivities: 0,
	}
}

// WithCalories creates a row with the given total and build position
func (f *LeaderboardFactory) WithCalories(total, buildOrder int) *models.Leaderboard {
	entry := f.Create()
	entry.TotalCalories = total
	entry.BuildOrder = buildOrder
	return entry
}

// WorkoutFactory provides methods to create test Workout data
type WorkoutFactory struct{}

// NewWorkoutFactory creates a new WorkoutFactory
func NewWorkoutFactory() *WorkoutFactory {
	return &WorkoutFactory{}
}

// Create creates a beginner test Workout
func (f *WorkoutFactory) Create() *models.Workout {
	return &models.Workout{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             "Test Workout",
		Description:      "A test workout",
		Difficulty:       models.DifficultyBeginner,
		Duration:         30,
		CaloriesEstimate: 200,
		Exercises:        json.RawMessage(`[{"name":"Plank","duration":"30 seconds"}]`),
	}
}

// WithDifficulty creates a named workout of the given difficulty
func (f *WorkoutFactory) WithDifficulty(name string, difficulty models.Difficulty) *models.Workout {
	workout := f.Create()
	workout.Name = name
	workout.Difficulty = difficulty
	return workout
}

// FactorySet provides access to all factories
type FactorySet struct {
	User        *UserFactory
	Team        *TeamFactory
	Activity    *ActivityFactory
	Leaderboard *LeaderboardFactory
	Workout     *WorkoutFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Team:        NewTeamFactory(),
		Activity:    NewActivityFactory(),
		Leaderboard: NewLeaderboardFactory(),
		Workout:     NewWorkoutFactory(),
	}
}
