// Package seed fills a store with demo teams, users, activities and workouts.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"octofit-backend/internal/database/models"
	"octofit-backend/internal/logger"
	"octofit-backend/internal/repository"
	"octofit-backend/internal/service"
)

type teamData struct {
	Name        string
	Description string
	Members     []userData
}

type userData struct {
	Email string
	Name  string
}

var teams = []teamData{
	{
		Name:        "Team Marvel",
		Description: "Earth's Mightiest Heroes fighting for fitness!",
		Members: []userData{
			{Email: "tony.stark@avengers.com", Name: "Tony Stark"},
			{Email: "steve.rogers@avengers.com", Name: "Steve Rogers"},
			{Email: "natasha.romanoff@avengers.com", Name: "Natasha Romanoff"},
			{Email: "thor.odinson@avengers.com", Name: "Thor Odinson"},
			{Email: "bruce.banner@avengers.com", Name: "Bruce Banner"},
		},
	},
	{
		Name:        "Team DC",
		Description: "Justice League members staying in peak condition!",
		Members: []userData{
			{Email: "bruce.wayne@justiceleague.com", Name: "Bruce Wayne"},
			{Email: "clark.kent@justiceleague.com", Name: "Clark Kent"},
			{Email: "diana.prince@justiceleague.com", Name: "Diana Prince"},
			{Email: "barry.allen@justiceleague.com", Name: "Barry Allen"},
			{Email: "arthur.curry@justiceleague.com", Name: "Arthur Curry"},
		},
	},
}

// ActivityTypes is the catalog random activities are drawn from
var ActivityTypes = []string{"Running", "Cycling", "Swimming", "Weight Training", "Yoga", "Boxing", "HIIT"}

const (
	minActivities     = 3
	maxActivities     = 8
	minDuration       = 20
	maxDuration       = 90
	minCaloriesPerMin = 8
	maxCaloriesPerMin = 15
	maxDaysAgo        = 30
)

// Summary counts the records written by a run
type Summary struct {
	Teams              int `json:"teams"`
	Users              int `json:"users"`
	Activities         int `json:"activities"`
	LeaderboardEntries int `json:"leaderboard_entries"`
	Workouts           int `json:"workouts"`
}

// Generator replaces the contents of a store with demo data
type Generator struct {
	store       *repository.Store
	leaderboard *service.LeaderboardService
	rng         *rand.Rand
	now         func() time.Time
}

// NewRand returns a PCG source for the generator. The same non-zero seed
// always yields the same data; zero picks a random seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// NewGenerator creates a generator. rng drives every random choice so a fixed
// source yields the same activities.
func NewGenerator(store *repository.Store, leaderboard *service.LeaderboardService, rng *rand.Rand) *Generator {
	return &Generator{
		store:       store,
		leaderboard: leaderboard,
		rng:         rng,
		now:         time.Now,
	}
}

// WithClock overrides the time source used for activity dates
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Run clears all five collections and writes a fresh demo data set
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	log := logger.WithComponent(ctx, "seed")

	log.Info("clearing existing data")
	if err := g.clear(); err != nil {
		return nil, err
	}

	summary := &Summary{}

	log.Info("creating teams and users")
	var users []models.User
	for _, td := range teams {
		team := &models.Team{Name: td.Name, Description: td.Description}
		if err := g.store.Teams.Create(team); err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", td.Name, err)
		}
		summary.Teams++

		teamRef := models.NewTeamRef(team.ID)
		for _, ud := range td.Members {
			ref := teamRef
			user := models.User{Email: ud.Email, Name: ud.Name, TeamID: &ref}
			if err := g.store.Users.Create(&user); err != nil {
				return nil, fmt.Errorf("failed to create user %s: %w", ud.Email, err)
			}
			users = append(users, user)
			summary.Users++
		}
	}

	log.Info("creating activities")
	now := g.now()
	for i := range users {
		n, err := g.createActivities(&users[i], now)
		if err != nil {
			return nil, err
		}
		summary.Activities += n
	}

	log.Info("computing leaderboard")
	result, err := g.leaderboard.Recompute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute leaderboard: %w", err)
	}
	summary.LeaderboardEntries = result.Rows

	log.Info("creating workout suggestions")
	workouts, err := DefaultWorkouts()
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if err := g.store.Workouts.Create(&workouts[i]); err != nil {
			return nil, fmt.Errorf("failed to create workout %s: %w", workouts[i].Name, err)
		}
		summary.Workouts++
	}

	log.WithFields(map[string]interface{}{
		"teams":               summary.Teams,
		"users":               summary.Users,
		"activities":          summary.Activities,
		"leaderboard_entries": summary.LeaderboardEntries,
		"workouts":            summary.Workouts,
	}).Info("database populated")

	return summary, nil
}

func (g *Generator) clear() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"users", g.store.Users.DeleteAll},
		{"teams", g.store.Teams.DeleteAll},
		{"activities", g.store.Activities.DeleteAll},
		{"leaderboard", g.store.Leaderboard.DeleteAll},
		{"workouts", g.store.Workouts.DeleteAll},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("failed to clear %s: %w", step.name, err)
		}
	}
	return nil
}

func (g *Generator) createActivities(user *models.User, now time.Time) (int, error) {
	count := g.between(minActivities, maxActivities)
	for i := 0; i < count; i++ {
		activityType := ActivityTypes[g.rng.IntN(len(ActivityTypes))]
		duration := g.between(minDuration, maxDuration)
		calories := duration * g.between(minCaloriesPerMin, maxCaloriesPerMin)
		daysAgo := g.between(0, maxDaysAgo)

		activity := &models.Activity{
			UserID:       models.NewUserRef(user.ID),
			ActivityType: activityType,
			Duration:     duration,
			Calories:     calories,
			Date:         now.AddDate(0, 0, -daysAgo),
			Notes:        fmt.Sprintf("%s session by %s", activityType, user.Name),
		}
		if err := g.store.Activities.Create(activity); err != nil {
			return i, fmt.Errorf("failed to create activity for %s: %w", user.Email, err)
		}
	}
	return count, nil
}

// between returns a uniform int in [lo, hi]
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
