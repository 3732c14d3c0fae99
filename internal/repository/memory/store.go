// Package memory implements the repository interfaces in process memory.
// It backs STORE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sort"
	"time"

	"octofit-backend/internal/database/models"
	"octofit-backend/internal/repository"

	"github.com/google/uuid"
)

// NewStore creates an empty in-memory store
func NewStore() *repository.Store {
	return &repository.Store{
		Users:       NewUserRepository(),
		Teams:       NewTeamRepository(),
		Activities:  NewActivityRepository(),
		Leaderboard: NewLeaderboardRepository(),
		Workouts:    NewWorkoutRepository(),
		Pinger:      pinger{},
	}
}

type pinger struct{}

func (pinger) Ping(context.Context) error { return nil }

func stampCreated(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// UserRepository stores users in memory
type UserRepository struct {
	t *table[models.User]
}

// NewUserRepository creates an empty user repository with a unique email constraint
func NewUserRepository() *UserRepository {
	t := newTable(func(u *models.User) *models.BaseModel { return &u.BaseModel })
	t.conflict = func(existing, candidate *models.User) bool { return existing.Email == candidate.Email }
	t.onCreate = func(u *models.User) { stampCreated(&u.CreatedAt) }
	return &UserRepository{t: t}
}

func (r *UserRepository) Create(user *models.User) error { return r.t.insert(user) }

func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) { return r.t.get(id) }

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.t.find(func(u *models.User) bool { return u.Email == email })
}

func (r *UserRepository) GetAll() ([]models.User, error) { return r.t.list(nil), nil }

func (r *UserRepository) GetByTeamID(teamID models.TeamRef) ([]models.User, error) {
	return r.t.list(onTeam(teamID)), nil
}

func (r *UserRepository) CountByTeamID(teamID models.TeamRef) (int64, error) {
	return r.t.count(onTeam(teamID)), nil
}

func (r *UserRepository) Update(user *models.User) error { return r.t.save(user) }

func (r *UserRepository) Delete(id uuid.UUID) error {
	r.t.remove(id)
	return nil
}

func (r *UserRepository) DeleteAll() error {
	r.t.clear()
	return nil
}

func onTeam(teamID models.TeamRef) func(*models.User) bool {
	return func(u *models.User) bool { return u.TeamID != nil && *u.TeamID == teamID }
}

// TeamRepository stores teams in memory
type TeamRepository struct {
	t *table[models.Team]
}

// NewTeamRepository creates an empty team repository
func NewTeamRepository() *TeamRepository {
	t := newTable(func(tm *models.Team) *models.BaseModel { return &tm.BaseModel })
	t.onCreate = func(tm *models.Team) { stampCreated(&tm.CreatedAt) }
	return &TeamRepository{t: t}
}

func (r *TeamRepository) Create(team *models.Team) error { return r.t.insert(team) }

func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) { return r.t.get(id) }

func (r *TeamRepository) GetAll() ([]models.Team, error) { return r.t.list(nil), nil }

func (r *TeamRepository) Update(team *models.Team) error { return r.t.save(team) }

func (r *TeamRepository) Delete(id uuid.UUID) error {
	r.t.remove(id)
	return nil
}

func (r *TeamRepository) DeleteAll() error {
	r.t.clear()
	return nil
}

// ActivityRepository stores activities in memory
type ActivityRepository struct {
	t *table[models.Activity]
}

// NewActivityRepository creates an empty activity repository
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		t: newTable(func(a *models.Activity) *models.BaseModel { return &a.BaseModel }),
	}
}

func (r *ActivityRepository) Create(activity *models.Activity) error { return r.t.insert(activity) }

func (r *ActivityRepository) GetByID(id uuid.UUID) (*models.Activity, error) { return r.t.get(id) }

func (r *ActivityRepository) GetAll() ([]models.Activity, error) {
	return byDateDesc(r.t.list(nil)), nil
}

func (r *ActivityRepository) GetByUserID(userID models.UserRef) ([]models.Activity, error) {
	return byDateDesc(r.t.list(func(a *models.Activity) bool { return a.UserID == userID })), nil
}

func (r *ActivityRepository) TotalsByUser() (map[models.UserRef]repository.ActivityTotals, error) {
	totals := make(map[models.UserRef]repository.ActivityTotals)
	for _, a := range r.t.list(nil) {
		sum := totals[a.UserID]
		sum.TotalCalories += a.Calories
		sum.TotalActivities++
		totals[a.UserID] = sum
	}
	return totals, nil
}

func (r *ActivityRepository) Update(activity *models.Activity) error { return r.t.save(activity) }

func (r *ActivityRepository) Delete(id uuid.UUID) error {
	r.t.remove(id)
	return nil
}

func (r *ActivityRepository) DeleteAll() error {
	r.t.clear()
	return nil
}

func byDateDesc(activities []models.Activity) []models.Activity {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})
	return activities
}

// LeaderboardRepository stores leaderboard rows in memory
type LeaderboardRepository struct {
	t *table[models.Leaderboard]
}

// NewLeaderboardRepository creates an empty leaderboard repository
func NewLeaderboardRepository() *LeaderboardRepository {
	return &LeaderboardRepository{
		t: newTable(func(e *models.Leaderboard) *models.BaseModel { return &e.BaseModel }),
	}
}

func (r *LeaderboardRepository) Create(entry *models.Leaderboard) error { return r.t.insert(entry) }

func (r *LeaderboardRepository) GetByID(id uuid.UUID) (*models.Leaderboard, error) {
	return r.t.get(id)
}

func (r *LeaderboardRepository) GetAllByRank() ([]models.Leaderboard, error) {
	entries := r.t.list(nil)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Rank != entries[j].Rank {
			return entries[i].Rank < entries[j].Rank
		}
		return entries[i].BuildOrder < entries[j].BuildOrder
	})
	return entries, nil
}

func (r *LeaderboardRepository) GetByCalories(limit int) ([]models.Leaderboard, error) {
	entries := r.t.list(nil)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalCalories != entries[j].TotalCalories {
			return entries[i].TotalCalories > entries[j].TotalCalories
		}
		return entries[i].BuildOrder < entries[j].BuildOrder
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *LeaderboardRepository) UpdateRank(id uuid.UUID, rank int) error {
	return r.t.modify(id, func(e *models.Leaderboard) { e.Rank = rank })
}

func (r *LeaderboardRepository) Update(entry *models.Leaderboard) error { return r.t.save(entry) }

func (r *LeaderboardRepository) Delete(id uuid.UUID) error {
	r.t.remove(id)
	return nil
}

func (r *LeaderboardRepository) DeleteAll() error {
	r.t.clear()
	return nil
}

// WorkoutRepository stores the workout catalog in memory
type WorkoutRepository struct {
	t *table[models.Workout]
}

// NewWorkoutRepository creates an empty workout repository
func NewWorkoutRepository() *WorkoutRepository {
	t := newTable(func(w *models.Workout) *models.BaseModel { return &w.BaseModel })
	t.onCreate = func(w *models.Workout) { stampCreated(&w.CreatedAt) }
	return &WorkoutRepository{t: t}
}

func (r *WorkoutRepository) Create(workout *models.Workout) error { return r.t.insert(workout) }

func (r *WorkoutRepository) GetByID(id uuid.UUID) (*models.Workout, error) { return r.t.get(id) }

func (r *WorkoutRepository) GetAll() ([]models.Workout, error) { return r.t.list(nil), nil }

func (r *WorkoutRepository) GetByDifficulty(difficulty models.Difficulty) ([]models.Workout, error) {
	return r.t.list(func(w *models.Workout) bool { return w.Difficulty == difficulty }), nil
}

func (r *WorkoutRepository) Update(workout *models.Workout) error { return r.t.save(workout) }

func (r *WorkoutRepository) Delete(id uuid.UUID) error {
	r.t.remove(id)
	return nil
}

func (r *WorkoutRepository) DeleteAll() error {
	r.t.clear()
	return nil
}

var (
	_ repository.UserRepositoryInterface        = (*UserRepository)(nil)
	_ repository.TeamRepositoryInterface        = (*TeamRepository)(nil)
	_ repository.ActivityRepositoryInterface    = (*ActivityRepository)(nil)
	_ repository.LeaderboardRepositoryInterface = (*LeaderboardRepository)(nil)
	_ repository.WorkoutRepositoryInterface     = (*WorkoutRepository)(nil)
)
