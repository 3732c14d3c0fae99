package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store bundles the per-collection repositories behind their interfaces
type Store struct {
	Users       UserRepositoryInterface
	Teams       TeamRepositoryInterface
	Activities  ActivityRepositoryInterface
	Leaderboard LeaderboardRepositoryInterface
	Workouts    WorkoutRepositoryInterface
	Pinger      Pinger
}

// NewStore creates a Postgres-backed store
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:       NewUserRepository(db),
		Teams:       NewTeamRepository(db),
		Activities:  NewActivityRepository(db),
		Leaderboard: NewLeaderboardRepository(db),
		Workouts:    NewWorkoutRepository(db),
		Pinger:      &dbPinger{db: db},
	}
}

type dbPinger struct {
	db *gorm.DB
}

func (p *dbPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
