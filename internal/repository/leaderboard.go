package repository

import (
	"octofit-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardRepository handles database operations for leaderboard rows
type LeaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Create creates a new leaderboard row
func (r *LeaderboardRepository) Create(entry *models.Leaderboard) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a leaderboard row by ID
func (r *LeaderboardRepository) GetByID(id uuid.UUID) (*models.Leaderboard, error) {
	var entry models.Leaderboard
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAllByRank retrieves every row ordered by stored rank
func (r *LeaderboardRepository) GetAllByRank() ([]models.Leaderboard, error) {
	var entries []models.Leaderboard
	err := r.db.Order("rank ASC").Order("build_order ASC").Find(&entries).Error
	return entries, err
}

// GetByCalories retrieves rows by total_calories descending, ignoring stored rank.
// A limit of zero or less returns every row.
func (r *LeaderboardRepository) GetByCalories(limit int) ([]models.Leaderboard, error) {
	var entries []models.Leaderboard
	query := r.db.Order("total_calories DESC").Order("build_order ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

// UpdateRank persists a single row's rank
func (r *LeaderboardRepository) UpdateRank(id uuid.UUID, rank int) error {
	result := r.db.Model(&models.Leaderboard{}).Where("id = ?", id).Update("rank", rank)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update updates a leaderboard row
func (r *LeaderboardRepository) Update(entry *models.Leaderboard) error {
	return r.db.Save(entry).Error
}

// Delete deletes a leaderboard row
func (r *LeaderboardRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Leaderboard{}, "id = ?", id).Error
}

// DeleteAll removes every leaderboard row
func (r *LeaderboardRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Leaderboard{}).Error
}
