package repository

import (
	"octofit-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetAll retrieves every activity, most recent first
func (r *ActivityRepository) GetAll() ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Order("date DESC").Find(&activities).Error
	return activities, err
}

// GetByUserID retrieves the activities logged under userID, most recent first
func (r *ActivityRepository) GetByUserID(userID models.UserRef) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&activities).Error
	return activities, err
}

// TotalsByUser sums calories and counts activities per user_id in one pass
func (r *ActivityRepository) TotalsByUser() (map[models.UserRef]ActivityTotals, error) {
	var rows []struct {
		UserID          models.UserRef
		TotalCalories   int
		TotalActivities int
	}
	err := r.db.Model(&models.Activity{}).
		Select("user_id, COALESCE(SUM(calories), 0) AS total_calories, COUNT(*) AS total_activities").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[models.UserRef]ActivityTotals, len(rows))
	for _, row := range rows {
		totals[row.UserID] = ActivityTotals{
			TotalCalories:   row.TotalCalories,
			TotalActivities: row.TotalActivities,
		}
	}
	return totals, nil
}

// Update updates an activity
func (r *ActivityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

// Delete deletes an activity
func (r *ActivityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Activity{}, "id = ?", id).Error
}

// DeleteAll removes every activity
func (r *ActivityRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Activity{}).Error
}
