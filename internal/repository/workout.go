package repository

import (
	"octofit-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutRepository handles database operations for workouts
type WorkoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new workout repository
func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create creates a new workout
func (r *WorkoutRepository) Create(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

// GetByID retrieves a workout by ID
func (r *WorkoutRepository) GetByID(id uuid.UUID) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.First(&workout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// GetAll retrieves the catalog in insertion order
func (r *WorkoutRepository) GetAll() ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Order("created_at ASC").Find(&workouts).Error
	return workouts, err
}

// GetByDifficulty retrieves the workouts of one difficulty in catalog order
func (r *WorkoutRepository) GetByDifficulty(difficulty models.Difficulty) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Where("difficulty = ?", difficulty).Order("created_at ASC").Find(&workouts).Error
	return workouts, err
}

// Update updates a workout
func (r *WorkoutRepository) Update(workout *models.Workout) error {
	return r.db.Save(workout).Error
}

// Delete deletes a workout
func (r *WorkoutRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Workout{}, "id = ?", id).Error
}

// DeleteAll removes every workout
func (r *WorkoutRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Workout{}).Error
}
