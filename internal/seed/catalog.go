package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"octofit-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

//go:embed workouts.yaml
var workoutsYAML []byte

// WorkoutData is one catalog entry as written in workouts.yaml
type WorkoutData struct {
	Name             string                   `yaml:"name"`
	Description      string                   `yaml:"description"`
	Difficulty       string                   `yaml:"difficulty"`
	Duration         int                      `yaml:"duration"`
	CaloriesEstimate int                      `yaml:"calories_estimate"`
	Exercises        []map[string]interface{} `yaml:"exercises"`
}

// LoadWorkouts parses a workout catalog document into models
func LoadWorkouts(data []byte) ([]models.Workout, error) {
	var entries []WorkoutData
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse workout catalog: %w", err)
	}

	workouts := make([]models.Workout, 0, len(entries))
	for _, entry := range entries {
		difficulty := models.Difficulty(entry.Difficulty)
		if !difficulty.IsValid() {
			return nil, fmt.Errorf("workout %q: invalid difficulty %q, want one of %v", entry.Name, entry.Difficulty, models.Difficulties)
		}

		exercises := entry.Exercises
		if exercises == nil {
			exercises = []map[string]interface{}{}
		}
		raw, err := json.Marshal(exercises)
		if err != nil {
			return nil, fmt.Errorf("workout %q: failed to encode exercises: %w", entry.Name, err)
		}

		workouts = append(workouts, models.Workout{
			Name:             entry.Name,
			Description:      entry.Description,
			Difficulty:       difficulty,
			Duration:         entry.Duration,
			CaloriesEstimate: entry.CaloriesEstimate,
			Exercises:        raw,
		})
	}
	return workouts, nil
}

// DefaultWorkouts returns the embedded catalog
func DefaultWorkouts() ([]models.Workout, error) {
	return LoadWorkouts(workoutsYAML)
}
