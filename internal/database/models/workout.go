package models

import (
	"encoding/json"
	"time"
)

// Workout is a suggested routine from the static catalog
type Workout struct {
	BaseModel
	Name             string          `json:"name" gorm:"not null;size:100"`
	Description      string          `json:"description" gorm:"type:text;not null"`
	Difficulty       Difficulty      `json:"difficulty" gorm:"type:varchar(20);not null;index"`
	Duration         int             `json:"duration" gorm:"not null"` // minutes
	CaloriesEstimate int             `json:"calories_estimate" gorm:"not null"`
	Exercises        json.RawMessage `json:"exercises" gorm:"type:jsonb" swaggertype:"array,object"`

	// CreatedAt keeps catalog order stable across stores
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}

// TableName returns the table name for Workout
func (Workout) TableName() string {
	return "workouts"
}
