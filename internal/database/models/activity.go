package models

import "time"

// Activity is a single logged workout session
type Activity struct {
	BaseModel
	UserID       UserRef   `json:"user_id" gorm:"not null;size:50;index"`
	ActivityType string    `json:"activity_type" gorm:"not null;size:50"`
	Duration     int       `json:"duration" gorm:"not null"` // minutes
	Calories     int       `json:"calories" gorm:"not null"`
	Date         time.Time `json:"date" gorm:"not null"`
	Notes        string    `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}
