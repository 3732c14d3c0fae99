package models

import "time"

// User is a tracked athlete. TeamID is a loose reference that may dangle.
type User struct {
	BaseModel
	Email     string    `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:254" validate:"required,email,max=254"`
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	TeamID    *TeamRef  `json:"team_id" gorm:"size:50;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
