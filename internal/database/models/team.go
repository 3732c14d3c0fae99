package models

import "time"

// Team groups users; membership is expressed only through User.TeamID
type Team struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
