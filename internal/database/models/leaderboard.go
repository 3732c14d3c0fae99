package models

// Leaderboard is a derived snapshot row. UserName and TeamName are copied at
// rebuild time and are not kept in sync with User or Team.
type Leaderboard struct {
	BaseModel
	UserID          UserRef  `json:"user_id" gorm:"not null;size:50;index"`
	UserName        string   `json:"user_name" gorm:"not null;size:100"`
	TeamID          *TeamRef `json:"team_id" gorm:"size:50"`
	TeamName        *string  `json:"team_name" gorm:"size:100"`
	TotalCalories   int      `json:"total_calories" gorm:"not null;default:0;index"`
	TotalActivities int      `json:"total_activities" gorm:"not null;default:0"`
	Rank            int      `json:"rank" gorm:"not null;default:0"`

	// BuildOrder is the row's position in the rebuild; it breaks calorie ties.
	BuildOrder int `json:"-" gorm:"not null;default:0"`
}

// TableName returns the table name for Leaderboard
func (Leaderboard) TableName() string {
	return "leaderboard"
}
