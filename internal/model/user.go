package model

import "time"

// swagger:model User
type User struct {
	UUIDBase
	Name                   string     `gorm:"size:100;not null" json:"name"`
	Email                  string     `gorm:"size:100;unique;not null" json:"email"`
	Password               string     `gorm:"size:100;not null" json:"-"`
	Coins                  int        `gorm:"default:0" json:"coins"`
	StreakCount            int        `gorm:"default:0" json:"streak_count"`
	LastActivity           *time.Time `json:"last_activity"`
	SkillsCanTeach         []string   `gorm:"serializer:json;type:json" json:"skills_can_teach"`
	TotalCoursesCompleted  int        `gorm:"default:0" json:"total_courses_completed"`
	TotalSessionsCompleted int        `gorm:"default:0" json:"total_sessions_completed"`
	MentorRating           float64    `gorm:"default:0" json:"mentor_rating"`
	TotalRatings           int        `gorm:"default:0" json:"total_ratings"`
}

func (User) TableName() string {
	return "users"
}
