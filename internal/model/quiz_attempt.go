package model

import "time"

// QuizAttempt is an append-only log row; never mutated after creation.
// swagger:model QuizAttempt
type QuizAttempt struct {
	UUIDBase
	UserID      string    `gorm:"index;type:varchar(36)" json:"user_id"`
	ModuleID    string    `gorm:"index;type:varchar(36)" json:"module_id"`
	CourseID    string    `gorm:"index;type:varchar(36)" json:"course_id"`
	Score       float64   `gorm:"not null" json:"score"`
	Passed      bool      `gorm:"default:false" json:"passed"`
	CompletedAt time.Time `json:"completed_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
