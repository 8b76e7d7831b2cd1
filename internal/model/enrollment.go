package model

import "time"

// Enrollment tracks one user's progress through one course.
// One row per (user, course) pair.
// swagger:model Enrollment
type Enrollment struct {
	UUIDBase
	UserID           string    `gorm:"index;type:varchar(36);uniqueIndex:idx_user_course" json:"user_id"`
	CourseID         string    `gorm:"index;type:varchar(36);uniqueIndex:idx_user_course" json:"course_id"`
	Progress         float64   `gorm:"default:0" json:"progress"`
	CompletedModules []string  `gorm:"serializer:json;type:json" json:"completed_modules"`
	CoinsEarned      int       `gorm:"default:0" json:"coins_earned"`
	EnrolledAt       time.Time `json:"enrolled_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
