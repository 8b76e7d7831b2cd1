package model

import "time"

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
)

// P2PSession is a mentoring session between two users. Status moves
// scheduled -> completed exactly once, when the learner rates it.
// swagger:model P2PSession
type P2PSession struct {
	UUIDBase
	MentorID      string        `gorm:"index;type:varchar(36)" json:"mentor_id"`
	LearnerID     string        `gorm:"index;type:varchar(36)" json:"learner_id"`
	Skill         string        `gorm:"size:100;not null" json:"skill"`
	ScheduledAt   time.Time     `json:"scheduled_at"`
	Status        SessionStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	OverallRating int           `gorm:"default:0" json:"overall_rating"`
	Punctuality   int           `gorm:"default:0" json:"punctuality"`
	Knowledge     int           `gorm:"default:0" json:"knowledge"`
	Helpfulness   int           `gorm:"default:0" json:"helpfulness"`
	Feedback      string        `gorm:"type:text" json:"feedback"`
}

func (P2PSession) TableName() string {
	return "p2p_sessions"
}
