package repository

import (
	"peerlearn_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.P2PSession) error {
	return r.DB.Create(session).Error
}

// FindByParticipant returns every session where the user is mentor or learner.
func (r *SessionRepository) FindByParticipant(userID string) ([]model.P2PSession, error) {
	var sessions []model.P2PSession
	err := r.DB.Where("mentor_id = ? OR learner_id = ?", userID, userID).
		Order("scheduled_at DESC").Limit(100).Find(&sessions).Error
	return sessions, err
}
