package service

import (
	"errors"
	"math"
	"peerlearn_backend/internal/model"
	"peerlearn_backend/internal/repository"
	"peerlearn_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// SessionCoins is the learner's payout for completing (rating) a session.
const SessionCoins = 10

type MentoringService struct {
	SessionRepo *repository.SessionRepository
	UserRepo    *repository.UserRepository
	DB          *gorm.DB
}

func NewMentoringService(sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, db *gorm.DB) *MentoringService {
	return &MentoringService{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
		DB:          db,
	}
}

// AddSkill appends the skill to the user's teachable set; adding an
// existing skill is a no-op.
func (s *MentoringService) AddSkill(userID, skill string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	for _, existing := range user.SkillsCanTeach {
		if existing == skill {
			return nil
		}
	}

	return s.UserRepo.UpdateSkills(userID, append(user.SkillsCanTeach, skill))
}

func (s *MentoringService) ListMentors(skill string) ([]model.User, error) {
	return s.UserRepo.FindMentors(skill)
}

func (s *MentoringService) BookSession(learnerID, mentorID, skill string, scheduledAt time.Time) (*model.P2PSession, error) {
	if mentorID == learnerID {
		return nil, util.ErrSelfBooking
	}

	session := &model.P2PSession{
		MentorID:    mentorID,
		LearnerID:   learnerID,
		Skill:       skill,
		ScheduledAt: scheduledAt,
		Status:      model.SessionScheduled,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *MentoringService) MySessions(userID string) ([]model.P2PSession, error) {
	return s.SessionRepo.FindByParticipant(userID)
}

type SessionRating struct {
	OverallRating int
	Punctuality   int
	Knowledge     int
	Helpfulness   int
	Feedback      string
}

// RateSession records the learner's rating, completes the session, refreshes
// the mentor's aggregate rating, and credits the learner. The transition is
// one-shot: a session already completed cannot be rated again. Everything
// runs in one transaction.
func (s *MentoringService) RateSession(learnerID, sessionID string, rating SessionRating) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var session model.P2PSession
		if err := tx.Where("id = ?", sessionID).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrSessionNotFound
			}
			return err
		}

		if session.LearnerID != learnerID {
			return util.ErrNotSessionLearner
		}
		if session.Status == model.SessionCompleted {
			return util.ErrSessionAlreadyRated
		}

		session.OverallRating = rating.OverallRating
		session.Punctuality = rating.Punctuality
		session.Knowledge = rating.Knowledge
		session.Helpfulness = rating.Helpfulness
		session.Feedback = rating.Feedback
		session.Status = model.SessionCompleted
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		var completed []model.P2PSession
		if err := tx.Where("mentor_id = ? AND status = ?", session.MentorID, model.SessionCompleted).
			Find(&completed).Error; err != nil {
			return err
		}

		if len(completed) > 0 {
			sum := 0
			for _, c := range completed {
				sum += c.OverallRating
			}
			avg := math.Round(float64(sum)/float64(len(completed))*10) / 10
			if err := tx.Model(&model.User{}).Where("id = ?", session.MentorID).
				Updates(map[string]interface{}{
					"mentor_rating": avg,
					"total_ratings": len(completed),
				}).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.User{}).Where("id = ?", session.LearnerID).
			Updates(map[string]interface{}{
				"coins":                    gorm.Expr("coins + ?", SessionCoins),
				"total_sessions_completed": gorm.Expr("total_sessions_completed + ?", 1),
			}).Error
	})
}
