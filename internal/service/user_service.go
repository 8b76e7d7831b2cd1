package service

import (
	"peerlearn_backend/internal/model"
	"peerlearn_backend/internal/repository"
	"time"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetByID(id string) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

// RecordActivity maintains the daily learning streak: a second request on
// the same day is a no-op, activity on the following day extends the
// streak, and a longer gap restarts it at 1. The write is scoped to the
// streak columns; it runs concurrently with handlers that credit coins.
func (s *UserService) RecordActivity(userID string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	streak := 1
	if user.LastActivity != nil {
		last := *user.LastActivity
		lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())
		switch int(today.Sub(lastDay).Hours() / 24) {
		case 0:
			return nil
		case 1:
			streak = user.StreakCount + 1
		}
	}

	return s.UserRepo.UpdateStreak(userID, streak, now)
}
