package service

import (
	"errors"
	"peerlearn_backend/internal/model"
	"peerlearn_backend/internal/repository"
	"peerlearn_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// PassThreshold is the minimum quiz score that completes a module.
const PassThreshold = 70.0

// CoinsPerModule is the base payout for the first completion of a module.
const CoinsPerModule = 20

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	AttemptRepo    *repository.QuizAttemptRepository
	DB             *gorm.DB
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	attemptRepo *repository.QuizAttemptRepository,
	db *gorm.DB,
) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		AttemptRepo:    attemptRepo,
		DB:             db,
	}
}

func (s *CourseService) ListCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAll(100)
}

func (s *CourseService) GetCourse(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// Enroll is idempotent: enrolling twice returns the existing record.
func (s *CourseService) Enroll(userID, courseID string) (*model.Enrollment, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}

	existing, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:           userID,
		CourseID:         courseID,
		Progress:         0,
		CompletedModules: []string{},
		CoinsEarned:      0,
		EnrolledAt:       time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *CourseService) ListEnrollments(userID string) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByUser(userID)
}

func (s *CourseService) ListAttempts(userID string) ([]model.QuizAttempt, error) {
	return s.AttemptRepo.FindByUser(userID)
}

type QuizSubmission struct {
	ModuleID string
	CourseID string
	Answers  []string
}

type QuizResult struct {
	Score       float64 `json:"score"`
	Passed      bool    `json:"passed"`
	CoinsEarned int     `json:"coins_earned"`
}

// SubmitQuiz grades the submission, logs the attempt, and on a first pass
// of the module advances the enrollment and pays out coins. The whole
// enrollment/coin sequence runs in one transaction so concurrent
// submissions for the same module cannot double-credit.
func (s *CourseService) SubmitQuiz(userID string, submission QuizSubmission) (*QuizResult, error) {
	course, err := s.GetCourse(submission.CourseID)
	if err != nil {
		return nil, err
	}

	var module *model.CourseModule
	for i := range course.Modules {
		if course.Modules[i].ID == submission.ModuleID {
			module = &course.Modules[i]
			break
		}
	}
	if module == nil {
		return nil, util.ErrModuleNotFound
	}

	score := scoreQuiz(module.Questions, submission.Answers)
	passed := score >= PassThreshold

	result := &QuizResult{Score: score, Passed: passed}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		attempt := &model.QuizAttempt{
			UserID:      userID,
			ModuleID:    submission.ModuleID,
			CourseID:    submission.CourseID,
			Score:       score,
			Passed:      passed,
			CompletedAt: time.Now(),
		}
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		if !passed {
			return nil
		}

		var enrollment model.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ?", userID, submission.CourseID).
			First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// passed but never enrolled: nothing to advance
				return nil
			}
			return err
		}

		for _, completed := range enrollment.CompletedModules {
			if completed == submission.ModuleID {
				// re-passing an already-completed module only logs the attempt
				return nil
			}
		}

		enrollment.CompletedModules = append(enrollment.CompletedModules, submission.ModuleID)
		enrollment.Progress = float64(len(enrollment.CompletedModules)) / float64(len(course.Modules)) * 100

		// per-module credit, capped so total payouts never exceed the
		// course's declared reward
		moduleCoins := CoinsPerModule
		if remaining := course.CoinReward - enrollment.CoinsEarned; moduleCoins > remaining {
			moduleCoins = remaining
		}
		if moduleCoins < 0 {
			moduleCoins = 0
		}
		enrollment.CoinsEarned += moduleCoins
		result.CoinsEarned = moduleCoins

		if moduleCoins > 0 {
			if err := tx.Model(&model.User{}).Where("id = ?", userID).
				Update("coins", gorm.Expr("coins + ?", moduleCoins)).Error; err != nil {
				return err
			}
		}

		if enrollment.Progress >= 100 {
			bonus := course.CoinReward - enrollment.CoinsEarned
			if bonus > 0 {
				enrollment.CoinsEarned += bonus
				if err := tx.Model(&model.User{}).Where("id = ?", userID).
					Update("coins", gorm.Expr("coins + ?", bonus)).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&model.User{}).Where("id = ?", userID).
				Update("total_courses_completed", gorm.Expr("total_courses_completed + ?", 1)).Error; err != nil {
				return err
			}
		}

		return tx.Save(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// scoreQuiz compares answers to questions by position. A module with no
// questions scores 0.
func scoreQuiz(questions []model.Question, answers []string) float64 {
	if len(questions) == 0 {
		return 0
	}

	correct := 0
	for i, answer := range answers {
		if i >= len(questions) {
			break
		}
		if answer == questions[i].CorrectAnswer {
			correct++
		}
	}

	return float64(correct) / float64(len(questions)) * 100
}
