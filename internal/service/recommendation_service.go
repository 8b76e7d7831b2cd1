package service

import (
	"fmt"
	"peerlearn_backend/internal/model"
	"peerlearn_backend/internal/repository"
	"peerlearn_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

const recommendationFallback = "Keep learning! Explore our course catalog to discover new skills."

const recommendationSystemPrompt = "You are an AI learning advisor. Recommend 3 courses based on user profile."

type RecommendationService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	AI             *AIService
}

func NewRecommendationService(enrollmentRepo *repository.EnrollmentRepository, ai *AIService) *RecommendationService {
	return &RecommendationService{
		EnrollmentRepo: enrollmentRepo,
		AI:             ai,
	}
}

// GetRecommendations summarizes the user's completed courses and teachable
// skills and asks the LLM for suggestions. Any upstream failure degrades to
// a fixed encouragement string; the caller never sees an error.
func (s *RecommendationService) GetRecommendations(user *model.User) string {
	completedCount := 0
	if enrollments, err := s.EnrollmentRepo.FindByUser(user.ID); err == nil {
		for _, e := range enrollments {
			if e.Progress >= 100 {
				completedCount++
			}
		}
	}

	skills := "None"
	if len(user.SkillsCanTeach) > 0 {
		skills = strings.Join(user.SkillsCanTeach, ", ")
	}

	prompt := fmt.Sprintf(
		"User has completed %d courses. Skills they teach: %s. Recommend 3 relevant learning paths in a brief, encouraging way.",
		completedCount, skills,
	)

	response, err := s.AI.Chat(recommendationSystemPrompt, prompt)
	if err != nil {
		logger.Log.Warn("AI recommendation call failed, using fallback", zap.Error(err))
		return recommendationFallback
	}

	return response
}
