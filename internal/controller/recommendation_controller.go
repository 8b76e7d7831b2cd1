package controller

import (
	"peerlearn_backend/internal/service"
	"peerlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
	AuthService           *service.AuthService
}

func NewRecommendationController(recommendationService *service.RecommendationService, authService *service.AuthService) *RecommendationController {
	return &RecommendationController{
		RecommendationService: recommendationService,
		AuthService:           authService,
	}
}

// GetRecommendations godoc
// @Summary AI learning-path recommendations
// @Description Falls back to a static encouragement when the AI upstream fails
// @Tags ai
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Router /ai/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	text := c.RecommendationService.GetRecommendations(user)
	util.Success(ctx, gin.H{"recommendations": text})
}
