package controller

import (
	"errors"
	"peerlearn_backend/internal/service"
	"peerlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RewardController struct {
	RewardService *service.RewardService
	AuthService   *service.AuthService
}

func NewRewardController(rewardService *service.RewardService, authService *service.AuthService) *RewardController {
	return &RewardController{
		RewardService: rewardService,
		AuthService:   authService,
	}
}

// ListRewards godoc
// @Summary List the reward catalog
// @Tags rewards
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Reward}
// @Router /rewards [get]
func (c *RewardController) ListRewards(ctx *gin.Context) {
	rewards, err := c.RewardService.ListRewards()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rewards)
}

// MyRedemptions godoc
// @Summary List the caller's redemption receipts
// @Tags rewards
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.UserReward}
// @Failure 401 {object} util.Response
// @Router /rewards/my [get]
func (c *RewardController) MyRedemptions(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	receipts, err := c.RewardService.ListRedemptions(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, receipts)
}

// swagger:model RedeemRequest
type RedeemRequest struct {
	RewardID string `json:"reward_id" binding:"required"`
}

// Redeem godoc
// @Summary Redeem a reward for coins
// @Tags rewards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RedeemRequest true "Redemption"
// @Success 200 {object} util.Response{data=model.UserReward}
// @Failure 400 {object} util.Response "Insufficient coins"
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /rewards/redeem [post]
func (c *RewardController) Redeem(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RedeemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	receipt, err := c.RewardService.Redeem(user.ID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrRewardNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrInsufficientCoins):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, receipt)
}
