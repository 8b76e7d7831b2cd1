package controller

import (
	"errors"
	"peerlearn_backend/internal/service"
	"peerlearn_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type P2PController struct {
	MentoringService *service.MentoringService
	AuthService      *service.AuthService
}

func NewP2PController(mentoringService *service.MentoringService, authService *service.AuthService) *P2PController {
	return &P2PController{
		MentoringService: mentoringService,
		AuthService:      authService,
	}
}

// swagger:model AddSkillRequest
type AddSkillRequest struct {
	Skill string `json:"skill" binding:"required"`
}

// AddSkill godoc
// @Summary Add a teachable skill
// @Description Set semantics: adding an existing skill is a no-op
// @Tags p2p
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AddSkillRequest true "Skill"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /skills/add [post]
func (c *P2PController) AddSkill(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MentoringService.AddSkill(user.ID, req.Skill); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Skill added successfully"})
}

// ListMentors godoc
// @Summary List mentors
// @Description Users with a non-empty teachable-skill set, optionally filtered by skill
// @Tags p2p
// @Produce json
// @Param skill query string false "Skill filter"
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /p2p/mentors [get]
func (c *P2PController) ListMentors(ctx *gin.Context) {
	mentors, err := c.MentoringService.ListMentors(ctx.Query("skill"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, mentors)
}

// swagger:model BookSessionRequest
type BookSessionRequest struct {
	MentorID    string    `json:"mentor_id" binding:"required"`
	Skill       string    `json:"skill" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// BookSession godoc
// @Summary Book a mentoring session
// @Tags p2p
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body BookSessionRequest true "Booking"
// @Success 201 {object} util.Response{data=model.P2PSession}
// @Failure 400 {object} util.Response "Self-booking"
// @Failure 401 {object} util.Response
// @Router /p2p/sessions/book [post]
func (c *P2PController) BookSession(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req BookSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.MentoringService.BookSession(user.ID, req.MentorID, req.Skill, req.ScheduledAt)
	if err != nil {
		if errors.Is(err, util.ErrSelfBooking) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, session)
}

// MySessions godoc
// @Summary List sessions where the caller is mentor or learner
// @Tags p2p
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.P2PSession}
// @Failure 401 {object} util.Response
// @Router /p2p/sessions/my [get]
func (c *P2PController) MySessions(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.MentoringService.MySessions(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// swagger:model RateSessionRequest
type RateSessionRequest struct {
	SessionID     string `json:"session_id" binding:"required"`
	OverallRating int    `json:"overall_rating" binding:"required,min=1,max=5"`
	Punctuality   int    `json:"punctuality" binding:"required,min=1,max=5"`
	Knowledge     int    `json:"knowledge" binding:"required,min=1,max=5"`
	Helpfulness   int    `json:"helpfulness" binding:"required,min=1,max=5"`
	Feedback      string `json:"feedback"`
}

// RateSession godoc
// @Summary Rate a completed session
// @Description Learner-only, one-shot: completes the session, refreshes the mentor average, credits the learner 10 coins
// @Tags p2p
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RateSessionRequest true "Rating"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response "Caller is not the learner"
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "Already rated"
// @Router /p2p/sessions/rate [post]
func (c *P2PController) RateSession(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.MentoringService.RateSession(user.ID, req.SessionID, service.SessionRating{
		OverallRating: req.OverallRating,
		Punctuality:   req.Punctuality,
		Knowledge:     req.Knowledge,
		Helpfulness:   req.Helpfulness,
		Feedback:      req.Feedback,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNotSessionLearner):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrSessionAlreadyRated):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Session rated successfully", "coins_earned": service.SessionCoins})
}
