package controller

import (
	"peerlearn_backend/internal/service"
	"peerlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	AuthService *service.AuthService
}

func NewUserController(authService *service.AuthService) *UserController {
	return &UserController{AuthService: authService}
}

// GetMe godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, user)
}
