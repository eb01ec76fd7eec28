package controller

import (
	"career_guidance_backend/internal/scoring"
	"career_guidance_backend/internal/service"
	"career_guidance_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	AuthService *service.AuthService
}

func NewUserController(authService *service.AuthService) *UserController {
	return &UserController{AuthService: authService}
}

// LevelStatus godoc
// @Summary Level and XP progress of the current user
// @Description Derives level, in-level progress and XP remaining from total experience
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /users/level-status [get]
func (c *UserController) LevelStatus(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"level":             scoring.Level(user.Experience),
		"experience":        user.Experience,
		"experienceInLevel": scoring.ExperienceInLevel(user.Experience),
		"experienceToNext":  scoring.ExperienceToNext(user.Experience),
		"progress":          scoring.Progress(user.Experience),
		"levelSpan":         scoring.LevelSpan,
	})
}
