package controller

import (
	"career_guidance_backend/internal/model"
	"career_guidance_backend/internal/service"
	"career_guidance_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func userPayload(user *model.User) gin.H {
	return gin.H{
		"id":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"role":                user.Role,
		"level":               user.Level,
		"experience":          user.Experience,
		"assessmentCompleted": user.AssessmentCompleted,
	}
}

// Register godoc
// @Summary Register a new student
// @Description Creates a student account and returns a JWT token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "registration data"
// @Success 201 {object} util.Response{data=object} "created"
// @Failure 400 {object} util.Response "invalid request"
// @Failure 409 {object} util.Response "email already registered"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, "User already exists with this email")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	token, _, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 400 {object} util.Response "invalid request"
// @Failure 401 {object} util.Response "invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

// GetProfile godoc
// @Summary Current user profile
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "success"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"user": user})
}

// Verify godoc
// @Summary Verify token
// @Description Confirms the presented token is still valid
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"valid": true,
		"user":  userPayload(user),
	})
}
