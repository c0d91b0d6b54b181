package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

// Register godoc
// @Summary Register
// @Desc    Create a student account
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   register body     forms.RegisterForm true "Account"
// @Success 201      {object} res.Response{body=map[string]interface{}} "user and token"
// @Failure 400      {object} res.Response{} "Bad body or email already registered"
// @Failure 503      {object} res.Response{} "DB Service Unavailable"
// @Router  /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var register forms.RegisterForm
	if err := c.ShouldBindJSON(&register); err != nil {
		badRequest(c, err)
		return
	}
	user, token, err := a.auth.Register(c.Request.Context(), &register)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Login godoc
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   login body     forms.LoginForm true "Credentials"
// @Success 200   {object} res.Response{body=map[string]interface{}} "user and token"
// @Failure 401   {object} res.Response{} "Invalid email or password"
// @Router  /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var login forms.LoginForm
	if err := c.ShouldBindJSON(&login); err != nil {
		badRequest(c, err)
		return
	}
	user, token, err := a.auth.Login(c.Request.Context(), &login)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Me godoc
// @Summary  Current user
// @Tags     auth
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "user"
// @Failure  401 {object} res.Response{} "Unauthorized"
// @Security ApiKeyAuth
// @Router   /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.auth.Me(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

func NewAuthController(s *services.Services) *AuthController {
	return &AuthController{auth: s.Auth}
}
