package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profiles *services.ProfileService
	settings *services.SettingsService
}

// GetProfile godoc
// @Summary  My profile
// @Tags     profile
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "profile"
// @Security ApiKeyAuth
// @Router   /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	profile, err := p.profiles.GetProfile(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"profile": profile,
	})
}

// UpdateProfile godoc
// @Summary  Update my profile
// @Tags     profile
// @Accept   json
// @Produce  json
// @Param    profile body     forms.ProfileForm true "Fields to change"
// @Success  200     {object} res.Response{body=map[string]interface{}} "profile"
// @Security ApiKeyAuth
// @Router   /profile [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	var update forms.ProfileForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	profile, err := p.profiles.UpdateProfile(c.Request.Context(), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"profile": profile,
	})
}

// UploadAvatar godoc
// @Summary  Upload avatar
// @Tags     profile
// @Accept   multipart/form-data
// @Produce  json
// @Param    avatar formData file true "Image"
// @Success  200    {object} res.Response{body=map[string]interface{}} "profile"
// @Failure  400    {object} res.Response{} "Not an image"
// @Failure  503    {object} res.Response{} "Storage disabled"
// @Security ApiKeyAuth
// @Router   /profile/avatar [post]
func (p *ProfileController) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		badRequest(c, err)
		return
	}
	profile, errRes := p.profiles.UploadAvatar(c.Request.Context(), file, currentClaims(c))
	if errRes != nil {
		abort(c, errRes)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"profile": profile,
	})
}

// GetPublicProfile godoc
// @Summary Public profile
// @Tags    profile
// @Produce json
// @Param   id  path     string true "MongoID"
// @Success 200 {object} res.Response{body=map[string]interface{}} "user, profile"
// @Failure 404 {object} res.Response{} "Profile not found or private"
// @Router  /users/{id}/profile [get]
func (p *ProfileController) GetPublicProfile(c *gin.Context) {
	public, err := p.profiles.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"user":    public.User,
		"profile": public.Profile,
	})
}

// GetSettings godoc
// @Summary  My settings
// @Tags     profile
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "settings"
// @Security ApiKeyAuth
// @Router   /settings [get]
func (p *ProfileController) GetSettings(c *gin.Context) {
	settings, err := p.settings.GetSettings(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"settings": settings,
	})
}

// UpdateSettings godoc
// @Summary  Update my settings
// @Tags     profile
// @Accept   json
// @Produce  json
// @Param    settings body     forms.SettingsForm true "Fields to change"
// @Success  200      {object} res.Response{body=map[string]interface{}} "settings"
// @Security ApiKeyAuth
// @Router   /settings [put]
func (p *ProfileController) UpdateSettings(c *gin.Context) {
	var update forms.SettingsForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	settings, err := p.settings.UpdateSettings(c.Request.Context(), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"settings": settings,
	})
}

func NewProfileController(s *services.Services) *ProfileController {
	return &ProfileController{
		profiles: s.Profiles,
		settings: s.Settings,
	}
}
