package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	progress     *services.ProgressService
	achievements *services.AchievementService
	dashboard    *services.DashboardService
}

// UpdateProgress godoc
// @Summary  Track a lesson
// @Desc     Saves the lesson progress and recomputes the enrollment
// @Tags     progress
// @Accept   json
// @Produce  json
// @Param    progress body     forms.ProgressForm true "Progress"
// @Success  200      {object} res.Response{body=map[string]interface{}} "progress, enrollment, achievements"
// @Failure  403      {object} res.Response{} "Not enrolled or enrollment not active"
// @Failure  404      {object} res.Response{} "Lesson not found"
// @Security ApiKeyAuth
// @Router   /progress [post]
func (p *ProgressController) UpdateProgress(c *gin.Context) {
	var update forms.ProgressForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	result, err := p.progress.UpdateProgress(c.Request.Context(), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"progress":     result.Progress,
		"enrollment":   result.Enrollment,
		"achievements": result.Achievements,
	})
}

// GetProgress godoc
// @Summary  My progress
// @Tags     progress
// @Produce  json
// @Param    course query    string false "Course MongoID"
// @Success  200    {object} res.Response{body=map[string]interface{}} "progress"
// @Security ApiKeyAuth
// @Router   /progress [get]
func (p *ProgressController) GetProgress(c *gin.Context) {
	progress, err := p.progress.GetProgress(c.Request.Context(), c.Query("course"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"progress": progress,
	})
}

// GetStreak godoc
// @Summary  Learning streak
// @Tags     progress
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "streak"
// @Security ApiKeyAuth
// @Router   /progress/streak [get]
func (p *ProgressController) GetStreak(c *gin.Context) {
	streak, err := p.progress.GetStreak(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"streak": streak,
	})
}

// GetAchievements godoc
// @Summary  My achievements
// @Tags     progress
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "achievements"
// @Security ApiKeyAuth
// @Router   /achievements [get]
func (p *ProgressController) GetAchievements(c *gin.Context) {
	achievements, err := p.achievements.GetAchievements(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"achievements": achievements,
	})
}

// GetDashboard godoc
// @Summary  Dashboard
// @Tags     progress
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "dashboard"
// @Security ApiKeyAuth
// @Router   /dashboard [get]
func (p *ProgressController) GetDashboard(c *gin.Context) {
	dashboard, err := p.dashboard.GetDashboard(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"dashboard": dashboard,
	})
}

func NewProgressController(s *services.Services) *ProgressController {
	return &ProgressController{
		progress:     s.Progress,
		achievements: s.Achievements,
		dashboard:    s.Dashboard,
	}
}
