package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedback *services.FeedbackService
}

// CreateFeedback godoc
// @Summary  Send feedback
// @Tags     feedback
// @Accept   json
// @Produce  json
// @Param    feedback body     forms.FeedbackForm true "Feedback"
// @Success  201      {object} res.Response{body=map[string]interface{}} "feedback"
// @Security ApiKeyAuth
// @Router   /feedback [post]
func (f *FeedbackController) CreateFeedback(c *gin.Context) {
	var feedback forms.FeedbackForm
	if err := c.ShouldBindJSON(&feedback); err != nil {
		badRequest(c, err)
		return
	}
	created, err := f.feedback.CreateFeedback(c.Request.Context(), &feedback, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"feedback": created,
	})
}

func (f *FeedbackController) list(c *gin.Context, mine bool) {
	var query forms.FeedbackQueryForm
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	var (
		page *services.FeedbackPage
		err  *res.ErrorRes
	)
	if mine {
		page, err = f.feedback.GetMyFeedback(c.Request.Context(), &query, currentClaims(c))
	} else {
		page, err = f.feedback.GetFeedback(c.Request.Context(), &query)
	}
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, withPage(map[string]interface{}{
		"feedback": page.Feedback,
	}, page.Page))
}

// GetFeedback godoc
// @Summary  Feedback
// @Tags     feedback
// @Tags     roles.admin
// @Produce  json
// @Param    status query    string false "Status" Enums(open, reviewed, resolved)
// @Param    type   query    string false "Type" Enums(bug, feature, content, other)
// @Param    page   query    int    false "Page"
// @Param    limit  query    int    false "Limit"
// @Success  200    {object} res.Response{body=map[string]interface{}} "feedback, total, page, pages"
// @Failure  403    {object} res.Response{} "Unauthorized role"
// @Security ApiKeyAuth
// @Router   /feedback [get]
func (f *FeedbackController) GetFeedback(c *gin.Context) {
	f.list(c, false)
}

// GetMyFeedback godoc
// @Summary  My feedback
// @Tags     feedback
// @Produce  json
// @Param    status query    string false "Status" Enums(open, reviewed, resolved)
// @Param    type   query    string false "Type" Enums(bug, feature, content, other)
// @Success  200    {object} res.Response{body=map[string]interface{}} "feedback, total, page, pages"
// @Security ApiKeyAuth
// @Router   /feedback/mine [get]
func (f *FeedbackController) GetMyFeedback(c *gin.Context) {
	f.list(c, true)
}

// UpdateFeedback godoc
// @Summary  Update feedback status
// @Tags     feedback
// @Tags     roles.admin
// @Accept   json
// @Produce  json
// @Param    id       path     string                   true "MongoID"
// @Param    feedback body     forms.UpdateFeedbackForm true "Status"
// @Success  200      {object} res.Response{body=map[string]interface{}} "feedback"
// @Security ApiKeyAuth
// @Router   /feedback/{id} [put]
func (f *FeedbackController) UpdateFeedback(c *gin.Context) {
	var update forms.UpdateFeedbackForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	feedback, err := f.feedback.UpdateFeedback(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"feedback": feedback,
	})
}

func NewFeedbackController(s *services.Services) *FeedbackController {
	return &FeedbackController{feedback: s.Feedback}
}
