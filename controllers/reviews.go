package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
}

// GetReviews godoc
// @Summary Course reviews
// @Tags    reviews
// @Produce json
// @Param   idCourse path     string true  "MongoID"
// @Param   page     query    int    false "Page"
// @Param   limit    query    int    false "Limit"
// @Success 200      {object} res.Response{body=map[string]interface{}} "reviews, total, page, pages"
// @Router  /courses/{idCourse}/reviews [get]
func (r *ReviewController) GetReviews(c *gin.Context) {
	var query forms.PaginationForm
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	page, err := r.reviews.GetReviews(c.Request.Context(), c.Param("idCourse"), query.Page, query.Limit)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, withPage(map[string]interface{}{
		"reviews": page.Reviews,
	}, page.Page))
}

// CreateReview godoc
// @Summary  Review a course
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    idCourse path     string           true "MongoID"
// @Param    review   body     forms.ReviewForm true "Review"
// @Success  201      {object} res.Response{body=map[string]interface{}} "review"
// @Failure  400      {object} res.Response{} "Already reviewed"
// @Failure  403      {object} res.Response{} "Not enrolled or own course"
// @Security ApiKeyAuth
// @Router   /courses/{idCourse}/reviews [post]
func (r *ReviewController) CreateReview(c *gin.Context) {
	var review forms.ReviewForm
	if err := c.ShouldBindJSON(&review); err != nil {
		badRequest(c, err)
		return
	}
	created, err := r.reviews.CreateReview(c.Request.Context(), c.Param("idCourse"), &review, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"review": created,
	})
}

// UpdateReview godoc
// @Summary  Update review
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    id     path     string           true "MongoID"
// @Param    review body     forms.ReviewForm true "Review"
// @Success  200    {object} res.Response{body=map[string]interface{}} "review"
// @Failure  403    {object} res.Response{} "Not the author"
// @Security ApiKeyAuth
// @Router   /reviews/{id} [put]
func (r *ReviewController) UpdateReview(c *gin.Context) {
	var update forms.ReviewForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	review, err := r.reviews.UpdateReview(c.Request.Context(), c.Param("id"), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"review": review,
	})
}

// DeleteReview godoc
// @Summary  Delete review
// @Tags     reviews
// @Produce  json
// @Param    id  path     string true "MongoID"
// @Success  200 {object} res.Response{}
// @Failure  403 {object} res.Response{} "Not the author"
// @Security ApiKeyAuth
// @Router   /reviews/{id} [delete]
func (r *ReviewController) DeleteReview(c *gin.Context) {
	if err := r.reviews.DeleteReview(c.Request.Context(), c.Param("id"), currentClaims(c)); err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}

func NewReviewController(s *services.Services) *ReviewController {
	return &ReviewController{reviews: s.Reviews}
}
