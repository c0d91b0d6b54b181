package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	enrollments *services.EnrollmentService
}

type enrollmentsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=active completed paused dropped"`
	forms.PaginationForm
}

// GetEnrollments godoc
// @Summary  My enrollments
// @Tags     enrollments
// @Produce  json
// @Param    status query    string false "Status" Enums(active, completed, paused, dropped)
// @Param    page   query    int    false "Page"
// @Param    limit  query    int    false "Limit"
// @Success  200    {object} res.Response{body=map[string]interface{}} "enrollments, total, page, pages"
// @Security ApiKeyAuth
// @Router   /enrollments [get]
func (e *EnrollmentController) GetEnrollments(c *gin.Context) {
	var query enrollmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	page, err := e.enrollments.GetEnrollments(
		c.Request.Context(),
		currentClaims(c),
		query.Status,
		query.Page,
		query.Limit,
	)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, withPage(map[string]interface{}{
		"enrollments": page.Enrollments,
	}, page.Page))
}

// Enroll godoc
// @Summary  Enroll
// @Tags     enrollments
// @Accept   json
// @Produce  json
// @Param    enrollment body     forms.EnrollmentForm true "Course"
// @Success  201        {object} res.Response{body=map[string]interface{}} "enrollment"
// @Failure  400        {object} res.Response{} "Already enrolled"
// @Failure  404        {object} res.Response{} "Course not found"
// @Security ApiKeyAuth
// @Router   /enrollments [post]
func (e *EnrollmentController) Enroll(c *gin.Context) {
	var enroll forms.EnrollmentForm
	if err := c.ShouldBindJSON(&enroll); err != nil {
		badRequest(c, err)
		return
	}
	enrollment, err := e.enrollments.Enroll(c.Request.Context(), &enroll, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"enrollment": enrollment,
	})
}

// GetEnrollment godoc
// @Summary  Enrollment
// @Desc     Enrollment of the current user with its progress records
// @Tags     enrollments
// @Produce  json
// @Param    id  path     string true "MongoID"
// @Success  200 {object} res.Response{body=map[string]interface{}} "enrollment, progress"
// @Failure  404 {object} res.Response{} "Enrollment not found"
// @Security ApiKeyAuth
// @Router   /enrollments/{id} [get]
func (e *EnrollmentController) GetEnrollment(c *gin.Context) {
	detail, err := e.enrollments.GetEnrollment(c.Request.Context(), c.Param("id"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"enrollment": detail.Enrollment,
		"progress":   detail.Progress,
	})
}

// UpdateEnrollment godoc
// @Summary  Change enrollment status
// @Tags     enrollments
// @Accept   json
// @Produce  json
// @Param    id         path     string                     true "MongoID"
// @Param    enrollment body     forms.UpdateEnrollmentForm true "Status"
// @Success  200        {object} res.Response{body=map[string]interface{}} "enrollment"
// @Failure  400        {object} res.Response{} "Transition not allowed"
// @Security ApiKeyAuth
// @Router   /enrollments/{id} [put]
func (e *EnrollmentController) UpdateEnrollment(c *gin.Context) {
	var update forms.UpdateEnrollmentForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	enrollment, err := e.enrollments.UpdateEnrollment(c.Request.Context(), c.Param("id"), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"enrollment": enrollment,
	})
}

// DeleteEnrollment godoc
// @Summary  Unenroll
// @Desc     Deletes the enrollment and its progress
// @Tags     enrollments
// @Produce  json
// @Param    id  path     string true "MongoID"
// @Success  200 {object} res.Response{}
// @Security ApiKeyAuth
// @Router   /enrollments/{id} [delete]
func (e *EnrollmentController) DeleteEnrollment(c *gin.Context) {
	if err := e.enrollments.DeleteEnrollment(c.Request.Context(), c.Param("id"), currentClaims(c)); err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}

// Certificate godoc
// @Summary  Completion certificate
// @Tags     enrollments
// @Produce  application/pdf
// @Param    id  path string true "MongoID"
// @Success  200
// @Failure  400 {object} res.Response{} "The course is not completed yet"
// @Security ApiKeyAuth
// @Router   /enrollments/{id}/certificate [get]
func (e *EnrollmentController) Certificate(c *gin.Context) {
	file, filename, err := e.enrollments.Certificate(c.Request.Context(), c.Param("id"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	attachment(c, PDF_CONTENT_TYPE, filename, file)
}

func NewEnrollmentController(s *services.Services) *EnrollmentController {
	return &EnrollmentController{enrollments: s.Enrollments}
}
