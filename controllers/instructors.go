package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type InstructorController struct {
	instructors *services.InstructorService
}

// GetInstructors godoc
// @Summary Instructors
// @Tags    instructors
// @Produce json
// @Param   page  query    int false "Page"
// @Param   limit query    int false "Limit"
// @Success 200   {object} res.Response{body=map[string]interface{}} "instructors, total, page, pages"
// @Router  /instructors [get]
func (i *InstructorController) GetInstructors(c *gin.Context) {
	var query forms.PaginationForm
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	page, err := i.instructors.GetInstructors(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, withPage(map[string]interface{}{
		"instructors": page.Instructors,
	}, page.Page))
}

// GetInstructor godoc
// @Summary Instructor
// @Desc    Instructor profile with the published courses
// @Tags    instructors
// @Produce json
// @Param   id  path     string true "MongoID"
// @Success 200 {object} res.Response{body=map[string]interface{}} "instructor"
// @Failure 404 {object} res.Response{} "Instructor not found"
// @Router  /instructors/{id} [get]
func (i *InstructorController) GetInstructor(c *gin.Context) {
	instructor, err := i.instructors.GetInstructor(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"instructor": instructor,
	})
}

// BecomeInstructor godoc
// @Summary  Become instructor
// @Desc     Creates the instructor profile and returns a token with the new role
// @Tags     instructors
// @Accept   json
// @Produce  json
// @Param    instructor body     forms.InstructorForm true "Profile"
// @Success  201        {object} res.Response{body=map[string]interface{}} "instructor and token"
// @Failure  400        {object} res.Response{} "Already an instructor"
// @Security ApiKeyAuth
// @Router   /instructors [post]
func (i *InstructorController) BecomeInstructor(c *gin.Context) {
	var instructor forms.InstructorForm
	if err := c.ShouldBindJSON(&instructor); err != nil {
		badRequest(c, err)
		return
	}
	created, token, err := i.instructors.BecomeInstructor(c.Request.Context(), &instructor, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"instructor": created,
		"token":      token,
	})
}

// GetMe godoc
// @Summary  My instructor profile
// @Tags     instructors
// @Tags     roles.instructor
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "instructor"
// @Security ApiKeyAuth
// @Router   /instructors/me [get]
func (i *InstructorController) GetMe(c *gin.Context) {
	instructor, err := i.instructors.GetMe(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"instructor": instructor,
	})
}

// UpdateMe godoc
// @Summary  Update my instructor profile
// @Tags     instructors
// @Tags     roles.instructor
// @Accept   json
// @Produce  json
// @Param    instructor body     forms.UpdateInstructorForm true "Fields to change"
// @Success  200        {object} res.Response{body=map[string]interface{}} "instructor"
// @Security ApiKeyAuth
// @Router   /instructors/me [put]
func (i *InstructorController) UpdateMe(c *gin.Context) {
	var update forms.UpdateInstructorForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	instructor, err := i.instructors.UpdateMe(c.Request.Context(), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"instructor": instructor,
	})
}

// GetStats godoc
// @Summary  Instructor stats
// @Tags     instructors
// @Tags     roles.instructor
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "stats"
// @Security ApiKeyAuth
// @Router   /instructors/me/stats [get]
func (i *InstructorController) GetStats(c *gin.Context) {
	stats, err := i.instructors.GetStats(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"stats": stats,
	})
}

// ExportEnrollments godoc
// @Summary  Export enrollments
// @Desc     Excel file with the students of a course and their progress
// @Tags     instructors
// @Tags     roles.instructor
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    idCourse path string true "MongoID"
// @Success  200
// @Failure  403 {object} res.Response{} "Not the course instructor"
// @Security ApiKeyAuth
// @Router   /instructor/courses/{idCourse}/export [get]
func (i *InstructorController) ExportEnrollments(c *gin.Context) {
	file, filename, err := i.instructors.ExportEnrollments(c.Request.Context(), c.Param("idCourse"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	attachment(c, XLSX_CONTENT_TYPE, filename, file)
}

func NewInstructorController(s *services.Services) *InstructorController {
	return &InstructorController{instructors: s.Instructors}
}
