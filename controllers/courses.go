package controllers

import (
	"net/http"
	"strconv"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type CourseController struct {
	courses *services.CourseService
}

// GetCourses godoc
// @Summary Catalog
// @Desc    Published courses with filters, sort and pagination
// @Tags    courses
// @Produce json
// @Param   category   query    string  false "Category"
// @Param   level      query    string  false "Level" Enums(beginner, intermediate, advanced)
// @Param   instructor query    string  false "Instructor MongoID"
// @Param   search     query    string  false "Title or description"
// @Param   min_rating query    number  false "Minimum rating"
// @Param   sort       query    string  false "Sort" Enums(newest, popular, rating, price_asc, price_desc)
// @Param   page       query    int     false "Page"
// @Param   limit      query    int     false "Limit"
// @Success 200        {object} res.Response{body=map[string]interface{}} "courses, total, page, pages"
// @Failure 400        {object} res.Response{} "Bad query"
// @Failure 503        {object} res.Response{} "DB Service Unavailable"
// @Router  /courses [get]
func (co *CourseController) GetCourses(c *gin.Context) {
	var query forms.CourseQueryForm
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	page, err := co.courses.GetCourses(c.Request.Context(), &query)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, withPage(map[string]interface{}{
		"courses": page.Courses,
	}, page.Page))
}

// SearchCourses godoc
// @Summary Search courses
// @Desc    Full-text search over the published catalog
// @Tags    courses
// @Produce json
// @Param   q     query    string true  "Text"
// @Param   limit query    int    false "Limit"
// @Success 200   {object} res.Response{body=map[string]interface{}} "courses"
// @Failure 400   {object} res.Response{} "q is required"
// @Router  /courses/search [get]
func (co *CourseController) SearchCourses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	courses, err := co.courses.SearchCourses(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"courses": courses,
	})
}

// GetCourse godoc
// @Summary Course detail
// @Desc    Course with its chapters and lesson outlines. Drafts are visible to the owner only.
// @Tags    courses
// @Produce json
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{body=map[string]interface{}} "course"
// @Failure 400      {object} res.Response{} "Invalid id"
// @Failure 404      {object} res.Response{} "Course not found"
// @Router  /courses/{idCourse} [get]
func (co *CourseController) GetCourse(c *gin.Context) {
	course, err := co.courses.GetCourse(c.Request.Context(), c.Param("idCourse"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"course": course,
	})
}

// CreateCourse godoc
// @Summary  New course
// @Tags     courses
// @Tags     roles.instructor
// @Accept   json
// @Produce  json
// @Param    course body     forms.CourseForm true "Course"
// @Success  201    {object} res.Response{body=map[string]interface{}} "course"
// @Failure  400    {object} res.Response{} "Bad body"
// @Failure  403    {object} res.Response{} "Instructor profile required"
// @Security ApiKeyAuth
// @Router   /courses [post]
func (co *CourseController) CreateCourse(c *gin.Context) {
	var course forms.CourseForm
	if err := c.ShouldBindJSON(&course); err != nil {
		badRequest(c, err)
		return
	}
	created, err := co.courses.CreateCourse(c.Request.Context(), &course, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"course": created,
	})
}

// UpdateCourse godoc
// @Summary  Update course
// @Tags     courses
// @Tags     roles.instructor
// @Accept   json
// @Produce  json
// @Param    idCourse path     string                 true "MongoID"
// @Param    course   body     forms.UpdateCourseForm true "Fields to change"
// @Success  200      {object} res.Response{body=map[string]interface{}} "course"
// @Failure  400      {object} res.Response{} "Bad body or nothing to publish"
// @Failure  403      {object} res.Response{} "Not the course instructor"
// @Failure  404      {object} res.Response{} "Course not found"
// @Security ApiKeyAuth
// @Router   /courses/{idCourse} [put]
func (co *CourseController) UpdateCourse(c *gin.Context) {
	var update forms.UpdateCourseForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	course, err := co.courses.UpdateCourse(c.Request.Context(), c.Param("idCourse"), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"course": course,
	})
}

// DeleteCourse godoc
// @Summary  Delete course
// @Desc     Deletes the course with its chapters and lessons
// @Tags     courses
// @Tags     roles.instructor
// @Produce  json
// @Param    idCourse path     string true "MongoID"
// @Success  200      {object} res.Response{}
// @Failure  403      {object} res.Response{} "Not the course instructor"
// @Failure  404      {object} res.Response{} "Course not found"
// @Security ApiKeyAuth
// @Router   /courses/{idCourse} [delete]
func (co *CourseController) DeleteCourse(c *gin.Context) {
	if err := co.courses.DeleteCourse(c.Request.Context(), c.Param("idCourse"), currentClaims(c)); err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}

// UploadThumbnail godoc
// @Summary  Course thumbnail
// @Tags     courses
// @Tags     roles.instructor
// @Accept   multipart/form-data
// @Produce  json
// @Param    idCourse  path     string true "MongoID"
// @Param    thumbnail formData file   true "Image"
// @Success  200       {object} res.Response{body=map[string]interface{}} "course"
// @Failure  400       {object} res.Response{} "Not an image"
// @Failure  503       {object} res.Response{} "Storage disabled"
// @Security ApiKeyAuth
// @Router   /courses/{idCourse}/thumbnail [post]
func (co *CourseController) UploadThumbnail(c *gin.Context) {
	file, err := c.FormFile("thumbnail")
	if err != nil {
		badRequest(c, err)
		return
	}
	course, errRes := co.courses.UploadThumbnail(c.Request.Context(), c.Param("idCourse"), file, currentClaims(c))
	if errRes != nil {
		abort(c, errRes)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"course": course,
	})
}

// GetInstructorCourses godoc
// @Summary  My courses
// @Desc     Courses of the current instructor, drafts included
// @Tags     courses
// @Tags     roles.instructor
// @Produce  json
// @Success  200 {object} res.Response{body=map[string]interface{}} "courses"
// @Security ApiKeyAuth
// @Router   /instructor/courses [get]
func (co *CourseController) GetInstructorCourses(c *gin.Context) {
	courses, err := co.courses.GetInstructorCourses(c.Request.Context(), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"courses": courses,
	})
}

func NewCourseController(s *services.Services) *CourseController {
	return &CourseController{courses: s.Courses}
}
