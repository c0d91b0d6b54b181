package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type LessonController struct {
	lessons *services.LessonService
}

// GetLessons godoc
// @Summary Chapter lessons
// @Desc    Lesson outlines of a chapter
// @Tags    lessons
// @Produce json
// @Param   idChapter path     string true "MongoID"
// @Success 200       {object} res.Response{body=map[string]interface{}} "lessons"
// @Router  /chapters/{idChapter}/lessons [get]
func (l *LessonController) GetLessons(c *gin.Context) {
	lessons, err := l.lessons.GetLessons(c.Request.Context(), c.Param("idChapter"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"lessons": lessons,
	})
}

// CreateLesson godoc
// @Summary  New lesson
// @Tags     lessons
// @Tags     roles.instructor
// @Accept   json
// @Produce  json
// @Param    idChapter path     string           true "MongoID"
// @Param    lesson    body     forms.LessonForm true "Lesson"
// @Success  201       {object} res.Response{body=map[string]interface{}} "lesson"
// @Security ApiKeyAuth
// @Router   /chapters/{idChapter}/lessons [post]
func (l *LessonController) CreateLesson(c *gin.Context) {
	var lesson forms.LessonForm
	if err := c.ShouldBindJSON(&lesson); err != nil {
		badRequest(c, err)
		return
	}
	created, err := l.lessons.CreateLesson(c.Request.Context(), c.Param("idChapter"), &lesson, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"lesson": created,
	})
}

// GetLesson godoc
// @Summary Lesson
// @Desc    Full lesson for the owner, enrolled students or a free preview
// @Tags    lessons
// @Produce json
// @Param   idLesson path     string true "MongoID"
// @Success 200      {object} res.Response{body=map[string]interface{}} "lesson"
// @Failure 401      {object} res.Response{} "Sign in required"
// @Failure 403      {object} res.Response{} "Not enrolled"
// @Failure 404      {object} res.Response{} "Lesson not found"
// @Router  /lessons/{idLesson} [get]
func (l *LessonController) GetLesson(c *gin.Context) {
	lesson, err := l.lessons.GetLesson(c.Request.Context(), c.Param("idLesson"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"lesson": lesson,
	})
}

// UpdateLesson godoc
// @Summary  Update lesson
// @Tags     lessons
// @Tags     roles.instructor
// @Accept   json
// @Produce  json
// @Param    idLesson path     string                 true "MongoID"
// @Param    lesson   body     forms.UpdateLessonForm true "Fields to change"
// @Success  200      {object} res.Response{body=map[string]interface{}} "lesson"
// @Security ApiKeyAuth
// @Router   /lessons/{idLesson} [put]
func (l *LessonController) UpdateLesson(c *gin.Context) {
	var update forms.UpdateLessonForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	lesson, err := l.lessons.UpdateLesson(c.Request.Context(), c.Param("idLesson"), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"lesson": lesson,
	})
}

// DeleteLesson godoc
// @Summary  Delete lesson
// @Tags     lessons
// @Tags     roles.instructor
// @Produce  json
// @Param    idLesson path     string true "MongoID"
// @Success  200      {object} res.Response{}
// @Security ApiKeyAuth
// @Router   /lessons/{idLesson} [delete]
func (l *LessonController) DeleteLesson(c *gin.Context) {
	if err := l.lessons.DeleteLesson(c.Request.Context(), c.Param("idLesson"), currentClaims(c)); err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}

// UploadAttachment godoc
// @Summary  Upload attachment
// @Tags     lessons
// @Tags     roles.instructor
// @Accept   multipart/form-data
// @Produce  json
// @Param    idLesson path     string true "MongoID"
// @Param    file     formData file   true "File"
// @Success  201      {object} res.Response{body=map[string]interface{}} "attachment"
// @Failure  400      {object} res.Response{} "Too many or too big"
// @Failure  503      {object} res.Response{} "Storage disabled"
// @Security ApiKeyAuth
// @Router   /lessons/{idLesson}/attachments [post]
func (l *LessonController) UploadAttachment(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	uploaded, errRes := l.lessons.UploadAttachment(c.Request.Context(), c.Param("idLesson"), file, currentClaims(c))
	if errRes != nil {
		abort(c, errRes)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"attachment": uploaded,
	})
}

// DeleteAttachment godoc
// @Summary  Delete attachment
// @Tags     lessons
// @Tags     roles.instructor
// @Produce  json
// @Param    idLesson     path     string true "MongoID"
// @Param    idAttachment path     string true "MongoID"
// @Success  200          {object} res.Response{}
// @Security ApiKeyAuth
// @Router   /lessons/{idLesson}/attachments/{idAttachment} [delete]
func (l *LessonController) DeleteAttachment(c *gin.Context) {
	err := l.lessons.DeleteAttachment(
		c.Request.Context(),
		c.Param("idLesson"),
		c.Param("idAttachment"),
		currentClaims(c),
	)
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}

// DownloadAttachments godoc
// @Summary Download attachments
// @Desc    Zip with every attachment of the lesson
// @Tags    lessons
// @Produce application/zip
// @Param   idLesson path string true "MongoID"
// @Success 200
// @Failure 403 {object} res.Response{} "Not enrolled"
// @Failure 404 {object} res.Response{} "No attachments"
// @Router  /lessons/{idLesson}/attachments/download [get]
func (l *LessonController) DownloadAttachments(c *gin.Context) {
	file, filename, err := l.lessons.DownloadAttachments(c.Request.Context(), c.Param("idLesson"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	attachment(c, ZIP_CONTENT_TYPE, filename, file)
}

func NewLessonController(s *services.Services) *LessonController {
	return &LessonController{lessons: s.Lessons}
}
