package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

type ChapterController struct {
	chapters *services.ChapterService
}

// GetChapters godoc
// @Summary Course chapters
// @Tags    chapters
// @Produce json
// @Param   idCourse path     string true "MongoID"
// @Success 200      {object} res.Response{body=map[string]interface{}} "chapters"
// @Failure 404      {object} res.Response{} "Course not found"
// @Router  /courses/{idCourse}/chapters [get]
func (ch *ChapterController) GetChapters(c *gin.Context) {
	chapters, err := ch.chapters.GetChapters(c.Request.Context(), c.Param("idCourse"), currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"chapters": chapters,
	})
}

// CreateChapter godoc
// @Summary  New chapter
// @Tags     chapters
// @Tags     roles.instructor
// @Accept   json
// @Produce  json
// @Param    idCourse path     string            true "MongoID"
// @Param    chapter  body     forms.ChapterForm true "Chapter"
// @Success  201      {object} res.Response{body=map[string]interface{}} "chapter"
// @Failure  403      {object} res.Response{} "Not the course instructor"
// @Security ApiKeyAuth
// @Router   /courses/{idCourse}/chapters [post]
func (ch *ChapterController) CreateChapter(c *gin.Context) {
	var chapter forms.ChapterForm
	if err := c.ShouldBindJSON(&chapter); err != nil {
		badRequest(c, err)
		return
	}
	created, err := ch.chapters.CreateChapter(c.Request.Context(), c.Param("idCourse"), &chapter, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusCreated, map[string]interface{}{
		"chapter": created,
	})
}

// UpdateChapter godoc
// @Summary  Update chapter
// @Tags     chapters
// @Tags     roles.instructor
// @Accept   json
// @Produce  json
// @Param    idChapter path     string                  true "MongoID"
// @Param    chapter   body     forms.UpdateChapterForm true "Fields to change"
// @Success  200       {object} res.Response{body=map[string]interface{}} "chapter"
// @Security ApiKeyAuth
// @Router   /chapters/{idChapter} [put]
func (ch *ChapterController) UpdateChapter(c *gin.Context) {
	var update forms.UpdateChapterForm
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	chapter, err := ch.chapters.UpdateChapter(c.Request.Context(), c.Param("idChapter"), &update, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"chapter": chapter,
	})
}

// DeleteChapter godoc
// @Summary  Delete chapter
// @Desc     Deletes the chapter and its lessons
// @Tags     chapters
// @Tags     roles.instructor
// @Produce  json
// @Param    idChapter path     string true "MongoID"
// @Success  200       {object} res.Response{}
// @Security ApiKeyAuth
// @Router   /chapters/{idChapter} [delete]
func (ch *ChapterController) DeleteChapter(c *gin.Context) {
	if err := ch.chapters.DeleteChapter(c.Request.Context(), c.Param("idChapter"), currentClaims(c)); err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}

// ReorderChapters godoc
// @Summary  Reorder chapters
// @Desc     Positions follow the order of ids, every chapter must be listed once
// @Tags     chapters
// @Tags     roles.instructor
// @Accept   json
// @Produce  json
// @Param    idCourse path     string            true "MongoID"
// @Param    reorder  body     forms.ReorderForm true "Chapter ids"
// @Success  200      {object} res.Response{body=map[string]interface{}} "chapters"
// @Failure  400      {object} res.Response{} "Ids do not match the chapters"
// @Security ApiKeyAuth
// @Router   /courses/{idCourse}/chapters/reorder [put]
func (ch *ChapterController) ReorderChapters(c *gin.Context) {
	var reorder forms.ReorderForm
	if err := c.ShouldBindJSON(&reorder); err != nil {
		badRequest(c, err)
		return
	}
	chapters, err := ch.chapters.ReorderChapters(c.Request.Context(), c.Param("idCourse"), &reorder, currentClaims(c))
	if err != nil {
		abort(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]interface{}{
		"chapters": chapters,
	})
}

func NewChapterController(s *services.Services) *ChapterController {
	return &ChapterController{chapters: s.Chapters}
}
