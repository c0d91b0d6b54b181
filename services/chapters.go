package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChapterService struct {
	*Deps
}

func (c *ChapterService) GetChapters(ctx context.Context, idCourse string, claims *Claims) ([]models.Chapter, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	course, errRes := c.findCourse(ctx, idObjCourse)
	if errRes != nil {
		return nil, errRes
	}
	owner := ownsCourse(course, claims)
	if !course.IsPublished && !owner {
		return nil, res.NotFound(fmt.Errorf("course not found"))
	}
	chapters, err := c.Chapters.FindByCourse(ctx, course.ID, !owner)
	if err != nil {
		return nil, c.unavailable(err)
	}
	if chapters == nil {
		chapters = []models.Chapter{}
	}
	return chapters, nil
}

func (c *ChapterService) CreateChapter(
	ctx context.Context,
	idCourse string,
	chapter *forms.ChapterForm,
	claims *Claims,
) (*models.Chapter, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	course, errRes := c.managedCourse(ctx, idObjCourse, claims)
	if errRes != nil {
		return nil, errRes
	}
	position, err := c.Chapters.Count(ctx, course.ID)
	if err != nil {
		return nil, c.unavailable(err)
	}

	now := nowFunc()
	newChapter := &models.Chapter{
		Course:      course.ID,
		Title:       strings.TrimSpace(chapter.Title),
		Description: chapter.Description,
		Position:    int(position),
		IsPublished: chapter.IsPublished != nil && *chapter.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := c.Chapters.Insert(ctx, newChapter)
	if err != nil {
		return nil, c.unavailable(err)
	}
	newChapter.ID = id
	c.invalidateCourse(ctx, course.ID)
	return newChapter, nil
}

// managedChapter loads a chapter whose course the caller may author
func (d *Deps) managedChapter(ctx context.Context, idChapter string, claims *Claims) (*models.Chapter, *res.ErrorRes) {
	idObjChapter, errRes := parseID(idChapter, "chapter")
	if errRes != nil {
		return nil, errRes
	}
	chapter, err := d.Chapters.FindByID(ctx, idObjChapter)
	if err != nil {
		return nil, d.unavailable(err)
	}
	if chapter == nil {
		return nil, res.NotFound(fmt.Errorf("chapter not found"))
	}
	if _, errRes := d.managedCourse(ctx, chapter.Course, claims); errRes != nil {
		return nil, errRes
	}
	return chapter, nil
}

func (c *ChapterService) UpdateChapter(
	ctx context.Context,
	idChapter string,
	update *forms.UpdateChapterForm,
	claims *Claims,
) (*models.Chapter, *res.ErrorRes) {
	chapter, errRes := c.managedChapter(ctx, idChapter, claims)
	if errRes != nil {
		return nil, errRes
	}
	if update.Title != nil {
		chapter.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		chapter.Description = *update.Description
	}
	if update.IsPublished != nil {
		chapter.IsPublished = *update.IsPublished
	}
	chapter.UpdatedAt = nowFunc()
	if err := c.Chapters.Save(ctx, chapter); err != nil {
		return nil, c.unavailable(err)
	}
	c.invalidateCourse(ctx, chapter.Course)
	return chapter, nil
}

// DeleteChapter removes the chapter and then its lessons
func (c *ChapterService) DeleteChapter(ctx context.Context, idChapter string, claims *Claims) *res.ErrorRes {
	chapter, errRes := c.managedChapter(ctx, idChapter, claims)
	if errRes != nil {
		return errRes
	}
	if err := c.Chapters.Delete(ctx, chapter.ID); err != nil {
		return c.unavailable(err)
	}
	if _, err := c.Lessons.DeleteByChapter(ctx, chapter.ID); err != nil {
		return c.unavailable(err)
	}
	c.invalidateCourse(ctx, chapter.Course)
	return nil
}

// ReorderChapters sets each chapter position to its index in ids. Every
// chapter of the course must be listed exactly once.
func (c *ChapterService) ReorderChapters(
	ctx context.Context,
	idCourse string,
	reorder *forms.ReorderForm,
	claims *Claims,
) ([]models.Chapter, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	course, errRes := c.managedCourse(ctx, idObjCourse, claims)
	if errRes != nil {
		return nil, errRes
	}
	chapters, err := c.Chapters.FindByCourse(ctx, course.ID, false)
	if err != nil {
		return nil, c.unavailable(err)
	}
	if len(chapters) != len(reorder.IDs) {
		return nil, res.BadRequest(fmt.Errorf("ids must list every chapter of the course"))
	}

	existing := make(map[primitive.ObjectID]bool, len(chapters))
	for _, chapter := range chapters {
		existing[chapter.ID] = true
	}
	ids := make([]primitive.ObjectID, 0, len(reorder.IDs))
	seen := make(map[primitive.ObjectID]bool, len(reorder.IDs))
	for _, id := range reorder.IDs {
		idObj, errRes := parseID(id, "chapter")
		if errRes != nil {
			return nil, errRes
		}
		if !existing[idObj] || seen[idObj] {
			return nil, res.BadRequest(fmt.Errorf("chapter %s does not belong to the course", id))
		}
		seen[idObj] = true
		ids = append(ids, idObj)
	}
	if err := c.Chapters.SetPositions(ctx, course.ID, ids); err != nil {
		return nil, c.unavailable(err)
	}
	c.invalidateCourse(ctx, course.ID)

	reordered, err := c.Chapters.FindByCourse(ctx, course.ID, false)
	if err != nil {
		return nil, c.unavailable(err)
	}
	return reordered, nil
}
