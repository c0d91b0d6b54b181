package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.uber.org/zap"
)

type LessonService struct {
	*Deps
}

func (l *LessonService) GetLessons(ctx context.Context, idChapter string, claims *Claims) ([]models.Lesson, *res.ErrorRes) {
	idObjChapter, errRes := parseID(idChapter, "chapter")
	if errRes != nil {
		return nil, errRes
	}
	chapter, err := l.Chapters.FindByID(ctx, idObjChapter)
	if err != nil {
		return nil, l.unavailable(err)
	}
	if chapter == nil {
		return nil, res.NotFound(fmt.Errorf("chapter not found"))
	}
	course, errRes := l.findCourse(ctx, chapter.Course)
	if errRes != nil {
		return nil, errRes
	}
	owner := ownsCourse(course, claims)
	if !owner && (!course.IsPublished || !chapter.IsPublished) {
		return nil, res.NotFound(fmt.Errorf("chapter not found"))
	}

	lessons, err := l.Lessons.FindByChapter(ctx, chapter.ID, !owner)
	if err != nil {
		return nil, l.unavailable(err)
	}
	outline := make([]models.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		outline = append(outline, lesson.Outline())
	}
	return outline, nil
}

func (l *LessonService) CreateLesson(
	ctx context.Context,
	idChapter string,
	lesson *forms.LessonForm,
	claims *Claims,
) (*models.Lesson, *res.ErrorRes) {
	chapter, errRes := l.managedChapter(ctx, idChapter, claims)
	if errRes != nil {
		return nil, errRes
	}
	position, err := l.Lessons.CountByChapter(ctx, chapter.ID)
	if err != nil {
		return nil, l.unavailable(err)
	}

	now := nowFunc()
	newLesson := &models.Lesson{
		Course:        chapter.Course,
		Chapter:       chapter.ID,
		Title:         strings.TrimSpace(lesson.Title),
		Content:       lesson.Content,
		VideoURL:      lesson.VideoURL,
		Duration:      lesson.Duration,
		Position:      int(position),
		IsPublished:   lesson.IsPublished != nil && *lesson.IsPublished,
		IsFreePreview: lesson.IsFreePreview != nil && *lesson.IsFreePreview,
		Attachments:   []models.Attachment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	id, err := l.Lessons.Insert(ctx, newLesson)
	if err != nil {
		return nil, l.unavailable(err)
	}
	newLesson.ID = id
	l.invalidateCourse(ctx, chapter.Course)
	return newLesson, nil
}

func (l *LessonService) findLesson(ctx context.Context, idLesson string) (*models.Lesson, *res.ErrorRes) {
	idObjLesson, errRes := parseID(idLesson, "lesson")
	if errRes != nil {
		return nil, errRes
	}
	lesson, err := l.Lessons.FindByID(ctx, idObjLesson)
	if err != nil {
		return nil, l.unavailable(err)
	}
	if lesson == nil {
		return nil, res.NotFound(fmt.Errorf("lesson not found"))
	}
	return lesson, nil
}

func (l *LessonService) managedLesson(ctx context.Context, idLesson string, claims *Claims) (*models.Lesson, *res.ErrorRes) {
	lesson, errRes := l.findLesson(ctx, idLesson)
	if errRes != nil {
		return nil, errRes
	}
	if _, errRes := l.managedCourse(ctx, lesson.Course, claims); errRes != nil {
		return nil, errRes
	}
	return lesson, nil
}

// checkAccess lets through the course owner, admins, enrolled users that
// did not drop the course, and anyone on a published free preview.
func (l *LessonService) checkAccess(ctx context.Context, lesson *models.Lesson, claims *Claims) *res.ErrorRes {
	course, errRes := l.findCourse(ctx, lesson.Course)
	if errRes != nil {
		return errRes
	}
	if ownsCourse(course, claims) {
		return nil
	}
	if !course.IsPublished {
		return res.NotFound(fmt.Errorf("lesson not found"))
	}
	visible, err := l.lessonVisible(ctx, lesson)
	if err != nil {
		return l.unavailable(err)
	}
	if !visible {
		return res.NotFound(fmt.Errorf("lesson not found"))
	}
	if lesson.IsFreePreview {
		return nil
	}
	idUser, errRes := userID(claims)
	if errRes != nil {
		return errRes
	}
	enrollment, err := l.Enrollments.FindByUserAndCourse(ctx, idUser, course.ID)
	if err != nil {
		return l.unavailable(err)
	}
	if enrollment == nil || enrollment.Status == models.ENROLLMENT_DROPPED {
		return res.Forbidden(fmt.Errorf("enroll in the course to access this lesson"))
	}
	if err := l.Enrollments.Touch(ctx, enrollment.ID, nowFunc()); err != nil {
		l.Logger.Warn("last access not saved", zap.Error(err))
	}
	return nil
}

func (l *LessonService) GetLesson(ctx context.Context, idLesson string, claims *Claims) (*models.Lesson, *res.ErrorRes) {
	lesson, errRes := l.findLesson(ctx, idLesson)
	if errRes != nil {
		return nil, errRes
	}
	if errRes := l.checkAccess(ctx, lesson, claims); errRes != nil {
		return nil, errRes
	}
	return lesson, nil
}

func (l *LessonService) UpdateLesson(
	ctx context.Context,
	idLesson string,
	update *forms.UpdateLessonForm,
	claims *Claims,
) (*models.Lesson, *res.ErrorRes) {
	lesson, errRes := l.managedLesson(ctx, idLesson, claims)
	if errRes != nil {
		return nil, errRes
	}
	if update.Title != nil {
		lesson.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		lesson.Content = *update.Content
	}
	if update.VideoURL != nil {
		lesson.VideoURL = *update.VideoURL
	}
	if update.Duration != nil {
		lesson.Duration = *update.Duration
	}
	if update.Position != nil {
		lesson.Position = *update.Position
	}
	if update.IsPublished != nil {
		lesson.IsPublished = *update.IsPublished
	}
	if update.IsFreePreview != nil {
		lesson.IsFreePreview = *update.IsFreePreview
	}
	lesson.UpdatedAt = nowFunc()
	if err := l.Lessons.Save(ctx, lesson); err != nil {
		return nil, l.unavailable(err)
	}
	l.invalidateCourse(ctx, lesson.Course)
	return lesson, nil
}

func (l *LessonService) DeleteLesson(ctx context.Context, idLesson string, claims *Claims) *res.ErrorRes {
	lesson, errRes := l.managedLesson(ctx, idLesson, claims)
	if errRes != nil {
		return errRes
	}
	if err := l.Lessons.Delete(ctx, lesson.ID); err != nil {
		return l.unavailable(err)
	}
	for _, attachment := range lesson.Attachments {
		if err := l.Storage.DeleteFile(ctx, attachment.Key); err != nil {
			l.Logger.Warn("attachment not removed", zap.String("key", attachment.Key), zap.Error(err))
		}
	}
	l.invalidateCourse(ctx, lesson.Course)
	return nil
}
