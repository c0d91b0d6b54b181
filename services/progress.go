package services

import (
	"context"
	"fmt"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProgressService struct {
	*Deps
	enrollments  *EnrollmentService
	achievements *AchievementService
}

// UpdateProgress upserts the progress of a lesson, then recomputes the
// enrollment and awards achievements
func (p *ProgressService) UpdateProgress(ctx context.Context, update *forms.ProgressForm, claims *Claims) (*ProgressResult, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	idLesson, errRes := parseID(update.Lesson, "lesson")
	if errRes != nil {
		return nil, errRes
	}
	lesson, err := p.Lessons.FindByID(ctx, idLesson)
	if err != nil {
		return nil, p.unavailable(err)
	}
	if lesson == nil {
		return nil, res.NotFound(fmt.Errorf("lesson not found"))
	}
	visible, err := p.lessonVisible(ctx, lesson)
	if err != nil {
		return nil, p.unavailable(err)
	}
	if !visible {
		return nil, res.NotFound(fmt.Errorf("lesson not found"))
	}
	enrollment, err := p.Enrollments.FindByUserAndCourse(ctx, idUser, lesson.Course)
	if err != nil {
		return nil, p.unavailable(err)
	}
	if enrollment == nil {
		return nil, res.Forbidden(fmt.Errorf("you are not enrolled in this course"))
	}
	if enrollment.Status != models.ENROLLMENT_ACTIVE && enrollment.Status != models.ENROLLMENT_COMPLETED {
		return nil, res.Forbidden(fmt.Errorf("enrollment is not active"))
	}

	now := nowFunc()
	progress, err := p.Progress.FindByUserAndLesson(ctx, idUser, idLesson)
	if err != nil {
		return nil, p.unavailable(err)
	}
	isNew := progress == nil
	if isNew {
		progress = &models.Progress{
			User:       idUser,
			Course:     lesson.Course,
			Lesson:     idLesson,
			Enrollment: enrollment.ID,
		}
	}
	firstCompletion := *update.Completed && progress.CompletedAt == nil
	progress.Completed = *update.Completed
	if firstCompletion {
		progress.CompletedAt = &now
	}
	if update.Score != nil {
		progress.Score = *update.Score
	}
	progress.TimeSpent += update.TimeSpent
	progress.UpdatedAt = now

	if isNew {
		id, err := p.Progress.Insert(ctx, progress)
		if err != nil {
			return nil, p.unavailable(err)
		}
		progress.ID = id
	} else if err := p.Progress.Save(ctx, progress); err != nil {
		return nil, p.unavailable(err)
	}

	courseCompleted, errRes := p.enrollments.RecomputeProgress(ctx, enrollment)
	if errRes != nil {
		return nil, errRes
	}
	if firstCompletion {
		p.publish(LESSON_COMPLETED, LessonCompletedEvent{
			User:   idUser.Hex(),
			Course: lesson.Course.Hex(),
			Lesson: idLesson.Hex(),
			Date:   now,
		})
	}
	if courseCompleted {
		p.publish(COURSE_COMPLETED, CourseCompletedEvent{
			User:       idUser.Hex(),
			Course:     lesson.Course.Hex(),
			Enrollment: enrollment.ID.Hex(),
			Date:       now,
		})
	}

	awarded, errRes := p.achievements.Evaluate(ctx, idUser)
	if errRes != nil {
		// Achievements are awarded again on the next update
		p.Logger.Warn("achievements not evaluated", zap.Error(errRes.Err))
	}
	return &ProgressResult{
		Progress:     progress,
		Enrollment:   enrollment,
		Achievements: awarded,
	}, nil
}

func (p *ProgressService) GetProgress(ctx context.Context, idCourse string, claims *Claims) ([]models.Progress, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	idObjCourse := primitive.NilObjectID
	if idCourse != "" {
		if idObjCourse, errRes = parseID(idCourse, "course"); errRes != nil {
			return nil, errRes
		}
	}
	progress, err := p.Progress.FindByUser(ctx, idUser, idObjCourse)
	if err != nil {
		return nil, p.unavailable(err)
	}
	if progress == nil {
		progress = []models.Progress{}
	}
	return progress, nil
}

func (p *ProgressService) GetStreak(ctx context.Context, claims *Claims) (*Streak, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	completed, err := p.Progress.FindCompleted(ctx, idUser)
	if err != nil {
		return nil, p.unavailable(err)
	}
	streak := ComputeStreak(completionDates(completed), nowFunc())
	return &streak, nil
}
