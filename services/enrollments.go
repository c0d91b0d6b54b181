package services

import (
	"context"
	"fmt"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type EnrollmentService struct {
	*Deps
}

func (e *EnrollmentService) GetEnrollments(
	ctx context.Context,
	claims *Claims,
	status string,
	page,
	limit int,
) (*EnrollmentsPage, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	skip, lim := forms.Normalize(page, limit)
	enrollments, total, err := e.Enrollments.FindByUser(ctx, idUser, status, skip, lim)
	if err != nil {
		return nil, e.unavailable(err)
	}
	withCourses, errRes := e.withCourses(ctx, enrollments)
	if errRes != nil {
		return nil, errRes
	}
	return &EnrollmentsPage{
		Enrollments: withCourses,
		Page:        newPage(total, skip, lim),
	}, nil
}

func (d *Deps) withCourses(ctx context.Context, enrollments []models.Enrollment) ([]EnrollmentWCourse, *res.ErrorRes) {
	result := make([]EnrollmentWCourse, 0, len(enrollments))
	if len(enrollments) == 0 {
		return result, nil
	}
	ids := make([]primitive.ObjectID, 0, len(enrollments))
	for _, enrollment := range enrollments {
		ids = append(ids, enrollment.Course)
	}
	courses, err := d.Courses.FindByIDs(ctx, ids)
	if err != nil {
		return nil, d.unavailable(err)
	}
	byID := make(map[primitive.ObjectID]*models.Course, len(courses))
	for i := range courses {
		byID[courses[i].ID] = &courses[i]
	}
	for _, enrollment := range enrollments {
		item := EnrollmentWCourse{Enrollment: enrollment}
		if course, ok := byID[enrollment.Course]; ok {
			item.CourseSummary = newCourseSummary(course)
		}
		result = append(result, item)
	}
	return result, nil
}

// Enroll creates the enrollment or reactivates a dropped one
func (e *EnrollmentService) Enroll(ctx context.Context, enroll *forms.EnrollmentForm, claims *Claims) (*models.Enrollment, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	idCourse, errRes := parseID(enroll.Course, "course")
	if errRes != nil {
		return nil, errRes
	}
	course, errRes := e.findCourse(ctx, idCourse)
	if errRes != nil {
		return nil, errRes
	}
	if !course.IsPublished {
		return nil, res.NotFound(fmt.Errorf("course not found"))
	}
	if course.Instructor == idUser {
		return nil, res.BadRequest(fmt.Errorf("you cannot enroll in your own course"))
	}

	now := nowFunc()
	existing, err := e.Enrollments.FindByUserAndCourse(ctx, idUser, idCourse)
	if err != nil {
		return nil, e.unavailable(err)
	}
	if existing != nil {
		if existing.Status != models.ENROLLMENT_DROPPED {
			return nil, res.BadRequest(fmt.Errorf("already enrolled"))
		}
		existing.Status = models.ENROLLMENT_ACTIVE
		existing.LastAccessedAt = now
		if err := e.Enrollments.Save(ctx, existing); err != nil {
			return nil, e.unavailable(err)
		}
		return existing, nil
	}

	enrollment := &models.Enrollment{
		User:           idUser,
		Course:         idCourse,
		Status:         models.ENROLLMENT_ACTIVE,
		Progress:       0,
		EnrolledAt:     now,
		LastAccessedAt: now,
	}
	id, err := e.Enrollments.Insert(ctx, enrollment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, res.BadRequest(fmt.Errorf("already enrolled"))
		}
		return nil, e.unavailable(err)
	}
	enrollment.ID = id
	if err := e.Courses.IncEnrollmentCount(ctx, idCourse, 1); err != nil {
		e.Logger.Warn("enrollment count not updated", zap.Error(err))
	}
	e.invalidateCourse(ctx, idCourse)
	e.publish(ENROLLMENT_CREATED, EnrollmentCreatedEvent{
		User:       idUser.Hex(),
		Course:     idCourse.Hex(),
		Enrollment: id.Hex(),
	})
	return enrollment, nil
}

// ownEnrollment answers 404 for enrollments of other users
func (e *EnrollmentService) ownEnrollment(ctx context.Context, idEnrollment string, claims *Claims) (*models.Enrollment, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	idObjEnrollment, errRes := parseID(idEnrollment, "enrollment")
	if errRes != nil {
		return nil, errRes
	}
	enrollment, err := e.Enrollments.FindByID(ctx, idObjEnrollment)
	if err != nil {
		return nil, e.unavailable(err)
	}
	if enrollment == nil || enrollment.User != idUser {
		return nil, res.NotFound(fmt.Errorf("enrollment not found"))
	}
	return enrollment, nil
}

func (e *EnrollmentService) GetEnrollment(ctx context.Context, idEnrollment string, claims *Claims) (*EnrollmentDetail, *res.ErrorRes) {
	enrollment, errRes := e.ownEnrollment(ctx, idEnrollment, claims)
	if errRes != nil {
		return nil, errRes
	}
	progress, err := e.Progress.FindByEnrollment(ctx, enrollment.ID)
	if err != nil {
		return nil, e.unavailable(err)
	}
	if progress == nil {
		progress = []models.Progress{}
	}
	withCourse, errRes := e.withCourses(ctx, []models.Enrollment{*enrollment})
	if errRes != nil {
		return nil, errRes
	}
	return &EnrollmentDetail{
		Enrollment: withCourse[0],
		Progress:   progress,
	}, nil
}

func (e *EnrollmentService) UpdateEnrollment(
	ctx context.Context,
	idEnrollment string,
	update *forms.UpdateEnrollmentForm,
	claims *Claims,
) (*models.Enrollment, *res.ErrorRes) {
	enrollment, errRes := e.ownEnrollment(ctx, idEnrollment, claims)
	if errRes != nil {
		return nil, errRes
	}
	if enrollment.Status == models.ENROLLMENT_COMPLETED {
		return nil, res.BadRequest(fmt.Errorf("a completed enrollment cannot change"))
	}
	if !CanTransition(enrollment.Status, update.Status) {
		return nil, res.BadRequest(fmt.Errorf(
			"cannot change enrollment from %s to %s",
			enrollment.Status,
			update.Status,
		))
	}
	enrollment.Status = update.Status
	enrollment.LastAccessedAt = nowFunc()
	if err := e.Enrollments.Save(ctx, enrollment); err != nil {
		return nil, e.unavailable(err)
	}
	return enrollment, nil
}

// DeleteEnrollment removes the enrollment and then, in a second call, its
// progress records
func (e *EnrollmentService) DeleteEnrollment(ctx context.Context, idEnrollment string, claims *Claims) *res.ErrorRes {
	enrollment, errRes := e.ownEnrollment(ctx, idEnrollment, claims)
	if errRes != nil {
		return errRes
	}
	if err := e.Enrollments.Delete(ctx, enrollment.ID); err != nil {
		return e.unavailable(err)
	}
	if _, err := e.Progress.DeleteByEnrollment(ctx, enrollment.ID); err != nil {
		return e.unavailable(err)
	}
	if err := e.Courses.IncEnrollmentCount(ctx, enrollment.Course, -1); err != nil {
		e.Logger.Warn("enrollment count not updated", zap.Error(err))
	}
	e.invalidateCourse(ctx, enrollment.Course)
	return nil
}

// RecomputeProgress refreshes the enrollment percentage from the completed
// visible lessons. It reports whether the enrollment just got completed.
func (e *EnrollmentService) RecomputeProgress(ctx context.Context, enrollment *models.Enrollment) (bool, *res.ErrorRes) {
	lessons, err := e.visibleLessons(ctx, enrollment.Course)
	if err != nil {
		return false, e.unavailable(err)
	}
	records, err := e.Progress.FindByUser(ctx, enrollment.User, enrollment.Course)
	if err != nil {
		return false, e.unavailable(err)
	}
	visible := make(map[primitive.ObjectID]bool, len(lessons))
	for _, lesson := range lessons {
		visible[lesson.ID] = true
	}
	completed := 0
	for _, record := range records {
		if record.Completed && visible[record.Lesson] {
			completed++
		}
	}

	now := nowFunc()
	justCompleted := false
	enrollment.Progress = ProgressPercent(completed, len(lessons))
	if enrollment.Progress == 100 && enrollment.Status != models.ENROLLMENT_COMPLETED {
		enrollment.Status = models.ENROLLMENT_COMPLETED
		enrollment.CompletedAt = &now
		justCompleted = true
	}
	enrollment.LastAccessedAt = now
	if err := e.Enrollments.Save(ctx, enrollment); err != nil {
		return false, e.unavailable(err)
	}
	return justCompleted, nil
}
