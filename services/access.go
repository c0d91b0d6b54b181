package services

import (
	"context"
	"fmt"

	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseID(id, name string) (primitive.ObjectID, *res.ErrorRes) {
	idObj, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, res.BadRequest(fmt.Errorf("invalid %s id", name))
	}
	return idObj, nil
}

func userID(claims *Claims) (primitive.ObjectID, *res.ErrorRes) {
	if claims == nil {
		return primitive.NilObjectID, res.Unauthorized(fmt.Errorf("unauthorized"))
	}
	idObj, err := claims.ObjectID()
	if err != nil {
		return primitive.NilObjectID, res.Unauthorized(fmt.Errorf("invalid token subject"))
	}
	return idObj, nil
}

func isAdmin(claims *Claims) bool {
	return claims != nil && claims.UserType == models.ADMIN
}

// ownsCourse is true for the course instructor and for admins
func ownsCourse(course *models.Course, claims *Claims) bool {
	if claims == nil {
		return false
	}
	return isAdmin(claims) || course.Instructor.Hex() == claims.ID
}

func (d *Deps) findCourse(ctx context.Context, idCourse primitive.ObjectID) (*models.Course, *res.ErrorRes) {
	course, err := d.Courses.FindByID(ctx, idCourse)
	if err != nil {
		return nil, d.unavailable(err)
	}
	if course == nil {
		return nil, res.NotFound(fmt.Errorf("course not found"))
	}
	return course, nil
}

// managedCourse loads a course the caller may author
func (d *Deps) managedCourse(ctx context.Context, idCourse primitive.ObjectID, claims *Claims) (*models.Course, *res.ErrorRes) {
	course, errRes := d.findCourse(ctx, idCourse)
	if errRes != nil {
		return nil, errRes
	}
	if !ownsCourse(course, claims) {
		return nil, res.Forbidden(fmt.Errorf("only the course instructor can do this"))
	}
	return course, nil
}

func (d *Deps) findUser(ctx context.Context, idUser primitive.ObjectID) (*models.User, *res.ErrorRes) {
	user, err := d.Users.FindByID(ctx, idUser)
	if err != nil {
		return nil, d.unavailable(err)
	}
	if user == nil {
		return nil, res.NotFound(fmt.Errorf("user not found"))
	}
	return user, nil
}

func courseCacheKey(idCourse primitive.ObjectID) string {
	return fmt.Sprintf("course:%s", idCourse.Hex())
}

// invalidateCourse drops the cached public detail of a course
func (d *Deps) invalidateCourse(ctx context.Context, idCourse primitive.ObjectID) {
	if err := d.Cache.Delete(ctx, courseCacheKey(idCourse)); err != nil {
		d.Logger.Warn("cache invalidation failed")
	}
}

// visibleLessons lists the published lessons of a course that sit in a
// published chapter, the same set the public course detail shows
func (d *Deps) visibleLessons(ctx context.Context, idCourse primitive.ObjectID) ([]models.Lesson, error) {
	chapters, err := d.Chapters.FindByCourse(ctx, idCourse, true)
	if err != nil {
		return nil, err
	}
	lessons, err := d.Lessons.FindByCourse(ctx, idCourse, true)
	if err != nil {
		return nil, err
	}
	published := make(map[primitive.ObjectID]bool, len(chapters))
	for _, chapter := range chapters {
		published[chapter.ID] = true
	}
	visible := make([]models.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if published[lesson.Chapter] {
			visible = append(visible, lesson)
		}
	}
	return visible, nil
}

// lessonVisible is true for a published lesson whose chapter is published
func (d *Deps) lessonVisible(ctx context.Context, lesson *models.Lesson) (bool, error) {
	if !lesson.IsPublished {
		return false, nil
	}
	chapter, err := d.Chapters.FindByID(ctx, lesson.Chapter)
	if err != nil {
		return false, err
	}
	return chapter != nil && chapter.IsPublished, nil
}
