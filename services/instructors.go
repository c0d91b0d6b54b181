package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/funct"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type InstructorService struct {
	*Deps
}

func (i *InstructorService) GetInstructors(ctx context.Context, page, limit int) (*InstructorsPage, *res.ErrorRes) {
	skip, lim := forms.Normalize(page, limit)
	instructors, total, err := i.Instructors.Find(ctx, skip, lim)
	if err != nil {
		return nil, i.unavailable(err)
	}
	if instructors == nil {
		instructors = []models.InstructorWLookup{}
	}
	return &InstructorsPage{
		Instructors: instructors,
		Page:        newPage(total, skip, lim),
	}, nil
}

func (i *InstructorService) GetInstructor(ctx context.Context, idInstructor string) (*InstructorDetail, *res.ErrorRes) {
	idObjInstructor, errRes := parseID(idInstructor, "instructor")
	if errRes != nil {
		return nil, errRes
	}
	instructor, err := i.Instructors.FindByID(ctx, idObjInstructor)
	if err != nil {
		return nil, i.unavailable(err)
	}
	if instructor == nil {
		return nil, res.NotFound(fmt.Errorf("instructor not found"))
	}
	return i.detail(ctx, instructor, true)
}

func (i *InstructorService) detail(ctx context.Context, instructor *models.Instructor, onlyPublished bool) (*InstructorDetail, *res.ErrorRes) {
	courses, err := i.Courses.FindByInstructor(ctx, instructor.User, onlyPublished)
	if err != nil {
		return nil, i.unavailable(err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	detail := &InstructorDetail{
		Instructor: *instructor,
		Courses:    courses,
	}
	user, err := i.Users.FindByID(ctx, instructor.User)
	if err != nil {
		return nil, i.unavailable(err)
	}
	if user != nil {
		simple := user.Simple()
		simple.Email = ""
		detail.Profile = &simple
	}
	return detail, nil
}

// BecomeInstructor creates the instructor profile and promotes the user.
// The returned token carries the new role.
func (i *InstructorService) BecomeInstructor(
	ctx context.Context,
	instructor *forms.InstructorForm,
	claims *Claims,
) (*models.Instructor, string, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, "", errRes
	}
	user, errRes := i.findUser(ctx, idUser)
	if errRes != nil {
		return nil, "", errRes
	}
	exists, err := i.Instructors.FindByUser(ctx, idUser)
	if err != nil {
		return nil, "", i.unavailable(err)
	}
	if exists != nil {
		return nil, "", res.BadRequest(fmt.Errorf("instructor profile already exists"))
	}

	now := nowFunc()
	expertise := instructor.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	newInstructor := &models.Instructor{
		User:      idUser,
		Headline:  strings.TrimSpace(instructor.Headline),
		Bio:       instructor.Bio,
		Expertise: expertise,
		Website:   instructor.Website,
		Social:    instructor.Social,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := i.Instructors.Insert(ctx, newInstructor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", res.BadRequest(fmt.Errorf("instructor profile already exists"))
		}
		return nil, "", i.unavailable(err)
	}
	newInstructor.ID = id

	if user.Role != models.ADMIN {
		user.Role = models.INSTRUCTOR
		user.UpdatedAt = now
		if err := i.Users.Save(ctx, user); err != nil {
			return nil, "", i.unavailable(err)
		}
	}
	token, err := i.Tokens.Generate(user)
	if err != nil {
		return nil, "", i.internal(err)
	}
	i.Logger.Info("instructor created", zap.String("user", idUser.Hex()))
	return newInstructor, token, nil
}

func (i *InstructorService) myInstructor(ctx context.Context, claims *Claims) (*models.Instructor, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	instructor, err := i.Instructors.FindByUser(ctx, idUser)
	if err != nil {
		return nil, i.unavailable(err)
	}
	if instructor == nil {
		return nil, res.NotFound(fmt.Errorf("instructor profile not found"))
	}
	return instructor, nil
}

func (i *InstructorService) GetMe(ctx context.Context, claims *Claims) (*InstructorDetail, *res.ErrorRes) {
	instructor, errRes := i.myInstructor(ctx, claims)
	if errRes != nil {
		return nil, errRes
	}
	return i.detail(ctx, instructor, false)
}

func (i *InstructorService) UpdateMe(
	ctx context.Context,
	update *forms.UpdateInstructorForm,
	claims *Claims,
) (*models.Instructor, *res.ErrorRes) {
	instructor, errRes := i.myInstructor(ctx, claims)
	if errRes != nil {
		return nil, errRes
	}
	if update.Headline != nil {
		instructor.Headline = strings.TrimSpace(*update.Headline)
	}
	if update.Bio != nil {
		instructor.Bio = *update.Bio
	}
	if update.Expertise != nil {
		instructor.Expertise = update.Expertise
	}
	if update.Website != nil {
		instructor.Website = *update.Website
	}
	if update.Social != nil {
		instructor.Social = update.Social
	}
	instructor.UpdatedAt = nowFunc()
	if err := i.Instructors.Save(ctx, instructor); err != nil {
		return nil, i.unavailable(err)
	}
	return instructor, nil
}

func (i *InstructorService) GetStats(ctx context.Context, claims *Claims) (*InstructorStats, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	courses, err := i.Courses.FindByInstructor(ctx, idUser, false)
	if err != nil {
		return nil, i.unavailable(err)
	}
	stats := &InstructorStats{Courses: len(courses)}
	if len(courses) == 0 {
		return stats, nil
	}
	ids := make([]primitive.ObjectID, 0, len(courses))
	for _, course := range courses {
		ids = append(ids, course.ID)
	}
	stats.PublishedCourses = len(funct.Filter(courses, func(course models.Course) bool {
		return course.IsPublished
	}))
	if stats.Students, err = i.Enrollments.CountByCourses(ctx, ids); err != nil {
		return nil, i.unavailable(err)
	}
	rating, err := i.Reviews.Stats(ctx, ids)
	if err != nil {
		return nil, i.unavailable(err)
	}
	stats.AverageRating = RoundRating(rating.Average)
	stats.Reviews = rating.Count
	return stats, nil
}
