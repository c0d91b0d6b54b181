package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewService struct {
	*Deps
}

func (r *ReviewService) GetReviews(ctx context.Context, idCourse string, page, limit int) (*ReviewsPage, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	if _, errRes := r.findCourse(ctx, idObjCourse); errRes != nil {
		return nil, errRes
	}
	skip, lim := forms.Normalize(page, limit)
	reviews, total, err := r.Reviews.FindByCourse(ctx, idObjCourse, skip, lim)
	if err != nil {
		return nil, r.unavailable(err)
	}
	if reviews == nil {
		reviews = []models.ReviewWLookup{}
	}
	return &ReviewsPage{
		Reviews: reviews,
		Page:    newPage(total, skip, lim),
	}, nil
}

func (r *ReviewService) CreateReview(
	ctx context.Context,
	idCourse string,
	review *forms.ReviewForm,
	claims *Claims,
) (*models.Review, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, errRes
	}
	course, errRes := r.findCourse(ctx, idObjCourse)
	if errRes != nil {
		return nil, errRes
	}
	if course.Instructor == idUser {
		return nil, res.Forbidden(fmt.Errorf("you cannot review your own course"))
	}
	enrollment, err := r.Enrollments.FindByUserAndCourse(ctx, idUser, idObjCourse)
	if err != nil {
		return nil, r.unavailable(err)
	}
	if enrollment == nil || enrollment.Status == models.ENROLLMENT_DROPPED {
		return nil, res.Forbidden(fmt.Errorf("enroll in the course to review it"))
	}
	exists, err := r.Reviews.FindByUserAndCourse(ctx, idUser, idObjCourse)
	if err != nil {
		return nil, r.unavailable(err)
	}
	if exists != nil {
		return nil, res.BadRequest(fmt.Errorf("you already reviewed this course"))
	}

	now := nowFunc()
	newReview := &models.Review{
		User:      idUser,
		Course:    idObjCourse,
		Rating:    review.Rating,
		Comment:   strings.TrimSpace(review.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := r.Reviews.Insert(ctx, newReview)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, res.BadRequest(fmt.Errorf("you already reviewed this course"))
		}
		return nil, r.unavailable(err)
	}
	newReview.ID = id
	if errRes := r.refreshRating(ctx, idObjCourse); errRes != nil {
		return nil, errRes
	}
	return newReview, nil
}

func (r *ReviewService) findReview(ctx context.Context, idReview string) (*models.Review, *res.ErrorRes) {
	idObjReview, errRes := parseID(idReview, "review")
	if errRes != nil {
		return nil, errRes
	}
	review, err := r.Reviews.FindByID(ctx, idObjReview)
	if err != nil {
		return nil, r.unavailable(err)
	}
	if review == nil {
		return nil, res.NotFound(fmt.Errorf("review not found"))
	}
	return review, nil
}

func (r *ReviewService) UpdateReview(
	ctx context.Context,
	idReview string,
	update *forms.ReviewForm,
	claims *Claims,
) (*models.Review, *res.ErrorRes) {
	review, errRes := r.findReview(ctx, idReview)
	if errRes != nil {
		return nil, errRes
	}
	if claims == nil || review.User.Hex() != claims.ID {
		return nil, res.Forbidden(fmt.Errorf("only the author can edit the review"))
	}
	review.Rating = update.Rating
	review.Comment = strings.TrimSpace(update.Comment)
	review.UpdatedAt = nowFunc()
	if err := r.Reviews.Save(ctx, review); err != nil {
		return nil, r.unavailable(err)
	}
	if errRes := r.refreshRating(ctx, review.Course); errRes != nil {
		return nil, errRes
	}
	return review, nil
}

func (r *ReviewService) DeleteReview(ctx context.Context, idReview string, claims *Claims) *res.ErrorRes {
	review, errRes := r.findReview(ctx, idReview)
	if errRes != nil {
		return errRes
	}
	if !isAdmin(claims) && (claims == nil || review.User.Hex() != claims.ID) {
		return res.Forbidden(fmt.Errorf("only the author can delete the review"))
	}
	if err := r.Reviews.Delete(ctx, review.ID); err != nil {
		return r.unavailable(err)
	}
	return r.refreshRating(ctx, review.Course)
}

// refreshRating recomputes the course rating from every review
func (r *ReviewService) refreshRating(ctx context.Context, idCourse primitive.ObjectID) *res.ErrorRes {
	stats, err := r.Reviews.Stats(ctx, []primitive.ObjectID{idCourse})
	if err != nil {
		return r.unavailable(err)
	}
	stats.Average = RoundRating(stats.Average)
	if err := r.Courses.SetRating(ctx, idCourse, stats); err != nil {
		return r.unavailable(err)
	}
	r.invalidateCourse(ctx, idCourse)
	return nil
}

// RoundRating rounds to one decimal
func RoundRating(average float64) float64 {
	return math.Round(average*10) / 10
}
