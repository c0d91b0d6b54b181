package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	model *models.ReviewModel
}

func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	id, err := insert(ctx, r.model, review)
	if err != nil {
		return id, err
	}
	review.ID = id
	return id, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	return findOne[models.Review](r.model.GetByID(ctx, id))
}

func (r *ReviewRepository) FindByUserAndCourse(ctx context.Context, user, course primitive.ObjectID) (*models.Review, error) {
	return findOne[models.Review](r.model.GetOne(ctx, bson.D{
		{Key: "user", Value: user},
		{Key: "course", Value: course},
	}))
}

// FindByCourse pages the reviews newest first with the author name
func (r *ReviewRepository) FindByCourse(
	ctx context.Context,
	course primitive.ObjectID,
	skip,
	limit int64,
) ([]models.ReviewWLookup, int64, error) {
	filter := bson.D{{Key: "course", Value: course}}
	total, err := r.model.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	pipeline = page(pipeline, skip, limit)
	pipeline = append(pipeline, lookupUser("user", "author"), setFirst("author"))

	cursor, err := r.model.Aggregate(ctx, pipeline)
	reviews, err := decodeAll[models.ReviewWLookup](ctx, cursor, err)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewRepository) Save(ctx context.Context, review *models.Review) error {
	_, err := r.model.ReplaceByID(ctx, review.ID, review)
	return err
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.model.DeleteByID(ctx, id)
	return err
}

// Stats averages the ratings of the given courses, zero when there is none
func (r *ReviewRepository) Stats(ctx context.Context, courses []primitive.ObjectID) (models.RatingStats, error) {
	var stats models.RatingStats
	if len(courses) == 0 {
		return stats, nil
	}
	match := bson.D{{
		Key: "$match",
		Value: bson.M{
			"course": bson.M{"$in": courses},
		},
	}}
	group := bson.D{{
		Key: "$group",
		Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		},
	}}
	cursor, err := r.model.Aggregate(ctx, mongo.Pipeline{match, group})
	results, err := decodeAll[models.RatingStats](ctx, cursor, err)
	if err != nil {
		return stats, err
	}
	if len(results) > 0 {
		stats = results[0]
	}
	return stats, nil
}

func NewReviewRepository(conn *db.MongoConnection) *ReviewRepository {
	return &ReviewRepository{
		model: models.NewReviewModel(conn),
	}
}
