package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackRepository struct {
	model *models.FeedbackModel
}

func (f *FeedbackRepository) Insert(ctx context.Context, feedback *models.Feedback) (primitive.ObjectID, error) {
	id, err := insert(ctx, f.model, feedback)
	if err != nil {
		return id, err
	}
	feedback.ID = id
	return id, nil
}

func (f *FeedbackRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	return findOne[models.Feedback](f.model.GetByID(ctx, id))
}

func (f *FeedbackRepository) Find(ctx context.Context, query models.FeedbackQuery) ([]models.Feedback, int64, error) {
	filter := bson.D{}
	if !query.User.IsZero() {
		filter = append(filter, bson.E{Key: "user", Value: query.User})
	}
	if query.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: query.Status})
	}
	if query.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: query.Type})
	}
	total, err := f.model.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(query.Skip)
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}
	cursor, err := f.model.GetAll(ctx, filter, opts)
	feedback, err := decodeAll[models.Feedback](ctx, cursor, err)
	if err != nil {
		return nil, 0, err
	}
	return feedback, total, nil
}

func (f *FeedbackRepository) Save(ctx context.Context, feedback *models.Feedback) error {
	_, err := f.model.ReplaceByID(ctx, feedback.ID, feedback)
	return err
}

func NewFeedbackRepository(conn *db.MongoConnection) *FeedbackRepository {
	return &FeedbackRepository{
		model: models.NewFeedbackModel(conn),
	}
}
