package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	model *models.ProgressModel
}

func (p *ProgressRepository) FindByUserAndLesson(ctx context.Context, user, lesson primitive.ObjectID) (*models.Progress, error) {
	return findOne[models.Progress](p.model.GetOne(ctx, bson.D{
		{Key: "user", Value: user},
		{Key: "lesson", Value: lesson},
	}))
}

func (p *ProgressRepository) FindByUser(ctx context.Context, user, course primitive.ObjectID) ([]models.Progress, error) {
	filter := bson.D{{Key: "user", Value: user}}
	if !course.IsZero() {
		filter = append(filter, bson.E{Key: "course", Value: course})
	}
	cursor, err := p.model.GetAll(ctx, filter, nil)
	return decodeAll[models.Progress](ctx, cursor, err)
}

func (p *ProgressRepository) FindByEnrollment(ctx context.Context, enrollment primitive.ObjectID) ([]models.Progress, error) {
	cursor, err := p.model.GetAll(ctx, bson.D{{Key: "enrollment", Value: enrollment}}, nil)
	return decodeAll[models.Progress](ctx, cursor, err)
}

func (p *ProgressRepository) FindCompleted(ctx context.Context, user primitive.ObjectID) ([]models.Progress, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	cursor, err := p.model.GetAll(ctx, bson.D{
		{Key: "user", Value: user},
		{Key: "completed", Value: true},
	}, opts)
	return decodeAll[models.Progress](ctx, cursor, err)
}

func (p *ProgressRepository) Insert(ctx context.Context, progress *models.Progress) (primitive.ObjectID, error) {
	id, err := insert(ctx, p.model, progress)
	if err != nil {
		return id, err
	}
	progress.ID = id
	return id, nil
}

func (p *ProgressRepository) Save(ctx context.Context, progress *models.Progress) error {
	_, err := p.model.ReplaceByID(ctx, progress.ID, progress)
	return err
}

func (p *ProgressRepository) DeleteByEnrollment(ctx context.Context, enrollment primitive.ObjectID) (int64, error) {
	return deleteMany(ctx, p.model, bson.D{{Key: "enrollment", Value: enrollment}})
}

func NewProgressRepository(conn *db.MongoConnection) *ProgressRepository {
	return &ProgressRepository{
		model: models.NewProgressModel(conn),
	}
}
