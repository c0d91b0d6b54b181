package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type InstructorRepository struct {
	model *models.InstructorModel
}

func (i *InstructorRepository) Insert(ctx context.Context, instructor *models.Instructor) (primitive.ObjectID, error) {
	id, err := insert(ctx, i.model, instructor)
	if err != nil {
		return id, err
	}
	instructor.ID = id
	return id, nil
}

func (i *InstructorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Instructor, error) {
	return findOne[models.Instructor](i.model.GetByID(ctx, id))
}

func (i *InstructorRepository) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Instructor, error) {
	return findOne[models.Instructor](i.model.GetOne(ctx, bson.D{{Key: "user", Value: user}}))
}

func (i *InstructorRepository) Find(ctx context.Context, skip, limit int64) ([]models.InstructorWLookup, int64, error) {
	total, err := i.model.Count(ctx, bson.D{})
	if err != nil {
		return nil, 0, err
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "is_verified", Value: -1},
			{Key: "created_at", Value: -1},
		}}},
	}
	pipeline = page(pipeline, skip, limit)
	pipeline = append(pipeline, lookupUser("user", "profile"), setFirst("profile"))

	cursor, err := i.model.Aggregate(ctx, pipeline)
	instructors, err := decodeAll[models.InstructorWLookup](ctx, cursor, err)
	if err != nil {
		return nil, 0, err
	}
	return instructors, total, nil
}

func (i *InstructorRepository) Save(ctx context.Context, instructor *models.Instructor) error {
	_, err := i.model.ReplaceByID(ctx, instructor.ID, instructor)
	return err
}

func NewInstructorRepository(conn *db.MongoConnection) *InstructorRepository {
	return &InstructorRepository{
		model: models.NewInstructorModel(conn),
	}
}
