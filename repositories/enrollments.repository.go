package repositories

import (
	"context"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EnrollmentRepository struct {
	model *models.EnrollmentModel
}

func (e *EnrollmentRepository) Insert(ctx context.Context, enrollment *models.Enrollment) (primitive.ObjectID, error) {
	id, err := insert(ctx, e.model, enrollment)
	if err != nil {
		return id, err
	}
	enrollment.ID = id
	return id, nil
}

func (e *EnrollmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error) {
	return findOne[models.Enrollment](e.model.GetByID(ctx, id))
}

func (e *EnrollmentRepository) FindByUserAndCourse(ctx context.Context, user, course primitive.ObjectID) (*models.Enrollment, error) {
	return findOne[models.Enrollment](e.model.GetOne(ctx, bson.D{
		{Key: "user", Value: user},
		{Key: "course", Value: course},
	}))
}

func (e *EnrollmentRepository) FindByUser(
	ctx context.Context,
	user primitive.ObjectID,
	status string,
	skip,
	limit int64,
) ([]models.Enrollment, int64, error) {
	filter := bson.D{{Key: "user", Value: user}}
	if status != "" {
		filter = append(filter, bson.E{Key: "status", Value: status})
	}
	total, err := e.model.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "last_accessed_at", Value: -1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := e.model.GetAll(ctx, filter, opts)
	enrollments, err := decodeAll[models.Enrollment](ctx, cursor, err)
	if err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}

func (e *EnrollmentRepository) FindByCourse(ctx context.Context, course primitive.ObjectID) ([]models.Enrollment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "enrolled_at", Value: 1}})
	cursor, err := e.model.GetAll(ctx, bson.D{{Key: "course", Value: course}}, opts)
	return decodeAll[models.Enrollment](ctx, cursor, err)
}

func (e *EnrollmentRepository) CountByCourses(ctx context.Context, courses []primitive.ObjectID) (int64, error) {
	if len(courses) == 0 {
		return 0, nil
	}
	return e.model.Count(ctx, bson.D{{
		Key:   "course",
		Value: bson.M{"$in": courses},
	}})
}

func (e *EnrollmentRepository) Save(ctx context.Context, enrollment *models.Enrollment) error {
	_, err := e.model.ReplaceByID(ctx, enrollment.ID, enrollment)
	return err
}

// Touch only sets last_accessed_at, the rest of the document may be newer
// than the caller's copy
func (e *EnrollmentRepository) Touch(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := e.model.UpdateByID(ctx, id, bson.D{{
		Key: "$set",
		Value: bson.M{
			"last_accessed_at": at,
		},
	}})
	return err
}

func (e *EnrollmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := e.model.DeleteByID(ctx, id)
	return err
}

func NewEnrollmentRepository(conn *db.MongoConnection) *EnrollmentRepository {
	return &EnrollmentRepository{
		model: models.NewEnrollmentModel(conn),
	}
}
