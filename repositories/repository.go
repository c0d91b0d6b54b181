package repositories

import (
	"context"
	"errors"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errNoInsertedID = errors.New("inserted document has no ObjectID")

// NewRepositories wires every Mongo repository over one connection
func NewRepositories(conn *db.MongoConnection) services.Repositories {
	return services.Repositories{
		Users:        NewUserRepository(conn),
		Courses:      NewCourseRepository(conn),
		Chapters:     NewChapterRepository(conn),
		Lessons:      NewLessonRepository(conn),
		Enrollments:  NewEnrollmentRepository(conn),
		Progress:     NewProgressRepository(conn),
		Reviews:      NewReviewRepository(conn),
		Instructors:  NewInstructorRepository(conn),
		Profiles:     NewProfileRepository(conn),
		Settings:     NewSettingsRepository(conn),
		Feedback:     NewFeedbackRepository(conn),
		Achievements: NewAchievementRepository(conn),
	}
}

// findOne decodes a single result, nil when there is no document
func findOne[T any](result *mongo.SingleResult) (*T, error) {
	var document T
	if err := result.Decode(&document); err != nil {
		if db.IsNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	documents := []T{}
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

func insert(ctx context.Context, model models.Collection, document interface{}) (primitive.ObjectID, error) {
	result, err := model.NewDocument(ctx, document)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errNoInsertedID
	}
	return id, nil
}

func deleteMany(ctx context.Context, model models.Collection, filter bson.D) (int64, error) {
	result, err := model.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// lookupUser joins a users document, keeping only the public fields
func lookupUser(localField, as string) bson.D {
	return bson.D{{
		Key: "$lookup",
		Value: bson.M{
			"from":         models.USERS_COLLECTION,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
			"pipeline": bson.A{bson.M{
				"$project": bson.M{
					"name": 1,
				},
			}},
		},
	}}
}

func setFirst(field string) bson.D {
	return bson.D{{
		Key: "$set",
		Value: bson.M{
			field: bson.M{
				"$first": "$" + field,
			},
		},
	}}
}

// page appends the skip and limit stages, a zero limit keeps every document
func page(pipeline mongo.Pipeline, skip, limit int64) mongo.Pipeline {
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	return pipeline
}
