package models

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionSchema struct {
	Name    string
	Schema  bson.M
	Indexes []mongo.IndexModel
}

var collectionSchemas = []collectionSchema{
	userSchema,
	courseSchema,
	chapterSchema,
	lessonSchema,
	enrollmentSchema,
	progressSchema,
	reviewSchema,
	instructorSchema,
	userProfileSchema,
	userSettingsSchema,
	feedbackSchema,
	achievementSchema,
}

// EnsureCollections creates the missing collections with their validators
// and makes sure every index exists.
func EnsureCollections(ctx context.Context, conn *db.MongoConnection) error {
	collections, err := conn.GetCollections(ctx)
	if err != nil {
		return err
	}
	existing := make(map[string]bool, len(collections))
	for _, collection := range collections {
		existing[collection] = true
	}

	for _, schema := range collectionSchemas {
		if !existing[schema.Name] {
			var validators = bson.M{
				"$jsonSchema": schema.Schema,
			}
			opts := &options.CreateCollectionOptions{
				Validator: validators,
			}
			if err := conn.CreateCollection(ctx, schema.Name, opts); err != nil {
				return err
			}
		}
		if len(schema.Indexes) == 0 {
			continue
		}
		_, err := conn.GetCollection(schema.Name).Indexes().CreateMany(ctx, schema.Indexes)
		if err != nil {
			return err
		}
	}
	return nil
}
