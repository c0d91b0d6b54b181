package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const PROGRESSES_COLLECTION = "progresses"

type Progress struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Course      primitive.ObjectID `json:"course" bson:"course"`
	Lesson      primitive.ObjectID `json:"lesson" bson:"lesson"`
	Enrollment  primitive.ObjectID `json:"enrollment" bson:"enrollment"`
	Completed   bool               `json:"completed" bson:"completed"`
	CompletedAt *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	Score       int                `json:"score" bson:"score" example:"90"`
	TimeSpent   int                `json:"time_spent" bson:"time_spent" example:"300"` // Seconds
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type ProgressModel struct {
	baseModel
}

func NewProgressModel(conn *db.MongoConnection) *ProgressModel {
	return &ProgressModel{
		baseModel{
			CollectionName: PROGRESSES_COLLECTION,
			conn:           conn,
		},
	}
}

var progressSchema = collectionSchema{
	Name: PROGRESSES_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"course",
			"lesson",
			"enrollment",
			"completed",
			"updated_at",
		},
		"properties": bson.M{
			"user":         bson.M{"bsonType": "objectId"},
			"course":       bson.M{"bsonType": "objectId"},
			"lesson":       bson.M{"bsonType": "objectId"},
			"enrollment":   bson.M{"bsonType": "objectId"},
			"completed":    bson.M{"bsonType": "bool"},
			"completed_at": bson.M{"bsonType": "date"},
			"score": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  100,
			},
			"time_spent": bson.M{"bsonType": "int", "minimum": 0},
			"updated_at": bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user", Value: 1},
				{Key: "lesson", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "enrollment", Value: 1}},
		},
	},
}
