package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ENROLLMENTS_COLLECTION = "enrollments"

// Enrollment status
const (
	ENROLLMENT_ACTIVE    = "active"
	ENROLLMENT_COMPLETED = "completed"
	ENROLLMENT_PAUSED    = "paused"
	ENROLLMENT_DROPPED   = "dropped"
)

type Enrollment struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	Course         primitive.ObjectID `json:"course" bson:"course"`
	Status         string             `json:"status" bson:"status" example:"active" enums:"active,completed,paused,dropped"`
	Progress       int                `json:"progress" bson:"progress" example:"40"`
	EnrolledAt     time.Time          `json:"enrolled_at" bson:"enrolled_at"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	LastAccessedAt time.Time          `json:"last_accessed_at" bson:"last_accessed_at"`
}

type EnrollmentModel struct {
	baseModel
}

func NewEnrollmentModel(conn *db.MongoConnection) *EnrollmentModel {
	return &EnrollmentModel{
		baseModel{
			CollectionName: ENROLLMENTS_COLLECTION,
			conn:           conn,
		},
	}
}

var enrollmentSchema = collectionSchema{
	Name: ENROLLMENTS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"course",
			"status",
			"progress",
			"enrolled_at",
		},
		"properties": bson.M{
			"user":   bson.M{"bsonType": "objectId"},
			"course": bson.M{"bsonType": "objectId"},
			"status": bson.M{
				"enum": bson.A{
					ENROLLMENT_ACTIVE,
					ENROLLMENT_COMPLETED,
					ENROLLMENT_PAUSED,
					ENROLLMENT_DROPPED,
				},
			},
			"progress": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  100,
			},
			"enrolled_at":      bson.M{"bsonType": "date"},
			"completed_at":     bson.M{"bsonType": "date"},
			"last_accessed_at": bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user", Value: 1},
				{Key: "course", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "course", Value: 1}},
		},
	},
}
