package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const FEEDBACKS_COLLECTION = "feedbacks"

// Feedback types
const (
	FEEDBACK_BUG     = "bug"
	FEEDBACK_FEATURE = "feature"
	FEEDBACK_CONTENT = "content"
	FEEDBACK_OTHER   = "other"
)

// Feedback status
const (
	FEEDBACK_OPEN     = "open"
	FEEDBACK_REVIEWED = "reviewed"
	FEEDBACK_RESOLVED = "resolved"
)

type Feedback struct {
	ID        primitive.ObjectID  `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User      primitive.ObjectID  `json:"user" bson:"user"`
	Type      string              `json:"type" bson:"type" example:"bug" enums:"bug,feature,content,other"`
	Message   string              `json:"message" bson:"message"`
	Rating    int                 `json:"rating,omitempty" bson:"rating"`
	Course    *primitive.ObjectID `json:"course,omitempty" bson:"course,omitempty"`
	Status    string              `json:"status" bson:"status" example:"open" enums:"open,reviewed,resolved"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

type FeedbackQuery struct {
	User   primitive.ObjectID
	Status string
	Type   string
	Skip   int64
	Limit  int64
}

type FeedbackModel struct {
	baseModel
}

func NewFeedbackModel(conn *db.MongoConnection) *FeedbackModel {
	return &FeedbackModel{
		baseModel{
			CollectionName: FEEDBACKS_COLLECTION,
			conn:           conn,
		},
	}
}

var feedbackSchema = collectionSchema{
	Name: FEEDBACKS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"type",
			"message",
			"status",
			"created_at",
		},
		"properties": bson.M{
			"user": bson.M{"bsonType": "objectId"},
			"type": bson.M{
				"enum": bson.A{
					FEEDBACK_BUG,
					FEEDBACK_FEATURE,
					FEEDBACK_CONTENT,
					FEEDBACK_OTHER,
				},
			},
			"message": bson.M{
				"bsonType":  "string",
				"minLength": 5,
				"maxLength": 2000,
			},
			"rating": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  5,
			},
			"course": bson.M{"bsonType": "objectId"},
			"status": bson.M{
				"enum": bson.A{FEEDBACK_OPEN, FEEDBACK_REVIEWED, FEEDBACK_RESOLVED},
			},
			"created_at": bson.M{"bsonType": "date"},
			"updated_at": bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	},
}
