package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ACHIEVEMENTS_COLLECTION = "achievements"

type Achievement struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Code        string             `json:"code" bson:"code" example:"first_lesson"`
	Title       string             `json:"title" bson:"title" example:"First steps"`
	Description string             `json:"description" bson:"description"`
	AwardedAt   time.Time          `json:"awarded_at" bson:"awarded_at"`
}

type AchievementModel struct {
	baseModel
}

func NewAchievementModel(conn *db.MongoConnection) *AchievementModel {
	return &AchievementModel{
		baseModel{
			CollectionName: ACHIEVEMENTS_COLLECTION,
			conn:           conn,
		},
	}
}

var achievementSchema = collectionSchema{
	Name: ACHIEVEMENTS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"code",
			"title",
			"awarded_at",
		},
		"properties": bson.M{
			"user":        bson.M{"bsonType": "objectId"},
			"code":        bson.M{"bsonType": "string"},
			"title":       bson.M{"bsonType": "string"},
			"description": bson.M{"bsonType": "string"},
			"awarded_at":  bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user", Value: 1},
				{Key: "code", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	},
}
