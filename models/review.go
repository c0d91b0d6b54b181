package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const REVIEWS_COLLECTION = "reviews"

type Review struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Course    primitive.ObjectID `json:"course" bson:"course"`
	Rating    int                `json:"rating" bson:"rating" example:"5"`
	Comment   string             `json:"comment" bson:"comment" example:"Great course"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type ReviewWLookup struct {
	Review `bson:",inline"`
	Author *SimpleUser `json:"author,omitempty" bson:"author,omitempty"`
}

type RatingStats struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

type ReviewModel struct {
	baseModel
}

func NewReviewModel(conn *db.MongoConnection) *ReviewModel {
	return &ReviewModel{
		baseModel{
			CollectionName: REVIEWS_COLLECTION,
			conn:           conn,
		},
	}
}

var reviewSchema = collectionSchema{
	Name: REVIEWS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"course",
			"rating",
			"created_at",
		},
		"properties": bson.M{
			"user":   bson.M{"bsonType": "objectId"},
			"course": bson.M{"bsonType": "objectId"},
			"rating": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  5,
			},
			"comment": bson.M{
				"bsonType":  "string",
				"maxLength": 1000,
			},
			"created_at": bson.M{"bsonType": "date"},
			"updated_at": bson.M{"bsonType": "date"},
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
	},
}
