package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const USER_PROFILES_COLLECTION = "userprofiles"

type UserProfile struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	DisplayName string             `json:"display_name" bson:"display_name" example:"Jane"`
	Bio         string             `json:"bio" bson:"bio"`
	Avatar      string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Website     string             `json:"website,omitempty" bson:"website,omitempty"`
	Interests   []string           `json:"interests" bson:"interests"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type UserProfileModel struct {
	baseModel
}

func NewUserProfileModel(conn *db.MongoConnection) *UserProfileModel {
	return &UserProfileModel{
		baseModel{
			CollectionName: USER_PROFILES_COLLECTION,
			conn:           conn,
		},
	}
}

var userProfileSchema = collectionSchema{
	Name: USER_PROFILES_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"display_name",
			"created_at",
		},
		"properties": bson.M{
			"user": bson.M{"bsonType": "objectId"},
			"display_name": bson.M{
				"bsonType":  "string",
				"maxLength": 60,
			},
			"bio": bson.M{
				"bsonType":  "string",
				"maxLength": 500,
			},
			"avatar":   bson.M{"bsonType": "string"},
			"location": bson.M{"bsonType": "string"},
			"website":  bson.M{"bsonType": "string"},
			"interests": bson.M{
				"bsonType": bson.A{"array"},
				"items":    bson.M{"bsonType": "string"},
			},
			"created_at": bson.M{"bsonType": "date"},
			"updated_at": bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
}
