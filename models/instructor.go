package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const INSTRUCTORS_COLLECTION = "instructors"

type Instructor struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User       primitive.ObjectID `json:"user" bson:"user"`
	Headline   string             `json:"headline" bson:"headline" example:"Backend engineer"`
	Bio        string             `json:"bio" bson:"bio"`
	Expertise  []string           `json:"expertise" bson:"expertise"`
	Website    string             `json:"website,omitempty" bson:"website,omitempty"`
	Social     map[string]string  `json:"social,omitempty" bson:"social,omitempty"`
	IsVerified bool               `json:"is_verified" bson:"is_verified"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

type InstructorWLookup struct {
	Instructor `bson:",inline"`
	Profile    *SimpleUser `json:"profile,omitempty" bson:"profile,omitempty"`
}

type InstructorModel struct {
	baseModel
}

func NewInstructorModel(conn *db.MongoConnection) *InstructorModel {
	return &InstructorModel{
		baseModel{
			CollectionName: INSTRUCTORS_COLLECTION,
			conn:           conn,
		},
	}
}

var instructorSchema = collectionSchema{
	Name: INSTRUCTORS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"headline",
			"created_at",
		},
		"properties": bson.M{
			"user": bson.M{"bsonType": "objectId"},
			"headline": bson.M{
				"bsonType":  "string",
				"maxLength": 120,
			},
			"bio": bson.M{
				"bsonType":  "string",
				"maxLength": 2000,
			},
			"expertise": bson.M{
				"bsonType": bson.A{"array"},
				"items":    bson.M{"bsonType": "string"},
			},
			"website":     bson.M{"bsonType": "string"},
			"is_verified": bson.M{"bsonType": "bool"},
			"created_at":  bson.M{"bsonType": "date"},
			"updated_at":  bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
}
