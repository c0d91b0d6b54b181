package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CHAPTERS_COLLECTION = "chapters"

type Chapter struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Course      primitive.ObjectID `json:"course" bson:"course" example:"637d5de216f58bc8ec7f7f51"`
	Title       string             `json:"title" bson:"title" example:"Getting started"`
	Description string             `json:"description" bson:"description"`
	Position    int                `json:"position" bson:"position" example:"0"`
	IsPublished bool               `json:"is_published" bson:"is_published"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type ChapterWLookup struct {
	Chapter `bson:",inline"`
	Lessons []Lesson `json:"lessons" bson:"lessons"`
}

type ChapterModel struct {
	baseModel
}

func NewChapterModel(conn *db.MongoConnection) *ChapterModel {
	return &ChapterModel{
		baseModel{
			CollectionName: CHAPTERS_COLLECTION,
			conn:           conn,
		},
	}
}

var chapterSchema = collectionSchema{
	Name: CHAPTERS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"course",
			"title",
			"position",
			"created_at",
		},
		"properties": bson.M{
			"course": bson.M{"bsonType": "objectId"},
			"title": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 120,
			},
			"description":  bson.M{"bsonType": "string"},
			"position":     bson.M{"bsonType": "int", "minimum": 0},
			"is_published": bson.M{"bsonType": "bool"},
			"created_at":   bson.M{"bsonType": "date"},
			"updated_at":   bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "course", Value: 1},
				{Key: "position", Value: 1},
			},
		},
	},
}
