package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const LESSONS_COLLECTION = "lessons"

type Attachment struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Filename string             `json:"filename" bson:"filename" example:"slides.pdf"`
	Key      string             `json:"key" bson:"key"`
	Location string             `json:"location" bson:"location"`
	Mimetype string             `json:"mimetype" bson:"mimetype" example:"application/pdf"`
	Size     int64              `json:"size" bson:"size"`
}

type Lesson struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Course        primitive.ObjectID `json:"course" bson:"course"`
	Chapter       primitive.ObjectID `json:"chapter" bson:"chapter"`
	Title         string             `json:"title" bson:"title" example:"Variables"`
	Content       string             `json:"content,omitempty" bson:"content"`
	VideoURL      string             `json:"video_url,omitempty" bson:"video_url,omitempty"`
	Duration      int                `json:"duration" bson:"duration" example:"12"` // Minutes
	Position      int                `json:"position" bson:"position"`
	IsPublished   bool               `json:"is_published" bson:"is_published"`
	IsFreePreview bool               `json:"is_free_preview" bson:"is_free_preview"`
	Attachments   []Attachment       `json:"attachments" bson:"attachments"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// Outline drops the lesson body for catalog views
func (lesson Lesson) Outline() Lesson {
	lesson.Content = ""
	lesson.VideoURL = ""
	lesson.Attachments = nil
	return lesson
}

type LessonModel struct {
	baseModel
}

func NewLessonModel(conn *db.MongoConnection) *LessonModel {
	return &LessonModel{
		baseModel{
			CollectionName: LESSONS_COLLECTION,
			conn:           conn,
		},
	}
}

var lessonSchema = collectionSchema{
	Name: LESSONS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"course",
			"chapter",
			"title",
			"position",
			"created_at",
		},
		"properties": bson.M{
			"course":  bson.M{"bsonType": "objectId"},
			"chapter": bson.M{"bsonType": "objectId"},
			"title": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 120,
			},
			"content":         bson.M{"bsonType": "string"},
			"video_url":       bson.M{"bsonType": "string"},
			"duration":        bson.M{"bsonType": "int", "minimum": 0},
			"position":        bson.M{"bsonType": "int", "minimum": 0},
			"is_published":    bson.M{"bsonType": "bool"},
			"is_free_preview": bson.M{"bsonType": "bool"},
			"attachments": bson.M{
				"bsonType": bson.A{"array"},
				"items": bson.M{
					"bsonType": "object",
					"required": bson.A{"filename", "key"},
					"properties": bson.M{
						"filename": bson.M{"bsonType": "string"},
						"key":      bson.M{"bsonType": "string"},
						"mimetype": bson.M{"bsonType": "string"},
					},
				},
			},
			"created_at": bson.M{"bsonType": "date"},
			"updated_at": bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "chapter", Value: 1},
				{Key: "position", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "course", Value: 1}},
		},
	},
}
