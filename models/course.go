package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const COURSES_COLLECTION = "courses"
const COURSES_INDEX = "courses"

// Levels
const (
	BEGINNER     = "beginner"
	INTERMEDIATE = "intermediate"
	ADVANCED     = "advanced"
)

// Catalog sort
const (
	SORT_NEWEST     = "newest"
	SORT_POPULAR    = "popular"
	SORT_RATING     = "rating"
	SORT_PRICE_ASC  = "price_asc"
	SORT_PRICE_DESC = "price_desc"
)

type Course struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Title           string             `json:"title" bson:"title" example:"Intro to Go"`
	Description     string             `json:"description" bson:"description"`
	Instructor      primitive.ObjectID `json:"instructor" bson:"instructor" example:"637d5de216f58bc8ec7f7f51"`
	Category        string             `json:"category" bson:"category" example:"programming"`
	Level           string             `json:"level" bson:"level" example:"beginner" enums:"beginner,intermediate,advanced"`
	Price           float64            `json:"price" bson:"price" example:"0"`
	Thumbnail       string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Tags            []string           `json:"tags" bson:"tags"`
	Language        string             `json:"language" bson:"language" example:"en"`
	IsPublished     bool               `json:"is_published" bson:"is_published"`
	RatingAverage   float64            `json:"rating_average" bson:"rating_average"`
	RatingCount     int                `json:"rating_count" bson:"rating_count"`
	EnrollmentCount int                `json:"enrollment_count" bson:"enrollment_count"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

type CourseWLookup struct {
	Course         `bson:",inline"`
	InstructorUser *SimpleUser `json:"instructor_user,omitempty" bson:"instructor_user,omitempty"`
}

// CourseQuery holds the catalog filters
type CourseQuery struct {
	Category      string
	Level         string
	Instructor    primitive.ObjectID
	Search        string
	MinRating     float64
	Sort          string
	IDs           []primitive.ObjectID
	OnlyPublished bool
	Skip          int64
	Limit         int64
}

type CourseModel struct {
	baseModel
}

func NewCourseModel(conn *db.MongoConnection) *CourseModel {
	return &CourseModel{
		baseModel{
			CollectionName: COURSES_COLLECTION,
			conn:           conn,
		},
	}
}

var courseSchema = collectionSchema{
	Name: COURSES_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"instructor",
			"level",
			"price",
			"is_published",
			"created_at",
		},
		"properties": bson.M{
			"title": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 120,
			},
			"description": bson.M{"bsonType": "string"},
			"instructor":  bson.M{"bsonType": "objectId"},
			"category":    bson.M{"bsonType": "string"},
			"level": bson.M{
				"enum": bson.A{BEGINNER, INTERMEDIATE, ADVANCED},
			},
			"price": bson.M{
				"bsonType": bson.A{"double", "int", "long"},
				"minimum":  0,
			},
			"tags": bson.M{
				"bsonType": bson.A{"array"},
				"items":    bson.M{"bsonType": "string"},
			},
			"is_published": bson.M{"bsonType": "bool"},
			"rating_average": bson.M{
				"bsonType": bson.A{"double", "int"},
				"minimum":  0,
				"maximum":  5,
			},
			"rating_count":     bson.M{"bsonType": "int", "minimum": 0},
			"enrollment_count": bson.M{"bsonType": "int", "minimum": 0},
			"created_at":       bson.M{"bsonType": "date"},
			"updated_at":       bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "instructor", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "is_published", Value: 1},
				{Key: "category", Value: 1},
			},
		},
	},
}
