package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const USERS_COLLECTION = "users"

// Roles
const (
	STUDENT    = "student"
	INSTRUCTOR = "instructor"
	ADMIN      = "admin"
)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	Name      string             `json:"name" bson:"name" example:"Jane Doe"`
	Email     string             `json:"email" bson:"email" example:"jane@example.com"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role" example:"student" enums:"student,instructor,admin"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type SimpleUser struct {
	ID    string `json:"_id,omitempty" bson:"_id,omitempty" example:"63785424db1efbc237faecca"`
	Name  string `json:"name,omitempty" bson:"name" example:"Jane Doe" extensions:"x-omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty" example:"jane@example.com" extensions:"x-omitempty"`
}

func (user *User) Simple() SimpleUser {
	return SimpleUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	}
}

type UserModel struct {
	baseModel
}

func NewUserModel(conn *db.MongoConnection) *UserModel {
	return &UserModel{
		baseModel{
			CollectionName: USERS_COLLECTION,
			conn:           conn,
		},
	}
}

var userSchema = collectionSchema{
	Name: USERS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"email",
			"password",
			"role",
			"created_at",
		},
		"properties": bson.M{
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
			"email":    bson.M{"bsonType": "string"},
			"password": bson.M{"bsonType": "string"},
			"role": bson.M{
				"enum": bson.A{STUDENT, INSTRUCTOR, ADMIN},
			},
			"created_at": bson.M{"bsonType": "date"},
			"updated_at": bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
}
