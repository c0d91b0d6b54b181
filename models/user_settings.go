package models

import (
	"time"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const USER_SETTINGS_COLLECTION = "usersettings"

// Themes
const (
	THEME_LIGHT  = "light"
	THEME_DARK   = "dark"
	THEME_SYSTEM = "system"
)

type UserSettings struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"637d5de216f58bc8ec7f7f51"`
	User               primitive.ObjectID `json:"user" bson:"user"`
	EmailNotifications bool               `json:"email_notifications" bson:"email_notifications"`
	PushNotifications  bool               `json:"push_notifications" bson:"push_notifications"`
	Language           string             `json:"language" bson:"language" example:"en"`
	Theme              string             `json:"theme" bson:"theme" example:"system" enums:"light,dark,system"`
	Timezone           string             `json:"timezone" bson:"timezone" example:"UTC"`
	DailyGoalMinutes   int                `json:"daily_goal_minutes" bson:"daily_goal_minutes" example:"30"`
	ProfilePublic      bool               `json:"profile_public" bson:"profile_public"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// DefaultUserSettings is inserted the first time a user reads its settings
func DefaultUserSettings(user primitive.ObjectID, now time.Time) *UserSettings {
	return &UserSettings{
		User:               user,
		EmailNotifications: true,
		PushNotifications:  false,
		Language:           "en",
		Theme:              THEME_SYSTEM,
		Timezone:           "UTC",
		DailyGoalMinutes:   30,
		ProfilePublic:      true,
		UpdatedAt:          now,
	}
}

type UserSettingsModel struct {
	baseModel
}

func NewUserSettingsModel(conn *db.MongoConnection) *UserSettingsModel {
	return &UserSettingsModel{
		baseModel{
			CollectionName: USER_SETTINGS_COLLECTION,
			conn:           conn,
		},
	}
}

var userSettingsSchema = collectionSchema{
	Name: USER_SETTINGS_COLLECTION,
	Schema: bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"language",
			"theme",
			"timezone",
		},
		"properties": bson.M{
			"user":                bson.M{"bsonType": "objectId"},
			"email_notifications": bson.M{"bsonType": "bool"},
			"push_notifications":  bson.M{"bsonType": "bool"},
			"language":            bson.M{"bsonType": "string"},
			"theme": bson.M{
				"enum": bson.A{THEME_LIGHT, THEME_DARK, THEME_SYSTEM},
			},
			"timezone": bson.M{"bsonType": "string"},
			"daily_goal_minutes": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  600,
			},
			"profile_public": bson.M{"bsonType": "bool"},
			"updated_at":     bson.M{"bsonType": "date"},
		},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
}
