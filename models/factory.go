package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collection interface {
	Use() *mongo.Collection
	GetByID(ctx context.Context, id primitive.ObjectID) *mongo.SingleResult
	GetOne(ctx context.Context, filter bson.D) *mongo.SingleResult
	GetAll(ctx context.Context, filter bson.D, options *options.FindOptions) (*mongo.Cursor, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) (*mongo.Cursor, error)
	NewDocument(ctx context.Context, data interface{}) (*mongo.InsertOneResult, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.D) (*mongo.UpdateResult, error)
	ReplaceByID(ctx context.Context, id primitive.ObjectID, document interface{}) (*mongo.UpdateResult, error)
	UpdateOne(ctx context.Context, filter bson.D, update bson.D) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter bson.D) (*mongo.DeleteResult, error)
	Count(ctx context.Context, filter bson.D) (int64, error)
}
