package models

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseModel implements Collection for every document type.
type baseModel struct {
	CollectionName string
	conn           *db.MongoConnection
}

func (model *baseModel) Use() *mongo.Collection {
	return model.conn.GetCollection(model.CollectionName)
}

func (model *baseModel) GetByID(ctx context.Context, id primitive.ObjectID) *mongo.SingleResult {
	cursor := model.Use().FindOne(ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
	return cursor
}

func (model *baseModel) GetOne(ctx context.Context, filter bson.D) *mongo.SingleResult {
	cursor := model.Use().FindOne(ctx, filter)
	return cursor
}

func (model *baseModel) GetAll(
	ctx context.Context,
	filter bson.D,
	options *options.FindOptions,
) (*mongo.Cursor, error) {
	cursor, err := model.Use().Find(ctx, filter, options)
	return cursor, err
}

func (model *baseModel) Aggregate(ctx context.Context, pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := model.Use().Aggregate(ctx, pipeline)
	return cursor, err
}

func (model *baseModel) NewDocument(ctx context.Context, data interface{}) (*mongo.InsertOneResult, error) {
	result, err := model.Use().InsertOne(ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (model *baseModel) UpdateByID(
	ctx context.Context,
	id primitive.ObjectID,
	update bson.D,
) (*mongo.UpdateResult, error) {
	return model.Use().UpdateByID(ctx, id, update)
}

func (model *baseModel) ReplaceByID(
	ctx context.Context,
	id primitive.ObjectID,
	document interface{},
) (*mongo.UpdateResult, error) {
	return model.Use().ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, document)
}

func (model *baseModel) UpdateOne(
	ctx context.Context,
	filter bson.D,
	update bson.D,
) (*mongo.UpdateResult, error) {
	return model.Use().UpdateOne(ctx, filter, update)
}

func (model *baseModel) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return model.Use().DeleteOne(ctx, bson.D{
		{
			Key:   "_id",
			Value: id,
		},
	})
}

func (model *baseModel) DeleteMany(ctx context.Context, filter bson.D) (*mongo.DeleteResult, error) {
	return model.Use().DeleteMany(ctx, filter)
}

func (model *baseModel) Count(ctx context.Context, filter bson.D) (int64, error) {
	return model.Use().CountDocuments(ctx, filter)
}
