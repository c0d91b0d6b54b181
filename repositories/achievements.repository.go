package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AchievementRepository struct {
	model *models.AchievementModel
}

func (a *AchievementRepository) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "awarded_at", Value: -1}})
	cursor, err := a.model.GetAll(ctx, bson.D{{Key: "user", Value: user}}, opts)
	return decodeAll[models.Achievement](ctx, cursor, err)
}

// Insert fails with a duplicate key error when the user already has the code
func (a *AchievementRepository) Insert(ctx context.Context, achievement *models.Achievement) (primitive.ObjectID, error) {
	id, err := insert(ctx, a.model, achievement)
	if err != nil {
		return id, err
	}
	achievement.ID = id
	return id, nil
}

func NewAchievementRepository(conn *db.MongoConnection) *AchievementRepository {
	return &AchievementRepository{
		model: models.NewAchievementModel(conn),
	}
}
