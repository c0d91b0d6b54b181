package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProfileRepository struct {
	model *models.UserProfileModel
}

func (p *ProfileRepository) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.UserProfile, error) {
	return findOne[models.UserProfile](p.model.GetOne(ctx, bson.D{{Key: "user", Value: user}}))
}

func (p *ProfileRepository) Insert(ctx context.Context, profile *models.UserProfile) (primitive.ObjectID, error) {
	id, err := insert(ctx, p.model, profile)
	if err != nil {
		return id, err
	}
	profile.ID = id
	return id, nil
}

func (p *ProfileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	_, err := p.model.ReplaceByID(ctx, profile.ID, profile)
	return err
}

func NewProfileRepository(conn *db.MongoConnection) *ProfileRepository {
	return &ProfileRepository{
		model: models.NewUserProfileModel(conn),
	}
}

type SettingsRepository struct {
	model *models.UserSettingsModel
}

func (s *SettingsRepository) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.UserSettings, error) {
	return findOne[models.UserSettings](s.model.GetOne(ctx, bson.D{{Key: "user", Value: user}}))
}

func (s *SettingsRepository) Insert(ctx context.Context, settings *models.UserSettings) (primitive.ObjectID, error) {
	id, err := insert(ctx, s.model, settings)
	if err != nil {
		return id, err
	}
	settings.ID = id
	return id, nil
}

func (s *SettingsRepository) Save(ctx context.Context, settings *models.UserSettings) error {
	_, err := s.model.ReplaceByID(ctx, settings.ID, settings)
	return err
}

func NewSettingsRepository(conn *db.MongoConnection) *SettingsRepository {
	return &SettingsRepository{
		model: models.NewUserSettingsModel(conn),
	}
}
