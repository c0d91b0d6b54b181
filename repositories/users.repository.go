package repositories

import (
	"context"

	"github.com/CPU-commits/Intranet_BLearning/db"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository struct {
	model *models.UserModel
}

func (u *UserRepository) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	id, err := insert(ctx, u.model, user)
	if err != nil {
		return id, err
	}
	user.ID = id
	return id, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findOne[models.User](u.model.GetByID(ctx, id))
}

func (u *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](u.model.GetOne(ctx, bson.D{{Key: "email", Value: email}}))
}

func (u *UserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	cursor, err := u.model.GetAll(ctx, bson.D{{
		Key:   "_id",
		Value: bson.M{"$in": ids},
	}}, nil)
	return decodeAll[models.User](ctx, cursor, err)
}

func (u *UserRepository) Save(ctx context.Context, user *models.User) error {
	_, err := u.model.ReplaceByID(ctx, user.ID, user)
	return err
}

func NewUserRepository(conn *db.MongoConnection) *UserRepository {
	return &UserRepository{
		model: models.NewUserModel(conn),
	}
}
