package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CPU-commits/Intranet_BLearning/forms"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = fmt.Errorf("invalid email or password")

type AuthService struct {
	*Deps
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (a *AuthService) Register(ctx context.Context, register *forms.RegisterForm) (*models.User, string, *res.ErrorRes) {
	email := strings.ToLower(strings.TrimSpace(register.Email))
	exists, err := a.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", a.unavailable(err)
	}
	if exists != nil {
		return nil, "", res.BadRequest(fmt.Errorf("email already registered"))
	}
	hash, err := HashPassword(register.Password)
	if err != nil {
		return nil, "", a.internal(err)
	}

	now := nowFunc()
	user := &models.User{
		Name:      strings.TrimSpace(register.Name),
		Email:     email,
		Password:  hash,
		Role:      models.STUDENT,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := a.Users.Insert(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", res.BadRequest(fmt.Errorf("email already registered"))
		}
		return nil, "", a.unavailable(err)
	}
	user.ID = id

	token, err := a.Tokens.Generate(user)
	if err != nil {
		return nil, "", a.internal(err)
	}
	a.Logger.Info("user registered", zap.String("user", id.Hex()))
	return user, token, nil
}

func (a *AuthService) Login(ctx context.Context, login *forms.LoginForm) (*models.User, string, *res.ErrorRes) {
	user, err := a.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(login.Email)))
	if err != nil {
		return nil, "", a.unavailable(err)
	}
	if user == nil || !ComparePassword(user.Password, login.Password) {
		return nil, "", res.Unauthorized(errInvalidCredentials)
	}
	token, err := a.Tokens.Generate(user)
	if err != nil {
		return nil, "", a.internal(err)
	}
	return user, token, nil
}

func (a *AuthService) Me(ctx context.Context, claims *Claims) (*models.User, *res.ErrorRes) {
	idUser, errRes := userID(claims)
	if errRes != nil {
		return nil, errRes
	}
	return a.findUser(ctx, idUser)
}
