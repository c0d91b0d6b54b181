package services

import (
	"fmt"
	"time"

	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/dgrijalva/jwt-go"
)

type TokenManager struct {
	secret     []byte
	expiration time.Duration
}

func NewTokenManager(secret string, expirationHours int) *TokenManager {
	if expirationHours <= 0 {
		expirationHours = 72
	}
	return &TokenManager{
		secret:     []byte(secret),
		expiration: time.Duration(expirationHours) * time.Hour,
	}
}

func (t *TokenManager) Generate(user *models.User) (string, error) {
	now := nowFunc()
	claims := &Claims{
		ID:       user.ID.Hex(),
		Name:     user.Name,
		UserType: user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.expiration).Unix(),
			Subject:   user.ID.Hex(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
