package services

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CLAIMS_KEY = "user"

type Claims struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
	jwt.StandardClaims
}

func (claims *Claims) ObjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(claims.ID)
}

// NewClaimsFromContext reads the claims the JWT middleware stored
func NewClaimsFromContext(ctx *gin.Context) (*Claims, bool) {
	user, exists := ctx.Get(CLAIMS_KEY)
	if !exists {
		return nil, false
	}
	claims, ok := user.(*Claims)
	return claims, ok
}

func ParseBearer(header string) (string, error) {
	var token string
	if _, err := fmt.Sscanf(header, "Bearer %s", &token); err != nil || token == "" {
		return "", fmt.Errorf("invalid authorization header")
	}
	return token, nil
}
