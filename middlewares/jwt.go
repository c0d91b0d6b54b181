package middlewares

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BLearning/res"
	"github.com/CPU-commits/Intranet_BLearning/services"
	"github.com/gin-gonic/gin"
)

func claimsFromHeader(tokens *services.TokenManager, ctx *gin.Context) (*services.Claims, error) {
	token, err := services.ParseBearer(ctx.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}
	return tokens.Parse(token)
}

// JWTMiddleware stores the bearer token claims under services.CLAIMS_KEY
func JWTMiddleware(tokens *services.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := claimsFromHeader(tokens, ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}
		ctx.Set(services.CLAIMS_KEY, claims)
		ctx.Next()
	}
}

// OptionalJWTMiddleware is for public routes that show more to a signed in user.
// A missing or invalid token leaves the request anonymous.
func OptionalJWTMiddleware(tokens *services.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") != "" {
			if claims, err := claimsFromHeader(tokens, ctx); err == nil {
				ctx.Set(services.CLAIMS_KEY, claims)
			}
		}
		ctx.Next()
	}
}
