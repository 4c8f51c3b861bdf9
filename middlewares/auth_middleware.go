package middlewares

import (
	"ecommerce-backend/constants"
	"ecommerce-backend/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "userID"

// AuthMiddleware reads the token from the auth-token header and stores the
// authenticated user id in the context under UserIDKey.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := ctx.GetHeader(constants.AuthTokenHeader)
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": constants.ErrAuthenticationRequired})
			return
		}

		userID, err := authService.ParseToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": constants.ErrInvalidToken})
			return
		}

		ctx.Set(UserIDKey, userID)

		ctx.Next()
	}
}
