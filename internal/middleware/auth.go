package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hackateen/mural/internal/auth"
	"github.com/hackateen/mural/internal/models"
	"github.com/hackateen/mural/internal/types"
	"gorm.io/gorm"
)

type AuthenticatedUser struct {
	ID    uint   `json:"userId"`
	Email string `json:"email"`
}

// RequireAuth gates mutating routes behind a valid bearer token. A missing
// token is 401, a malformed or expired one is 403, mirroring the contract
// clients already depend on.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": gin.H{"mensagem": "Token não fornecido"}})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": gin.H{"mensagem": "Token não fornecido"}})
			return
		}

		token, err := auth.VerifyJWT(parts[1])

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erro": gin.H{"mensagem": "Token inválido"}})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erro": gin.H{"mensagem": "Token inválido"}})
			return
		}

		userIDFloat, ok := claims["userId"].(float64)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erro": gin.H{"mensagem": "Token inválido"}})
			return
		}

		userID := uint(userIDFloat)

		var user models.User

		if err := db.First(&user, userID).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erro": gin.H{"mensagem": "Token inválido"}})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.UserID,
			Email: user.Email,
		})
		ctx.Next()
	}
}
