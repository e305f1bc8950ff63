package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonhub/booking-api/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUser     = "user"
	ContextTokenKey = "tokenKey"
)

// AuthMiddleware valida o token opaco contra a tabela auth_tokens.
// Aceita "Bearer <key>" e também "Token <key>" (clientes antigos).
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || (!strings.EqualFold(parts[0], "Bearer") && !strings.EqualFold(parts[0], "Token")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		key := strings.TrimSpace(parts[1])
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		var token models.AuthToken
		if err := db.Preload("User.Profile").
			Where("key = ?", key).
			First(&token).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextUserID, token.UserID)
		c.Set(ContextUser, &token.User)
		c.Set(ContextTokenKey, token.Key)

		c.Next()
	}
}
