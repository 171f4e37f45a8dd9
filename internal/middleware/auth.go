package middleware

import (
	"net/http"
	"strings"

	"zhanyixia/config"
	"zhanyixia/internal/auth"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Context keys set by AuthRequired.
const (
	ctxUserID = "auth.user_id"
	ctxEmail  = "auth.email"
	ctxRole   = "auth.role"
)

// AuthRequired lets only requests carrying a valid access token through and
// records the token identity on the context for downstream handlers.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}
		claims, err := auth.ParseAccessToken(cfg, strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// GetUserID reads the account id set by AuthRequired; zero means the request
// never passed the middleware.
func GetUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}
