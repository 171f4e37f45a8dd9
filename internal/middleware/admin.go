package middleware

import (
	"context"
	"net/http"

	"zhanyixia/internal/domain"

	"github.com/gin-gonic/gin"
)

// RoleLookup resolves the current role of an account. The role is re-read
// from the store on every admin request so a demotion takes effect
// immediately, not at token expiry.
type RoleLookup interface {
	RoleByID(ctx context.Context, id uint) (string, error)
}

// AdminRequired rejects any request whose account is missing or not an
// admin before the handler runs. Must be mounted after AuthRequired.
func AdminRequired(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		role, err := roles.RoleByID(c.Request.Context(), userID)
		if err != nil || role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
