package middleware

import (
	"net/http"

	"maggamhub/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates /admin routes. The Authorization header carries
// the raw token value directly (no bearer scheme); anything that does not
// match the active token is rejected with 403.
func AdminAuthMiddleware(auth admin.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if err := auth.Authorize(c.Request.Context(), token); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
