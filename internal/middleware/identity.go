package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/identity"
)

// IdentityMiddleware derives the caller's pseudo-identity from network
// origin + client signature and seeds it into the context. Every handler
// that scopes likes or comment ownership reads `userId` from here, so the
// derivation inputs stay in one place instead of being re-collected deep
// inside store logic.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := identity.Derive(c.ClientIP(), c.Request.UserAgent())
		c.Set("userId", token)
		c.Next()
	}
}
