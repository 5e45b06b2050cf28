package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/internal/admin"
)

// AdminSecretHeader carries the shared board secret on gated requests.
const AdminSecretHeader = "X-Admin-Secret"

// RequireAdmin gates destructive operations behind the shared-secret
// check. The gate is stateless per call; there is no admin session.
func RequireAdmin(gate *admin.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Verify(c.GetHeader(AdminSecretHeader)) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "msg": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
