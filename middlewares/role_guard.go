package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects callers whose role is not in the allowed set, listing
// the required roles and the caller's actual role. Declared per route in the
// route table so the permission map is readable in one place.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := Role(c)
		if _, ok := allowedSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Insufficient permissions",
				"required": allowed,
				"current":  role,
			})
			return
		}
		c.Next()
	}
}
