package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novita/internal/shared/constants"
)

// RoleFromContext reads the authenticated role set by the auth middleware.
// Requests without an authenticated identity resolve to member.
func RoleFromContext(c *gin.Context) UserRole {
	if v, ok := c.Get(constants.ContextKeyUserRole); ok {
		if s, ok := v.(string); ok {
			return ParseUserRole(s)
		}
	}
	return RoleMember
}

// RequireStaff aborts the request unless the authenticated role carries
// staff privileges.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleFromContext(c).IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "staff access required"},
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts the request unless the authenticated role is admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleFromContext(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"type": "forbidden", "message": "admin access required"},
			})
			return
		}
		c.Next()
	}
}
