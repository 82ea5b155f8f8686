package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parkwash/internal/pkg/response"
)

// Operator roles may run the gate: open shifts, register entries and exits.
var OperatorRoles = []string{"global_admin", "operational_admin"}

// BoardRoles may watch and work the washing board.
var BoardRoles = []string{"global_admin", "operational_admin", "washer"}

// RequireRole ensures that the authenticated employee has one of the roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if r, ok := role.(string); !ok || !allowed[r] {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires the global admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole("global_admin")
}

// OperatorOnly lets gate operators and global admins through.
func OperatorOnly() gin.HandlerFunc {
	return RequireRole(OperatorRoles...)
}

// BoardOnly lets operators and washers through.
func BoardOnly() gin.HandlerFunc {
	return RequireRole(BoardRoles...)
}

// WasherOnly restricts a route to washers.
func WasherOnly() gin.HandlerFunc {
	return RequireRole("washer")
}
