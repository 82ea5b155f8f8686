package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "parkwash/internal/pkg/jwt"
	"parkwash/internal/pkg/response"
)

const (
	ContextEmployeeID = "employee_id"
	ContextRole       = "role"
)

// JWTAuth resolves the bearer token into the request-scoped employee
// identity. Browsers cannot set headers on WebSocket upgrades, so the
// token may also arrive as ?access_token=.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); h != "" {
			if !strings.HasPrefix(h, "Bearer ") {
				response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
				c.Abort()
				return
			}
			tokenStr = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		} else {
			tokenStr = strings.TrimSpace(c.Query("access_token"))
		}

		if tokenStr == "" {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextEmployeeID, claims.EmployeeID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// CurrentEmployee returns the authenticated employee id, writing 401 when
// the request carries none.
func CurrentEmployee(c *gin.Context) (int64, bool) {
	id := c.GetInt64(ContextEmployeeID)
	if id == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return 0, false
	}
	return id, true
}
