package employee

import (
	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
)

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.Me)

	employees := protected.Group("/employees")
	{
		employees.GET("", middleware.OperatorOnly(), h.List)
		employees.POST("", middleware.AdminOnly(), h.Create)
		employees.PATCH("/:id/status", middleware.AdminOnly(), h.SetStatus)
	}
}
