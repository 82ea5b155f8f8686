package subscription

import (
	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	g := r.Group("/subscriptions", middleware.OperatorOnly())
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.GET("/check/:plate", h.Check)
		g.POST("/:id/cancel", middleware.AdminOnly(), h.Cancel)
	}
}
