package agreement

import (
	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	g := r.Group("/agreements")
	{
		g.GET("", middleware.OperatorOnly(), h.List)
		g.GET("/:id", middleware.OperatorOnly(), h.Get)
		g.POST("", middleware.AdminOnly(), h.Create)
		g.PATCH("/:id/status", middleware.AdminOnly(), h.SetStatus)
		g.POST("/:id/vehicles", middleware.AdminOnly(), h.EnrollVehicle)
		g.DELETE("/:id/vehicles/:plate", middleware.AdminOnly(), h.RemoveVehicle)
	}
}
