package rate

import (
	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
)

// RegisterRoutes mounts the catalog: operators read it, only global admins
// change prices.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	rates := r.Group("/rates")
	{
		rates.GET("", middleware.OperatorOnly(), h.List)
		rates.POST("", middleware.AdminOnly(), h.Create)
		rates.PUT("/:id", middleware.AdminOnly(), h.Update)
		rates.DELETE("/:id", middleware.AdminOnly(), h.Delete)
	}
}
