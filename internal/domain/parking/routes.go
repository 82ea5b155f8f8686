package parking

import (
	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	g := r.Group("/parking", middleware.OperatorOnly())
	{
		g.POST("/entry", h.Entry)
		g.POST("/exit", h.Exit)
		g.GET("/records", h.Records)
		g.GET("/active", h.Active)
		g.GET("/vehicle/:plate", h.Vehicle)
	}
}
