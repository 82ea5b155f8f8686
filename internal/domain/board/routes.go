package board

import (
	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
)

// RegisterRoutes mounts the live feed next to the washing endpoints.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/washing/board/ws", middleware.BoardOnly(), h.WebSocket)
}
