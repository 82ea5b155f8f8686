package washing

import (
	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	jobs := r.Group("/washing/jobs")
	{
		jobs.POST("", middleware.OperatorOnly(), h.Create)
		jobs.GET("", middleware.BoardOnly(), h.List)
		jobs.GET("/active", middleware.BoardOnly(), h.Active)
		jobs.GET("/mine", middleware.WasherOnly(), h.Mine)
		jobs.GET("/:id", middleware.BoardOnly(), h.Get)
		jobs.POST("/:id/assign", middleware.OperatorOnly(), h.Assign)
		jobs.POST("/:id/complete", middleware.BoardOnly(), h.Complete)
	}
}
