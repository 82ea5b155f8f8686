package shift

import (
	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	shifts := r.Group("/shifts", middleware.OperatorOnly())
	{
		shifts.POST("/open", h.Open)
		shifts.POST("/close", h.Close)
		shifts.GET("/current", h.Current)
		shifts.GET("", h.List)
		shifts.GET("/:id/summary", h.Summary)
	}

	expenses := r.Group("/expenses", middleware.OperatorOnly())
	{
		expenses.POST("", h.CreateExpense)
		expenses.GET("", h.ListExpenses)
	}
}
