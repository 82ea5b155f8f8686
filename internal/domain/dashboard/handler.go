package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parkwash/internal/middleware"
	"parkwash/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Metrics(c *gin.Context) {
	m, err := h.service.Metrics(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/dashboard/metrics", middleware.OperatorOnly(), h.Metrics)
}
