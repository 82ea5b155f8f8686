package parking

import (
	"net/http"
	"strconv"

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

func (h *Handler) Entry(c *gin.Context) {
	operatorID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	sess, err := h.service.RegisterEntry(c.Request.Context(), operatorID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sess)
}

func (h *Handler) Exit(c *gin.Context) {
	operatorID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	var req ExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	out, err := h.service.RegisterExit(c.Request.Context(), operatorID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Records(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	out, err := h.service.ListSessions(c.Request.Context(), c.DefaultQuery("status_filter", "all"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Active(c *gin.Context) {
	out, err := h.service.ActiveSessions(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Vehicle(c *gin.Context) {
	sess, err := h.service.OpenSessionByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sess)
}
