package shift

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

func (h *Handler) Open(c *gin.Context) {
	operatorID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	var req OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	sh, err := h.service.OpenShift(c.Request.Context(), operatorID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sh)
}

func (h *Handler) Close(c *gin.Context) {
	operatorID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	out, err := h.service.CloseShift(c.Request.Context(), operatorID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Current(c *gin.Context) {
	operatorID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	out, err := h.service.CurrentShift(c.Request.Context(), operatorID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	operatorID, _ := strconv.ParseInt(c.Query("operator_id"), 10, 64)

	out, err := h.service.ListShifts(c.Request.Context(), operatorID, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Summary(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid shift ID")
		return
	}
	sum, err := h.service.Summary(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func (h *Handler) CreateExpense(c *gin.Context) {
	operatorID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	exp, err := h.service.RecordExpense(c.Request.Context(), operatorID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, exp)
}

func (h *Handler) ListExpenses(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	out, err := h.service.ListExpenses(c.Request.Context(), skip, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}
