package washing

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

func (h *Handler) Create(c *gin.Context) {
	operatorID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	job, err := h.service.CreateJob(c.Request.Context(), operatorID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, job)
}

func (h *Handler) Assign(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	job, err := h.service.AssignWasher(c.Request.Context(), id, req.WasherID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

func (h *Handler) Complete(c *gin.Context) {
	actorID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	isWasher := c.GetString(middleware.ContextRole) == "washer"

	job, err := h.service.CompleteJob(c.Request.Context(), id, actorID, isWasher)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	job, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

func (h *Handler) Active(c *gin.Context) {
	jobs, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, jobs)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	jobs, err := h.service.ListJobs(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, jobs)
}

func (h *Handler) Mine(c *gin.Context) {
	washerID, ok := middleware.CurrentEmployee(c)
	if !ok {
		return
	}
	jobs, err := h.service.ListForWasher(c.Request.Context(), washerID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, jobs)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return 0, false
	}
	return id, true
}
