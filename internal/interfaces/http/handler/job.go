package handler

import (
	jobapp "github.com/gestionale/backend/internal/application/job"
	"github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// JobHandler handles job (lavoro) API endpoints
type JobHandler struct {
	BaseHandler
	jobService *jobapp.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService *jobapp.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// RegisterRoutes registers job routes on the API group
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", middleware.RequirePermission(identity.PermJobRead), h.List)
		jobs.GET("/:id", middleware.RequirePermission(identity.PermJobRead), h.Get)
		jobs.GET("/by-number/:number", middleware.RequirePermission(identity.PermJobRead), h.GetByNumber)
		jobs.POST("", middleware.RequirePermission(identity.PermJobWrite), h.Create)
		jobs.PUT("/:id", middleware.RequirePermission(identity.PermJobWrite), h.Update)
		jobs.PATCH("/:id/status", middleware.RequirePermission(identity.PermJobWrite), h.UpdateStatus)
		jobs.DELETE("/:id", middleware.RequirePermission(identity.PermJobWrite), h.Delete)
	}
}

// Create creates a new job from a submitted form
func (h *JobHandler) Create(c *gin.Context) {
	var req jobapp.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, job)
}

// Update applies a full-form update to an existing job
func (h *JobHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	var req jobapp.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// UpdateStatus changes only the production status of a job
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	var req jobapp.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// Get returns a single job by ID
func (h *JobHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	job, err := h.jobService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// GetByNumber returns a single job by its unique number
func (h *JobHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Job number is required")
		return
	}

	job, err := h.jobService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// List returns jobs matching the query filter
func (h *JobHandler) List(c *gin.Context) {
	var filter jobapp.JobListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	jobs, total, err := h.jobService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, jobs, total, page, pageSize)
}

// Delete removes a job
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
