package handler

import (
	"context"
	"time"

	costingapp "github.com/gestionale/backend/internal/application/costing"
	"github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CostingHandler handles cost-entry API endpoints for material purchases,
// labor and utilities
type CostingHandler struct {
	BaseHandler
	costingService *costingapp.CostingService
}

// NewCostingHandler creates a new CostingHandler
func NewCostingHandler(costingService *costingapp.CostingService) *CostingHandler {
	return &CostingHandler{costingService: costingService}
}

// RegisterRoutes registers costing routes on the API group
func (h *CostingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	costs := rg.Group("/costs")
	{
		read := middleware.RequirePermission(identity.PermCostRead)
		write := middleware.RequirePermission(identity.PermCostWrite)

		costs.GET("/materials", read, h.ListMaterialPurchases)
		costs.POST("/materials", write, h.RecordMaterialPurchase)
		costs.DELETE("/materials/:id", write, h.DeleteMaterialPurchase)

		costs.GET("/labor", read, h.ListLaborCosts)
		costs.POST("/labor", write, h.RecordLaborCost)
		costs.DELETE("/labor/:id", write, h.DeleteLaborCost)

		costs.GET("/utilities", read, h.ListUtilityCosts)
		costs.POST("/utilities", write, h.RecordUtilityCost)
		costs.DELETE("/utilities/:id", write, h.DeleteUtilityCost)

		costs.GET("/by-job/:jobId", read, h.ListByJob)
		costs.GET("/summary", read, h.Summary)
	}
}

// RecordMaterialPurchase records a raw material purchase
func (h *CostingHandler) RecordMaterialPurchase(c *gin.Context) {
	var req costingapp.CreateMaterialPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchase, err := h.costingService.RecordMaterialPurchase(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, purchase)
}

// RecordLaborCost records hours worked at an hourly rate
func (h *CostingHandler) RecordLaborCost(c *gin.Context) {
	var req costingapp.CreateLaborCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cost, err := h.costingService.RecordLaborCost(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cost)
}

// RecordUtilityCost records a utility bill for a period
func (h *CostingHandler) RecordUtilityCost(c *gin.Context) {
	var req costingapp.CreateUtilityCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cost, err := h.costingService.RecordUtilityCost(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cost)
}

// ListMaterialPurchases returns material purchases matching the filter
func (h *CostingHandler) ListMaterialPurchases(c *gin.Context) {
	var filter costingapp.CostListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchases, err := h.costingService.ListMaterialPurchases(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, purchases)
}

// ListLaborCosts returns labor cost entries matching the filter
func (h *CostingHandler) ListLaborCosts(c *gin.Context) {
	var filter costingapp.CostListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	costs, err := h.costingService.ListLaborCosts(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, costs)
}

// ListUtilityCosts returns utility cost entries matching the filter
func (h *CostingHandler) ListUtilityCosts(c *gin.Context) {
	var filter costingapp.CostListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	costs, err := h.costingService.ListUtilityCosts(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, costs)
}

// ListByJob returns material and labor entries attributed to one job
func (h *CostingHandler) ListByJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	materials, labor, err := h.costingService.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{
		"materials": materials,
		"labor":     labor,
	})
}

// summaryQuery binds the cost summary query parameters
type summaryQuery struct {
	Company string    `form:"company" binding:"required,company"`
	From    time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To      time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// Summary returns aggregated per-company costs over a period
func (h *CostingHandler) Summary(c *gin.Context) {
	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.costingService.Summary(c.Request.Context(), q.Company, q.From, q.To)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// DeleteMaterialPurchase removes a material purchase entry
func (h *CostingHandler) DeleteMaterialPurchase(c *gin.Context) {
	h.deleteEntry(c, h.costingService.DeleteMaterialPurchase)
}

// DeleteLaborCost removes a labor cost entry
func (h *CostingHandler) DeleteLaborCost(c *gin.Context) {
	h.deleteEntry(c, h.costingService.DeleteLaborCost)
}

// DeleteUtilityCost removes a utility cost entry
func (h *CostingHandler) DeleteUtilityCost(c *gin.Context) {
	h.deleteEntry(c, h.costingService.DeleteUtilityCost)
}

func (h *CostingHandler) deleteEntry(c *gin.Context, remove func(ctx context.Context, id uuid.UUID) error) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid cost entry ID")
		return
	}

	if err := remove(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
