package handler

import (
	"context"

	quoteapp "github.com/gestionale/backend/internal/application/quote"
	"github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuoteHandler handles quote (preventivo) API endpoints
type QuoteHandler struct {
	BaseHandler
	quoteService *quoteapp.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *quoteapp.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// RegisterRoutes registers quote routes on the API group
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	{
		quotes.GET("", middleware.RequirePermission(identity.PermQuoteRead), h.List)
		quotes.GET("/accepted", middleware.RequirePermission(identity.PermQuoteRead), h.ListAccepted)
		quotes.GET("/:id", middleware.RequirePermission(identity.PermQuoteRead), h.Get)
		quotes.GET("/by-client/:clientId", middleware.RequirePermission(identity.PermQuoteRead), h.ListByClient)
		quotes.POST("", middleware.RequirePermission(identity.PermQuoteWrite), h.Create)
		quotes.PUT("/:id", middleware.RequirePermission(identity.PermQuoteWrite), h.Update)
		quotes.POST("/:id/send", middleware.RequirePermission(identity.PermQuoteWrite), h.Send)
		quotes.POST("/:id/accept", middleware.RequirePermission(identity.PermQuoteWrite), h.Accept)
		quotes.POST("/:id/reject", middleware.RequirePermission(identity.PermQuoteWrite), h.Reject)
		quotes.DELETE("/:id", middleware.RequirePermission(identity.PermQuoteWrite), h.Delete)
	}
}

// Create creates a new draft quote
func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteapp.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quote, err := h.quoteService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, quote)
}

// Update edits a draft quote
func (h *QuoteHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	var req quoteapp.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quote, err := h.quoteService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quote)
}

// Send marks a draft quote as sent to the client
func (h *QuoteHandler) Send(c *gin.Context) {
	h.transition(c, h.quoteService.Send)
}

// Accept marks a sent quote as accepted by the client
func (h *QuoteHandler) Accept(c *gin.Context) {
	h.transition(c, h.quoteService.Accept)
}

// Reject marks a sent quote as rejected by the client
func (h *QuoteHandler) Reject(c *gin.Context) {
	h.transition(c, h.quoteService.Reject)
}

func (h *QuoteHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*quoteapp.QuoteResponse, error)) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := apply(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quote)
}

// Get returns a single quote by ID
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quote)
}

// List returns quotes matching the query filter
func (h *QuoteHandler) List(c *gin.Context) {
	var filter quoteapp.QuoteListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quotes, total, err := h.quoteService.List(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, quotes, total, page, pageSize)
}

// ListAccepted returns accepted quotes for the job form selector
func (h *QuoteHandler) ListAccepted(c *gin.Context) {
	filter := quoteapp.QuoteListFilter{Status: "accepted"}
	quotes, _, err := h.quoteService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quotes)
}

// ListByClient returns all quotes issued to one client
func (h *QuoteHandler) ListByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	quotes, err := h.quoteService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quotes)
}

// Delete removes a quote. Accepted quotes are refused by the service.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid quote ID")
		return
	}

	if err := h.quoteService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
