package quote

import (
	"time"

	"github.com/gestionale/backend/internal/domain/quote"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest represents a request to create a new quote
type CreateQuoteRequest struct {
	Number      string          `json:"number" binding:"required,min=1,max=50"`
	ClientID    uuid.UUID       `json:"client_id" binding:"required"`
	IssuedBy    string          `json:"issued_by" binding:"required,company"`
	Description string          `json:"description" binding:"required"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ValidUntil  *time.Time      `json:"valid_until"`
}

// UpdateQuoteRequest represents an update of a draft quote
type UpdateQuoteRequest struct {
	Description string          `json:"description" binding:"required"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ValidUntil  *time.Time      `json:"valid_until"`
}

// QuoteListFilter represents filtering options for listing quotes
type QuoteListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=draft sent accepted rejected"`
}

// QuoteResponse represents a quote in API responses
type QuoteResponse struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	ClientID    uuid.UUID       `json:"client_id"`
	IssuedBy    string          `json:"issued_by"`
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	ValidUntil  *time.Time      `json:"valid_until"`
	SentAt      *time.Time      `json:"sent_at"`
	DecidedAt   *time.Time      `json:"decided_at"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToQuoteResponse converts a domain quote to a response DTO
func ToQuoteResponse(q *quote.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		Number:      q.Number,
		ClientID:    q.ClientID,
		IssuedBy:    q.IssuedBy.String(),
		Description: q.Description,
		TotalAmount: q.TotalAmount,
		Status:      q.Status.String(),
		ValidUntil:  q.ValidUntil,
		SentAt:      q.SentAt,
		DecidedAt:   q.DecidedAt,
		Version:     q.Version,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// ToQuoteResponses converts a slice of domain quotes to response DTOs
func ToQuoteResponses(quotes []*quote.Quote) []QuoteResponse {
	responses := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		responses[i] = ToQuoteResponse(q)
	}
	return responses
}
