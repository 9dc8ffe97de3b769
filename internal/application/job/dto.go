package job

import (
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdvanceRequest represents the optional inter-company advance section of a
// job form. When Enabled is false the other fields are ignored entirely.
type AdvanceRequest struct {
	Enabled bool            `json:"enabled"`
	Amount  decimal.Decimal `json:"amount"`
	From    string          `json:"from" binding:"omitempty,company"`
	To      string          `json:"to" binding:"omitempty,company"`
}

// CreateJobRequest represents a request to create a new job
type CreateJobRequest struct {
	Number            string          `json:"number" binding:"required,min=1,max=50"`
	Description       string          `json:"description"`
	ClientID          *uuid.UUID      `json:"client_id"`
	QuoteID           *uuid.UUID      `json:"quote_id"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	DepositPercentage decimal.Decimal `json:"deposit_percentage"`
	DepositRecipient  string          `json:"deposit_recipient"`
	DepositInvoicedBy string          `json:"deposit_invoiced_by"`
	Advance           AdvanceRequest  `json:"advance"`
	Status            string          `json:"status"`
	StartDate         *time.Time      `json:"start_date"`
	EndDate           *time.Time      `json:"end_date"`
	Notes             string          `json:"notes"`
}

// UpdateJobRequest represents a full-form update of an existing job. The
// deposit percentage is carried for form round-tripping but never applied.
type UpdateJobRequest struct {
	Description       string          `json:"description"`
	ClientID          *uuid.UUID      `json:"client_id"`
	QuoteID           *uuid.UUID      `json:"quote_id"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	DepositPercentage decimal.Decimal `json:"deposit_percentage"`
	DepositRecipient  string          `json:"deposit_recipient"`
	DepositInvoicedBy string          `json:"deposit_invoiced_by"`
	Advance           AdvanceRequest  `json:"advance"`
	Status            string          `json:"status"`
	StartDate         *time.Time      `json:"start_date"`
	EndDate           *time.Time      `json:"end_date"`
	Notes             string          `json:"notes"`
}

// UpdateJobStatusRequest represents a status change
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_production completed"`
}

// JobListFilter represents filtering options for listing jobs
type JobListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=pending in_production completed"`
}

// AdvanceResponse represents an active advance in API responses
type AdvanceResponse struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
}

// JobResponse represents a job in API responses
type JobResponse struct {
	ID                  uuid.UUID        `json:"id"`
	Number              string           `json:"number"`
	Description         string           `json:"description"`
	ClientID            *uuid.UUID       `json:"client_id"`
	QuoteID             *uuid.UUID       `json:"quote_id"`
	TotalAmount         decimal.Decimal  `json:"total_amount"`
	DepositPercentage   decimal.Decimal  `json:"deposit_percentage"`
	DepositAmount       decimal.Decimal  `json:"deposit_amount"`
	DepositRecipient    string           `json:"deposit_recipient"`
	DepositInvoicedBy   *string          `json:"deposit_invoiced_by"`
	DirectClientPayment bool             `json:"direct_client_payment"`
	Advance             *AdvanceResponse `json:"advance"`
	Status              string           `json:"status"`
	StartDate           *time.Time       `json:"start_date"`
	EndDate             *time.Time       `json:"end_date"`
	Notes               *string          `json:"notes"`
	Version             int              `json:"version"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// ToJobResponse converts a domain job to a response DTO
func ToJobResponse(j *job.Job) JobResponse {
	resp := JobResponse{
		ID:                  j.ID,
		Number:              j.Number,
		Description:         j.Description,
		ClientID:            j.ClientID,
		QuoteID:             j.QuoteID,
		TotalAmount:         j.TotalAmount,
		DepositPercentage:   j.DepositPercentage,
		DepositAmount:       j.DepositAmount,
		DepositRecipient:    j.DepositRecipient.String(),
		DirectClientPayment: j.IsDirectClientPayment(),
		Status:              j.Status.String(),
		StartDate:           j.StartDate,
		EndDate:             j.EndDate,
		Notes:               j.Notes,
		Version:             j.Version,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}

	if j.DepositInvoicedBy != nil {
		s := j.DepositInvoicedBy.String()
		resp.DepositInvoicedBy = &s
	}
	if j.Advance != nil {
		resp.Advance = &AdvanceResponse{
			Amount: j.Advance.Amount,
			From:   j.Advance.From.String(),
			To:     j.Advance.To.String(),
		}
	}

	return resp
}

// ToJobResponses converts a slice of domain jobs to response DTOs
func ToJobResponses(jobs []*job.Job) []JobResponse {
	responses := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		responses[i] = ToJobResponse(j)
	}
	return responses
}
