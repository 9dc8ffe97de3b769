package costing

import (
	"time"

	"github.com/gestionale/backend/internal/domain/costing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Material purchase DTOs
// =============================================================================

// CreateMaterialPurchaseRequest represents a request to record a material purchase
type CreateMaterialPurchaseRequest struct {
	Company       string          `json:"company" binding:"required,company"`
	SupplierID    *uuid.UUID      `json:"supplier_id"`
	JobID         *uuid.UUID      `json:"job_id"`
	Description   string          `json:"description" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	InvoiceNumber string          `json:"invoice_number" binding:"max=50"`
	PurchasedAt   time.Time       `json:"purchased_at"`
}

// MaterialPurchaseResponse represents a material purchase in API responses
type MaterialPurchaseResponse struct {
	ID            uuid.UUID       `json:"id"`
	Company       string          `json:"company"`
	SupplierID    *uuid.UUID      `json:"supplier_id"`
	JobID         *uuid.UUID      `json:"job_id"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	InvoiceNumber string          `json:"invoice_number"`
	PurchasedAt   time.Time       `json:"purchased_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToMaterialPurchaseResponse converts a domain purchase to a response DTO
func ToMaterialPurchaseResponse(m *costing.MaterialPurchase) MaterialPurchaseResponse {
	return MaterialPurchaseResponse{
		ID:            m.ID,
		Company:       m.Company.String(),
		SupplierID:    m.SupplierID,
		JobID:         m.JobID,
		Description:   m.Description,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		TotalCost:     m.TotalCost,
		InvoiceNumber: m.InvoiceNumber,
		PurchasedAt:   m.PurchasedAt,
		CreatedAt:     m.CreatedAt,
	}
}

// =============================================================================
// Labor cost DTOs
// =============================================================================

// CreateLaborCostRequest represents a request to record worked hours
type CreateLaborCostRequest struct {
	Company     string          `json:"company" binding:"required,company"`
	JobID       *uuid.UUID      `json:"job_id"`
	Description string          `json:"description" binding:"required"`
	Hours       decimal.Decimal `json:"hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	WorkedOn    time.Time       `json:"worked_on"`
}

// LaborCostResponse represents a labor cost in API responses
type LaborCostResponse struct {
	ID          uuid.UUID       `json:"id"`
	Company     string          `json:"company"`
	JobID       *uuid.UUID      `json:"job_id"`
	Description string          `json:"description"`
	Hours       decimal.Decimal `json:"hours"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	WorkedOn    time.Time       `json:"worked_on"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToLaborCostResponse converts a domain labor cost to a response DTO
func ToLaborCostResponse(l *costing.LaborCost) LaborCostResponse {
	return LaborCostResponse{
		ID:          l.ID,
		Company:     l.Company.String(),
		JobID:       l.JobID,
		Description: l.Description,
		Hours:       l.Hours,
		HourlyRate:  l.HourlyRate,
		TotalCost:   l.TotalCost,
		WorkedOn:    l.WorkedOn,
		CreatedAt:   l.CreatedAt,
	}
}

// =============================================================================
// Utility cost DTOs
// =============================================================================

// CreateUtilityCostRequest represents a request to record a utility bill
type CreateUtilityCostRequest struct {
	Company     string          `json:"company" binding:"required,company"`
	Type        string          `json:"type" binding:"required,oneof=electricity gas water phone rent other"`
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart time.Time       `json:"period_start" binding:"required"`
	PeriodEnd   time.Time       `json:"period_end" binding:"required"`
	Notes       string          `json:"notes"`
}

// UtilityCostResponse represents a utility cost in API responses
type UtilityCostResponse struct {
	ID          uuid.UUID       `json:"id"`
	Company     string          `json:"company"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToUtilityCostResponse converts a domain utility cost to a response DTO
func ToUtilityCostResponse(u *costing.UtilityCost) UtilityCostResponse {
	return UtilityCostResponse{
		ID:          u.ID,
		Company:     u.Company.String(),
		Type:        string(u.Type),
		Amount:      u.Amount,
		PeriodStart: u.PeriodStart,
		PeriodEnd:   u.PeriodEnd,
		Notes:       u.Notes,
		CreatedAt:   u.CreatedAt,
	}
}

// =============================================================================
// Summary DTOs
// =============================================================================

// CostListFilter represents filtering options for listing cost entries
type CostListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Company  string `form:"company" binding:"omitempty,company"`
}

// CompanyCostSummary represents aggregated costs for one company over a period
type CompanyCostSummary struct {
	Company    string          `json:"company"`
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Materials  decimal.Decimal `json:"materials"`
	Labor      decimal.Decimal `json:"labor"`
	Utilities  decimal.Decimal `json:"utilities"`
	TotalCosts decimal.Decimal `json:"total_costs"`
}
