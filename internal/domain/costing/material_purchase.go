package costing

import (
	"strings"
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialPurchase represents raw material bought from a supplier, attributed
// to one of the two companies and optionally to a specific job.
type MaterialPurchase struct {
	shared.BaseAggregateRoot
	Company       job.Company
	SupplierID    *uuid.UUID
	JobID         *uuid.UUID
	Description   string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	TotalCost     decimal.Decimal // always Quantity * UnitPrice rounded to 2 places
	InvoiceNumber string
	PurchasedAt   time.Time
}

// NewMaterialPurchase creates a material purchase. The total cost is derived
// from quantity and unit price, never accepted from the caller.
func NewMaterialPurchase(company job.Company, description string, quantity, unitPrice decimal.Decimal, purchasedAt time.Time) (*MaterialPurchase, error) {
	if !company.IsValid() {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Invalid company")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}
	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}

	return &MaterialPurchase{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Company:           company,
		Description:       description,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		TotalCost:         quantity.Mul(unitPrice).Round(2),
		PurchasedAt:       purchasedAt,
	}, nil
}

// AssignSupplier links the purchase to a supplier
func (m *MaterialPurchase) AssignSupplier(supplierID uuid.UUID) {
	m.SupplierID = &supplierID
	m.Touch()
	m.IncrementVersion()
}

// AssignJob links the purchase to a job
func (m *MaterialPurchase) AssignJob(jobID uuid.UUID) {
	m.JobID = &jobID
	m.Touch()
	m.IncrementVersion()
}

// SetInvoiceNumber records the supplier invoice reference
func (m *MaterialPurchase) SetInvoiceNumber(number string) {
	m.InvoiceNumber = strings.TrimSpace(number)
	m.Touch()
	m.IncrementVersion()
}

// Reprice updates quantity and unit price, recomputing the total
func (m *MaterialPurchase) Reprice(quantity, unitPrice decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}

	m.Quantity = quantity
	m.UnitPrice = unitPrice
	m.TotalCost = quantity.Mul(unitPrice).Round(2)
	m.Touch()
	m.IncrementVersion()
	return nil
}

// GetTotalCostMoney returns the total cost as Money
func (m *MaterialPurchase) GetTotalCostMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(m.TotalCost)
}
