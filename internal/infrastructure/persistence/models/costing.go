package models

import (
	"time"

	"github.com/gestionale/backend/internal/domain/costing"
	"github.com/gestionale/backend/internal/domain/job"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialPurchaseModel is the persistence mapping for material purchases
type MaterialPurchaseModel struct {
	AggregateModel
	Company       string          `gorm:"type:varchar(20);not null;index"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index"`
	JobID         *uuid.UUID      `gorm:"type:uuid;index"`
	Description   string          `gorm:"type:text;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalCost     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	InvoiceNumber string          `gorm:"type:varchar(50)"`
	PurchasedAt   time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (MaterialPurchaseModel) TableName() string {
	return "material_purchases"
}

// ToDomain converts the persistence model to a domain MaterialPurchase aggregate
func (m *MaterialPurchaseModel) ToDomain() *costing.MaterialPurchase {
	return &costing.MaterialPurchase{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Company:           job.Company(m.Company),
		SupplierID:        m.SupplierID,
		JobID:             m.JobID,
		Description:       m.Description,
		Quantity:          m.Quantity,
		UnitPrice:         m.UnitPrice,
		TotalCost:         m.TotalCost,
		InvoiceNumber:     m.InvoiceNumber,
		PurchasedAt:       m.PurchasedAt,
	}
}

// MaterialPurchaseModelFromDomain converts a domain MaterialPurchase to the persistence model
func MaterialPurchaseModelFromDomain(p *costing.MaterialPurchase) *MaterialPurchaseModel {
	m := &MaterialPurchaseModel{
		Company:       string(p.Company),
		SupplierID:    p.SupplierID,
		JobID:         p.JobID,
		Description:   p.Description,
		Quantity:      p.Quantity,
		UnitPrice:     p.UnitPrice,
		TotalCost:     p.TotalCost,
		InvoiceNumber: p.InvoiceNumber,
		PurchasedAt:   p.PurchasedAt,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}

// LaborCostModel is the persistence mapping for labor costs
type LaborCostModel struct {
	AggregateModel
	Company     string          `gorm:"type:varchar(20);not null;index"`
	JobID       *uuid.UUID      `gorm:"type:uuid;index"`
	Description string          `gorm:"type:text;not null"`
	Hours       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	HourlyRate  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TotalCost   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	WorkedOn    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (LaborCostModel) TableName() string {
	return "labor_costs"
}

// ToDomain converts the persistence model to a domain LaborCost aggregate
func (m *LaborCostModel) ToDomain() *costing.LaborCost {
	return &costing.LaborCost{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Company:           job.Company(m.Company),
		JobID:             m.JobID,
		Description:       m.Description,
		Hours:             m.Hours,
		HourlyRate:        m.HourlyRate,
		TotalCost:         m.TotalCost,
		WorkedOn:          m.WorkedOn,
	}
}

// LaborCostModelFromDomain converts a domain LaborCost to the persistence model
func LaborCostModelFromDomain(c *costing.LaborCost) *LaborCostModel {
	m := &LaborCostModel{
		Company:     string(c.Company),
		JobID:       c.JobID,
		Description: c.Description,
		Hours:       c.Hours,
		HourlyRate:  c.HourlyRate,
		TotalCost:   c.TotalCost,
		WorkedOn:    c.WorkedOn,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}

// UtilityCostModel is the persistence mapping for utility costs
type UtilityCostModel struct {
	AggregateModel
	Company     string          `gorm:"type:varchar(20);not null;index"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PeriodStart time.Time       `gorm:"not null;index"`
	PeriodEnd   time.Time       `gorm:"not null"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UtilityCostModel) TableName() string {
	return "utility_costs"
}

// ToDomain converts the persistence model to a domain UtilityCost aggregate
func (m *UtilityCostModel) ToDomain() *costing.UtilityCost {
	return &costing.UtilityCost{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Company:           job.Company(m.Company),
		Type:              costing.UtilityType(m.Type),
		Amount:            m.Amount,
		PeriodStart:       m.PeriodStart,
		PeriodEnd:         m.PeriodEnd,
		Notes:             m.Notes,
	}
}

// UtilityCostModelFromDomain converts a domain UtilityCost to the persistence model
func UtilityCostModelFromDomain(c *costing.UtilityCost) *UtilityCostModel {
	m := &UtilityCostModel{
		Company:     string(c.Company),
		Type:        string(c.Type),
		Amount:      c.Amount,
		PeriodStart: c.PeriodStart,
		PeriodEnd:   c.PeriodEnd,
		Notes:       c.Notes,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
