package costing

import (
	"strings"
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// UtilityType represents the kind of recurring overhead cost
type UtilityType string

const (
	UtilityElectricity UtilityType = "electricity"
	UtilityGas         UtilityType = "gas"
	UtilityWater       UtilityType = "water"
	UtilityPhone       UtilityType = "phone"
	UtilityRent        UtilityType = "rent"
	UtilityOther       UtilityType = "other"
)

// IsValid checks if the type is a valid UtilityType
func (u UtilityType) IsValid() bool {
	switch u {
	case UtilityElectricity, UtilityGas, UtilityWater, UtilityPhone, UtilityRent, UtilityOther:
		return true
	}
	return false
}

// UtilityCost represents a recurring overhead bill attributed to one company
// for a billing period.
type UtilityCost struct {
	shared.BaseAggregateRoot
	Company     job.Company
	Type        UtilityType
	Amount      decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
	Notes       string
}

// NewUtilityCost creates a utility cost entry for a billing period
func NewUtilityCost(company job.Company, utilityType UtilityType, amount decimal.Decimal, periodStart, periodEnd time.Time) (*UtilityCost, error) {
	if !company.IsValid() {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Invalid company")
	}
	if !utilityType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid utility type")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if periodStart.IsZero() || periodEnd.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Billing period is required")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end cannot precede period start")
	}

	return &UtilityCost{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Company:           company,
		Type:              utilityType,
		Amount:            amount.Round(2),
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
	}, nil
}

// SetNotes sets free-form notes
func (u *UtilityCost) SetNotes(notes string) {
	u.Notes = strings.TrimSpace(notes)
	u.Touch()
	u.IncrementVersion()
}

// GetAmountMoney returns the bill amount as Money
func (u *UtilityCost) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(u.Amount)
}
