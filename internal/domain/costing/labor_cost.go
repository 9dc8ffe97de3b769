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

// LaborCost represents hours worked on behalf of one company, optionally on a
// specific job. The total is always hours times rate.
type LaborCost struct {
	shared.BaseAggregateRoot
	Company     job.Company
	JobID       *uuid.UUID
	Description string
	Hours       decimal.Decimal
	HourlyRate  decimal.Decimal
	TotalCost   decimal.Decimal
	WorkedOn    time.Time
}

// NewLaborCost creates a labor cost entry
func NewLaborCost(company job.Company, description string, hours, hourlyRate decimal.Decimal, workedOn time.Time) (*LaborCost, error) {
	if !company.IsValid() {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Invalid company")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if hours.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_HOURS", "Hours must be positive")
	}
	if hourlyRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_RATE", "Hourly rate must be positive")
	}
	if workedOn.IsZero() {
		workedOn = time.Now()
	}

	return &LaborCost{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Company:           company,
		Description:       description,
		Hours:             hours,
		HourlyRate:        hourlyRate,
		TotalCost:         hours.Mul(hourlyRate).Round(2),
		WorkedOn:          workedOn,
	}, nil
}

// AssignJob links the labor entry to a job
func (l *LaborCost) AssignJob(jobID uuid.UUID) {
	l.JobID = &jobID
	l.Touch()
	l.IncrementVersion()
}

// Retime updates hours and rate, recomputing the total
func (l *LaborCost) Retime(hours, hourlyRate decimal.Decimal) error {
	if hours.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_HOURS", "Hours must be positive")
	}
	if hourlyRate.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_RATE", "Hourly rate must be positive")
	}

	l.Hours = hours
	l.HourlyRate = hourlyRate
	l.TotalCost = hours.Mul(hourlyRate).Round(2)
	l.Touch()
	l.IncrementVersion()
	return nil
}

// GetTotalCostMoney returns the total cost as Money
func (l *LaborCost) GetTotalCostMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(l.TotalCost)
}
