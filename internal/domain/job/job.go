package job

import (
	"time"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the production status of a job.
//
// The lifecycle is a flat enumeration: any status may be set from any other
// via direct user selection. No transition graph is enforced anywhere in the
// system, so none is enforced here.
type Status string

const (
	StatusPending      Status = "pending"
	StatusInProduction Status = "in_production"
	StatusCompleted    Status = "completed"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProduction, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Job represents a unit of billable work (lavoro) aggregate root. It carries
// the financial split between the two companies: how much of the total is
// collected upfront as a deposit, who receives and who invoices it, and an
// optional inter-company advance covering liquidity timing between the two.
type Job struct {
	shared.BaseAggregateRoot
	Number            string
	Description       string
	ClientID          *uuid.UUID
	QuoteID           *uuid.UUID // weak reference to the originating quote, lookup only
	TotalAmount       decimal.Decimal
	DepositPercentage decimal.Decimal // fixed at creation, read-only afterwards
	DepositAmount     decimal.Decimal // always ComputeDepositAmount(total, pct)
	DepositRecipient  DepositRecipient
	DepositInvoicedBy *Company // nil when the client pays directly
	Advance           *Advance // nil when no inter-company advance is active
	Status            Status
	StartDate         *time.Time
	EndDate           *time.Time
	Notes             *string
}

// NewJob creates a job from a validated record. Invariants are re-checked
// defensively so a job can never be constructed in an inconsistent state
// even when a caller skips form validation.
func NewJob(rec Record) (*Job, error) {
	if rec.Number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Job number cannot be empty")
	}
	if err := checkRecord(rec); err != nil {
		return nil, err
	}

	j := &Job{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            rec.Number,
		Description:       rec.Description,
		ClientID:          rec.ClientID,
		QuoteID:           rec.QuoteID,
		TotalAmount:       rec.TotalAmount,
		DepositPercentage: rec.DepositPercentage,
		DepositAmount:     ComputeDepositAmount(rec.TotalAmount, rec.DepositPercentage),
		DepositRecipient:  rec.DepositRecipient,
		DepositInvoicedBy: rec.DepositInvoicedBy,
		Advance:           rec.Advance,
		Status:            rec.Status,
		StartDate:         rec.StartDate,
		EndDate:           rec.EndDate,
		Notes:             rec.Notes,
	}

	return j, nil
}

// ApplyRecord applies an update record to an existing job. The deposit
// percentage is read-only after creation: the incoming value is ignored and
// the deposit amount is recomputed from the stored percentage, so the
// derived field stays consistent with its two source fields.
func (j *Job) ApplyRecord(rec Record) error {
	if err := checkRecord(rec); err != nil {
		return err
	}

	j.Description = rec.Description
	j.ClientID = rec.ClientID
	j.QuoteID = rec.QuoteID
	j.TotalAmount = rec.TotalAmount
	j.DepositAmount = ComputeDepositAmount(rec.TotalAmount, j.DepositPercentage)
	j.DepositRecipient = rec.DepositRecipient
	j.DepositInvoicedBy = rec.DepositInvoicedBy
	j.Advance = rec.Advance
	j.Status = rec.Status
	j.StartDate = rec.StartDate
	j.EndDate = rec.EndDate
	j.Notes = rec.Notes
	j.Touch()
	j.IncrementVersion()

	return nil
}

// SetStatus sets the job status. Membership is checked; transitions are not.
func (j *Job) SetStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid job status")
	}
	j.Status = status
	j.Touch()
	j.IncrementVersion()
	return nil
}

// IsDirectClientPayment reports whether the client pays directly, bypassing
// both companies. This is a derived view of DepositRecipient rather than an
// independently stored flag, so the two can never disagree.
func (j *Job) IsDirectClientPayment() bool {
	return j.DepositRecipient.IsDirect()
}

// HasAdvance returns true when an inter-company advance is active
func (j *Job) HasAdvance() bool {
	return j.Advance != nil
}

// GetTotalAmountMoney returns the total amount as Money
func (j *Job) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(j.TotalAmount)
}

// GetDepositAmountMoney returns the deposit amount as Money
func (j *Job) GetDepositAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(j.DepositAmount)
}

// checkRecord enforces the job invariants on a record
func checkRecord(rec Record) error {
	if rec.Description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if rec.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}
	if rec.DepositPercentage.IsNegative() || rec.DepositPercentage.GreaterThan(oneHundred) {
		return shared.NewDomainError("INVALID_PERCENTAGE", "Deposit percentage must be between 0 and 100")
	}
	if !rec.DepositRecipient.IsValid() {
		return shared.NewDomainError("INVALID_RECIPIENT", "Invalid deposit recipient")
	}
	if rec.DepositRecipient.IsDirect() {
		if rec.DepositInvoicedBy != nil {
			return shared.NewDomainError("INVALID_INVOICING", "No company invoices a direct client payment")
		}
	} else {
		if rec.DepositInvoicedBy == nil || !rec.DepositInvoicedBy.IsValid() {
			return shared.NewDomainError("INVALID_INVOICING", "Invoicing company is required")
		}
	}
	if !rec.Status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid job status")
	}
	if rec.Advance != nil {
		if rec.Advance.Amount.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_ADVANCE", "Advance amount must be positive")
		}
		if !rec.Advance.From.IsValid() || !rec.Advance.To.IsValid() {
			return shared.NewDomainError("INVALID_ADVANCE", "Advance companies are invalid")
		}
		if rec.Advance.From == rec.Advance.To {
			return shared.NewDomainError("INVALID_ADVANCE", "Advance source and destination must differ")
		}
	}
	return nil
}
