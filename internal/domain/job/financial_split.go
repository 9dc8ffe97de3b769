package job

import (
	"strings"
	"time"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeDepositAmount derives the deposit from the job total and the
// deposit percentage: totalAmount * depositPercentage / 100, rounded to two
// decimal places half away from zero (so 100 at 2.5% yields 2.50 and
// 999.99 at 33% yields 330.00). The function performs no clamping; input
// range enforcement belongs to ValidateForm.
func ComputeDepositAmount(totalAmount, depositPercentage decimal.Decimal) decimal.Decimal {
	return totalAmount.Mul(depositPercentage).Div(oneHundred).Round(2)
}

// AdvanceForm holds the inter-company advance section of the job form.
// Amount, From and To are ignored entirely while Enabled is false.
type AdvanceForm struct {
	Enabled bool
	Amount  decimal.Decimal
	From    Company
	To      Company
}

// Form is the typed form state for creating or editing a job. Numeric and
// date fields are parsed at the input boundary; the validator and the record
// builder only ever see parsed values.
type Form struct {
	Number            string
	Description       string
	ClientID          *uuid.UUID
	QuoteID           *uuid.UUID
	TotalAmount       decimal.Decimal
	DepositPercentage decimal.Decimal
	DepositRecipient  DepositRecipient
	DepositInvoicedBy Company
	Advance           AdvanceForm
	Status            Status
	StartDate         *time.Time
	EndDate           *time.Time
	Notes             string
}

// ValidateForm checks every business rule of the job form and returns a
// field-keyed map of messages. All rules are evaluated; nothing
// short-circuits. An empty map means the form may be persisted.
func ValidateForm(f Form) shared.FieldErrors {
	errs := make(shared.FieldErrors)

	if strings.TrimSpace(f.Description) == "" {
		errs.Add("description", "description required")
	}
	if f.TotalAmount.LessThanOrEqual(decimal.Zero) {
		errs.Add("total_amount", "amount must be greater than 0")
	}
	if f.DepositPercentage.IsNegative() || f.DepositPercentage.GreaterThan(oneHundred) {
		errs.Add("deposit_percentage", "percentage must be between 0 and 100")
	}
	if !f.DepositRecipient.IsValid() {
		errs.Add("deposit_recipient", "invalid deposit recipient")
	}
	if !f.DepositRecipient.IsDirect() && !f.DepositInvoicedBy.IsValid() {
		errs.Add("deposit_invoiced_by", "invalid invoicing company")
	}
	if !f.Status.IsValid() {
		errs.Add("status", "invalid status")
	}

	if f.Advance.Enabled {
		if f.Advance.Amount.LessThanOrEqual(decimal.Zero) {
			errs.Add("advance_amount", "advance amount must be greater than 0")
		}
		if !f.Advance.From.IsValid() {
			errs.Add("advance_from", "invalid source company")
		}
		if !f.Advance.To.IsValid() {
			errs.Add("advance_to", "invalid destination company")
		}
		if f.Advance.From.IsValid() && f.Advance.To.IsValid() && f.Advance.From == f.Advance.To {
			errs.Add("advance_to", "source and destination entities must differ")
		}
	}

	return errs
}

// Advance is the storage shape of an enabled inter-company advance.
type Advance struct {
	Amount decimal.Decimal
	From   Company
	To     Company
}

// Record is the storage-shaped payload built from a validated Form. It is
// the exact shape handed to the repository for insert or update; nothing
// transforms it in between.
type Record struct {
	Number            string
	Description       string
	ClientID          *uuid.UUID
	QuoteID           *uuid.UUID
	TotalAmount       decimal.Decimal
	DepositPercentage decimal.Decimal
	DepositAmount     decimal.Decimal
	DepositRecipient  DepositRecipient
	DepositInvoicedBy *Company
	Advance           *Advance
	Status            Status
	StartDate         *time.Time
	EndDate           *time.Time
	Notes             *string
}

// ToRecord builds the persistable record from a validated form. The
// transform is pure and idempotent: strings are trimmed, empty optional
// fields become nil rather than empty strings, the invoicing company is
// nil'd when the client pays directly, and all advance sub-fields are
// omitted when the advance is disabled. Callers must validate first;
// ToRecord performs no checking of its own.
func (f Form) ToRecord() Record {
	rec := Record{
		Number:            strings.TrimSpace(f.Number),
		Description:       strings.TrimSpace(f.Description),
		ClientID:          f.ClientID,
		QuoteID:           f.QuoteID,
		TotalAmount:       f.TotalAmount,
		DepositPercentage: f.DepositPercentage,
		DepositAmount:     ComputeDepositAmount(f.TotalAmount, f.DepositPercentage),
		DepositRecipient:  f.DepositRecipient,
		Status:            f.Status,
		StartDate:         f.StartDate,
		EndDate:           f.EndDate,
	}

	if !f.DepositRecipient.IsDirect() {
		invoicedBy := f.DepositInvoicedBy
		rec.DepositInvoicedBy = &invoicedBy
	}

	if f.Advance.Enabled {
		rec.Advance = &Advance{
			Amount: f.Advance.Amount,
			From:   f.Advance.From,
			To:     f.Advance.To,
		}
	}

	if notes := strings.TrimSpace(f.Notes); notes != "" {
		rec.Notes = &notes
	}

	return rec
}
