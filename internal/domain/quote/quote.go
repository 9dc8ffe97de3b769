package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the status of a quote
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusDraft:
		return target == StatusSent
	case StatusSent:
		return target == StatusAccepted || target == StatusRejected
	case StatusAccepted, StatusRejected:
		return false // Terminal states
	}
	return false
}

// Quote represents a priced offer (preventivo) issued to a client by one of
// the two companies. An accepted quote is the usual starting point for a job.
type Quote struct {
	shared.BaseAggregateRoot
	Number      string
	ClientID    uuid.UUID
	IssuedBy    job.Company
	Description string
	TotalAmount decimal.Decimal
	Status      Status
	ValidUntil  *time.Time
	SentAt      *time.Time
	DecidedAt   *time.Time
	Notes       *string
}

// NewQuote creates a new draft quote
func NewQuote(number string, clientID uuid.UUID, issuedBy job.Company, description string, totalAmount decimal.Decimal) (*Quote, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Quote number cannot be empty")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Quote client is required")
	}
	if !issuedBy.IsValid() {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Invalid issuing company")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}

	return &Quote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		ClientID:          clientID,
		IssuedBy:          issuedBy,
		Description:       description,
		TotalAmount:       totalAmount,
		Status:            StatusDraft,
	}, nil
}

// UpdateDetails updates the editable fields. Only a draft can be edited.
func (q *Quote) UpdateDetails(description string, totalAmount decimal.Decimal, validUntil *time.Time) error {
	if q.Status != StatusDraft {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot edit quote in %s status", q.Status))
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}

	q.Description = description
	q.TotalAmount = totalAmount
	q.ValidUntil = validUntil
	q.Touch()
	q.IncrementVersion()
	return nil
}

// Send marks the quote as sent to the client
func (q *Quote) Send() error {
	if !q.Status.CanTransitionTo(StatusSent) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot send quote in %s status", q.Status))
	}

	now := time.Now()
	q.Status = StatusSent
	q.SentAt = &now
	q.UpdatedAt = now
	q.IncrementVersion()
	return nil
}

// Accept marks the quote as accepted by the client
func (q *Quote) Accept() error {
	if !q.Status.CanTransitionTo(StatusAccepted) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot accept quote in %s status", q.Status))
	}
	if q.IsExpired() {
		return shared.NewDomainError("QUOTE_EXPIRED", "Cannot accept an expired quote")
	}

	now := time.Now()
	q.Status = StatusAccepted
	q.DecidedAt = &now
	q.UpdatedAt = now
	q.IncrementVersion()
	return nil
}

// Reject marks the quote as rejected by the client
func (q *Quote) Reject() error {
	if !q.Status.CanTransitionTo(StatusRejected) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot reject quote in %s status", q.Status))
	}

	now := time.Now()
	q.Status = StatusRejected
	q.DecidedAt = &now
	q.UpdatedAt = now
	q.IncrementVersion()
	return nil
}

// IsAccepted reports whether the client accepted this quote
func (q *Quote) IsAccepted() bool {
	return q.Status == StatusAccepted
}

// IsExpired reports whether the validity window has passed. A quote with no
// validity date never expires.
func (q *Quote) IsExpired() bool {
	return q.ValidUntil != nil && time.Now().After(*q.ValidUntil)
}

// GetTotalAmountMoney returns the total amount as Money
func (q *Quote) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyEUR(q.TotalAmount)
}
