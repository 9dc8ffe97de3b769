package models

import (
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/quote"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteModel is the persistence mapping for the Quote aggregate
type QuoteModel struct {
	AggregateModel
	Number      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	IssuedBy    string          `gorm:"type:varchar(20);not null"`
	Description string          `gorm:"type:text;not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	ValidUntil  *time.Time
	SentAt      *time.Time
	DecidedAt   *time.Time
	Notes       *string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (QuoteModel) TableName() string {
	return "quotes"
}

// ToDomain converts the persistence model to a domain Quote aggregate
func (m *QuoteModel) ToDomain() *quote.Quote {
	return &quote.Quote{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Number:            m.Number,
		ClientID:          m.ClientID,
		IssuedBy:          job.Company(m.IssuedBy),
		Description:       m.Description,
		TotalAmount:       m.TotalAmount,
		Status:            quote.Status(m.Status),
		ValidUntil:        m.ValidUntil,
		SentAt:            m.SentAt,
		DecidedAt:         m.DecidedAt,
		Notes:             m.Notes,
	}
}

// QuoteModelFromDomain converts a domain Quote aggregate to the persistence model
func QuoteModelFromDomain(q *quote.Quote) *QuoteModel {
	m := &QuoteModel{
		Number:      q.Number,
		ClientID:    q.ClientID,
		IssuedBy:    string(q.IssuedBy),
		Description: q.Description,
		TotalAmount: q.TotalAmount,
		Status:      string(q.Status),
		ValidUntil:  q.ValidUntil,
		SentAt:      q.SentAt,
		DecidedAt:   q.DecidedAt,
		Notes:       q.Notes,
	}
	m.FromDomainAggregateRoot(q.BaseAggregateRoot)
	return m
}
