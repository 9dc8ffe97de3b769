package models

import (
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobModel is the persistence mapping for the Job aggregate. The optional
// inter-company advance is flattened into nullable columns.
type JobModel struct {
	AggregateModel
	Number            string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description       string           `gorm:"type:text;not null"`
	ClientID          *uuid.UUID       `gorm:"type:uuid;index"`
	QuoteID           *uuid.UUID       `gorm:"type:uuid;index"`
	TotalAmount       decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	DepositPercentage decimal.Decimal  `gorm:"type:decimal(5,2);not null"`
	DepositAmount     decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	DepositRecipient  string           `gorm:"type:varchar(20);not null"`
	DepositInvoicedBy *string          `gorm:"type:varchar(20)"`
	AdvanceAmount     *decimal.Decimal `gorm:"type:decimal(18,2)"`
	AdvanceFrom       *string          `gorm:"type:varchar(20)"`
	AdvanceTo         *string          `gorm:"type:varchar(20)"`
	Status            string           `gorm:"type:varchar(20);not null;index"`
	StartDate         *time.Time
	EndDate           *time.Time
	Notes             *string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (JobModel) TableName() string {
	return "jobs"
}

// ToDomain converts the persistence model to a domain Job aggregate
func (m *JobModel) ToDomain() *job.Job {
	j := &job.Job{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Number:            m.Number,
		Description:       m.Description,
		ClientID:          m.ClientID,
		QuoteID:           m.QuoteID,
		TotalAmount:       m.TotalAmount,
		DepositPercentage: m.DepositPercentage,
		DepositAmount:     m.DepositAmount,
		DepositRecipient:  job.DepositRecipient(m.DepositRecipient),
		Status:            job.Status(m.Status),
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Notes:             m.Notes,
	}

	if m.DepositInvoicedBy != nil {
		company := job.Company(*m.DepositInvoicedBy)
		j.DepositInvoicedBy = &company
	}

	if m.AdvanceAmount != nil && m.AdvanceFrom != nil && m.AdvanceTo != nil {
		j.Advance = &job.Advance{
			Amount: *m.AdvanceAmount,
			From:   job.Company(*m.AdvanceFrom),
			To:     job.Company(*m.AdvanceTo),
		}
	}

	return j
}

// JobModelFromDomain converts a domain Job aggregate to the persistence model
func JobModelFromDomain(j *job.Job) *JobModel {
	m := &JobModel{
		Number:            j.Number,
		Description:       j.Description,
		ClientID:          j.ClientID,
		QuoteID:           j.QuoteID,
		TotalAmount:       j.TotalAmount,
		DepositPercentage: j.DepositPercentage,
		DepositAmount:     j.DepositAmount,
		DepositRecipient:  string(j.DepositRecipient),
		Status:            string(j.Status),
		StartDate:         j.StartDate,
		EndDate:           j.EndDate,
		Notes:             j.Notes,
	}
	m.FromDomainAggregateRoot(j.BaseAggregateRoot)

	if j.DepositInvoicedBy != nil {
		company := string(*j.DepositInvoicedBy)
		m.DepositInvoicedBy = &company
	}

	if j.Advance != nil {
		amount := j.Advance.Amount
		from := string(j.Advance.From)
		to := string(j.Advance.To)
		m.AdvanceAmount = &amount
		m.AdvanceFrom = &from
		m.AdvanceTo = &to
	}

	return m
}
