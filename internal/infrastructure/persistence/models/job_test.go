package models

import (
	"testing"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersistedJob(t *testing.T) *job.Job {
	t.Helper()
	invoicedBy := job.CompanyAlcafer
	j, err := job.NewJob(job.Record{
		Number:            "LAV-2026-007",
		Description:       "Ringhiera scala condominiale",
		TotalAmount:       decimal.NewFromInt(2000),
		DepositPercentage: decimal.NewFromInt(50),
		DepositAmount:     decimal.NewFromInt(1000),
		DepositRecipient:  job.DepositToAlcafer,
		DepositInvoicedBy: &invoicedBy,
		Status:            job.StatusPending,
	})
	require.NoError(t, err)
	return j
}

func TestJobModel_AdvanceFlattening(t *testing.T) {
	j := newPersistedJob(t)
	j.Advance = &job.Advance{
		Amount: decimal.NewFromInt(300),
		From:   job.CompanyGabifer,
		To:     job.CompanyAlcafer,
	}

	m := JobModelFromDomain(j)
	require.NotNil(t, m.AdvanceAmount)
	assert.Equal(t, "300", m.AdvanceAmount.String())
	assert.Equal(t, "gabifer", *m.AdvanceFrom)
	assert.Equal(t, "alcafer", *m.AdvanceTo)

	back := m.ToDomain()
	require.NotNil(t, back.Advance)
	assert.True(t, back.Advance.Amount.Equal(j.Advance.Amount))
	assert.Equal(t, job.CompanyGabifer, back.Advance.From)
	assert.Equal(t, job.CompanyAlcafer, back.Advance.To)
}

func TestJobModel_NoAdvanceStaysNil(t *testing.T) {
	j := newPersistedJob(t)

	m := JobModelFromDomain(j)
	assert.Nil(t, m.AdvanceAmount)
	assert.Nil(t, m.AdvanceFrom)
	assert.Nil(t, m.AdvanceTo)

	back := m.ToDomain()
	assert.Nil(t, back.Advance)
	require.NotNil(t, back.DepositInvoicedBy)
	assert.Equal(t, job.CompanyAlcafer, *back.DepositInvoicedBy)
}

func TestJobModel_DirectPaymentClearsInvoicedBy(t *testing.T) {
	j := newPersistedJob(t)
	j.DepositRecipient = job.DepositDirectToClient
	j.DepositInvoicedBy = nil

	m := JobModelFromDomain(j)
	assert.Nil(t, m.DepositInvoicedBy)

	back := m.ToDomain()
	assert.Nil(t, back.DepositInvoicedBy)
	assert.Equal(t, j.ID, back.ID)
	assert.Equal(t, j.Version, back.Version)
}
