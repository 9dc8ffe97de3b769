package quote

import (
	"testing"
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T) *Quote {
	t.Helper()
	q, err := NewQuote("PRE-2025-001", uuid.New(), job.CompanyAlcafer, "Recinzione industriale", decimal.NewFromInt(4500))
	require.NoError(t, err)
	return q
}

func TestNewQuote(t *testing.T) {
	q := newDraft(t)

	assert.Equal(t, StatusDraft, q.Status)
	assert.Equal(t, "PRE-2025-001", q.Number)
	assert.Equal(t, job.CompanyAlcafer, q.IssuedBy)
	assert.Nil(t, q.SentAt)
	assert.False(t, q.IsAccepted())
}

func TestNewQuote_Invalid(t *testing.T) {
	clientID := uuid.New()

	tests := []struct {
		name        string
		number      string
		clientID    uuid.UUID
		issuedBy    job.Company
		description string
		total       decimal.Decimal
		errCode     string
	}{
		{"empty number", " ", clientID, job.CompanyAlcafer, "desc", decimal.NewFromInt(10), "INVALID_NUMBER"},
		{"nil client", "PRE-1", uuid.Nil, job.CompanyAlcafer, "desc", decimal.NewFromInt(10), "INVALID_CLIENT"},
		{"bad company", "PRE-1", clientID, job.Company("acme"), "desc", decimal.NewFromInt(10), "INVALID_COMPANY"},
		{"empty description", "PRE-1", clientID, job.CompanyGabifer, "  ", decimal.NewFromInt(10), "INVALID_DESCRIPTION"},
		{"zero total", "PRE-1", clientID, job.CompanyGabifer, "desc", decimal.Zero, "INVALID_AMOUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuote(tt.number, tt.clientID, tt.issuedBy, tt.description, tt.total)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.errCode, domainErr.Code)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusDraft, StatusAccepted, false},
		{StatusDraft, StatusRejected, false},
		{StatusSent, StatusAccepted, true},
		{StatusSent, StatusRejected, true},
		{StatusSent, StatusDraft, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusSent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestQuote_Lifecycle(t *testing.T) {
	q := newDraft(t)

	require.NoError(t, q.Send())
	assert.Equal(t, StatusSent, q.Status)
	require.NotNil(t, q.SentAt)

	require.NoError(t, q.Accept())
	assert.True(t, q.IsAccepted())
	require.NotNil(t, q.DecidedAt)

	// Terminal state: no further transitions.
	assert.Error(t, q.Reject())
	assert.Error(t, q.Send())
}

func TestQuote_RejectFromSent(t *testing.T) {
	q := newDraft(t)
	require.NoError(t, q.Send())

	require.NoError(t, q.Reject())
	assert.Equal(t, StatusRejected, q.Status)
	assert.Error(t, q.Accept())
}

func TestQuote_AcceptRequiresSend(t *testing.T) {
	q := newDraft(t)

	err := q.Accept()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestQuote_AcceptExpired(t *testing.T) {
	q := newDraft(t)
	past := time.Now().Add(-24 * time.Hour)
	q.ValidUntil = &past
	require.NoError(t, q.Send())

	err := q.Accept()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "QUOTE_EXPIRED", domainErr.Code)
}

func TestQuote_UpdateDetails(t *testing.T) {
	q := newDraft(t)
	until := time.Now().Add(30 * 24 * time.Hour)

	require.NoError(t, q.UpdateDetails("Recinzione con cancello", decimal.NewFromInt(5200), &until))
	assert.Equal(t, "Recinzione con cancello", q.Description)
	assert.Equal(t, "5200.00", q.GetTotalAmountMoney().StringFixed(2))

	require.NoError(t, q.Send())
	err := q.UpdateDetails("too late", decimal.NewFromInt(1), nil)
	require.Error(t, err)
}

func TestQuote_MutationsBumpVersion(t *testing.T) {
	q := newDraft(t)
	require.Equal(t, 1, q.Version)

	require.NoError(t, q.UpdateDetails("Recinzione con cancello", decimal.NewFromInt(5200), nil))
	assert.Equal(t, 2, q.Version)

	require.NoError(t, q.Send())
	assert.Equal(t, 3, q.Version)

	require.NoError(t, q.Accept())
	assert.Equal(t, 4, q.Version)

	// A rejected transition must not bump the version.
	require.Error(t, q.Reject())
	assert.Equal(t, 4, q.Version)
}
