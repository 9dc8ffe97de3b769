package job

import (
	"context"
	"errors"
	"testing"

	domjob "github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/gestionale/backend/internal/domain/quote"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockJobRepository is a mock implementation of job.Repository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domjob.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domjob.Job), args.Error(1)
}

func (m *MockJobRepository) FindByNumber(ctx context.Context, number string) (*domjob.Job, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domjob.Job), args.Error(1)
}

func (m *MockJobRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*domjob.Job, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domjob.Job), args.Error(1)
}

func (m *MockJobRepository) FindByStatus(ctx context.Context, status domjob.Status, filter shared.Filter) ([]*domjob.Job, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]*domjob.Job), args.Error(1)
}

func (m *MockJobRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) Save(ctx context.Context, j *domjob.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQuoteRepository is a mock implementation of quote.Repository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindByNumber(ctx context.Context, number string) (*quote.Quote, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*quote.Quote, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindByStatus(ctx context.Context, status quote.Status, filter shared.Filter) ([]*quote.Quote, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*quote.Quote, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClientRepository is a mock implementation of partner.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindByStatus(ctx context.Context, status partner.ClientStatus, filter shared.Filter) ([]*partner.Client, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]*partner.Client), args.Error(1)
}

func (m *MockClientRepository) SearchByName(ctx context.Context, name string, filter shared.Filter) ([]*partner.Client, error) {
	args := m.Called(ctx, name, filter)
	return args.Get(0).([]*partner.Client), args.Error(1)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, c *partner.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Test helpers
// =============================================================================

func newService() (*JobService, *MockJobRepository, *MockQuoteRepository, *MockClientRepository) {
	jobRepo := new(MockJobRepository)
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	return NewJobService(jobRepo, quoteRepo, clientRepo), jobRepo, quoteRepo, clientRepo
}

func validCreateRequest() CreateJobRequest {
	return CreateJobRequest{
		Number:            "LAV-2025-001",
		Description:       "Cancello scorrevole zincato",
		TotalAmount:       decimal.NewFromInt(2000),
		DepositPercentage: decimal.NewFromInt(50),
		DepositRecipient:  "alcafer",
		DepositInvoicedBy: "alcafer",
		Status:            "pending",
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestJobService_Create_Success(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()

	jobRepo.On("ExistsByNumber", ctx, "LAV-2025-001").Return(false, nil)
	jobRepo.On("Save", ctx, mock.AnythingOfType("*job.Job")).Return(nil)

	resp, err := svc.Create(ctx, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "LAV-2025-001", resp.Number)
	assert.Equal(t, "1000", resp.DepositAmount.String())
	assert.Equal(t, "alcafer", resp.DepositRecipient)
	assert.False(t, resp.DirectClientPayment)
	jobRepo.AssertExpectations(t)
}

func TestJobService_Create_ValidationErrors(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()

	req := validCreateRequest()
	req.Description = "  "
	req.TotalAmount = decimal.Zero

	_, err := svc.Create(ctx, req)

	require.Error(t, err)
	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "description required", validationErr.Errors["description"])
	assert.Equal(t, "amount must be greater than 0", validationErr.Errors["total_amount"])
	jobRepo.AssertNotCalled(t, "Save")
}

func TestJobService_Create_DuplicateNumber(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()

	jobRepo.On("ExistsByNumber", ctx, "LAV-2025-001").Return(true, nil)

	_, err := svc.Create(ctx, validCreateRequest())

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	jobRepo.AssertNotCalled(t, "Save")
}

func TestJobService_Create_QuoteMustBeAccepted(t *testing.T) {
	svc, jobRepo, quoteRepo, clientRepo := newService()
	ctx := context.Background()

	client, err := partner.NewClient("Rossi Costruzioni SRL")
	require.NoError(t, err)
	q, err := quote.NewQuote("PRE-2025-001", client.ID, domjob.CompanyAlcafer, "Cancello", decimal.NewFromInt(2000))
	require.NoError(t, err)
	// Still a draft: not accepted.

	req := validCreateRequest()
	req.ClientID = &client.ID
	req.QuoteID = &q.ID

	jobRepo.On("ExistsByNumber", ctx, "LAV-2025-001").Return(false, nil)
	clientRepo.On("FindByID", ctx, client.ID).Return(client, nil)
	quoteRepo.On("FindByID", ctx, q.ID).Return(q, nil)

	_, err = svc.Create(ctx, req)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "QUOTE_NOT_ACCEPTED", domainErr.Code)
	jobRepo.AssertNotCalled(t, "Save")
}

func TestJobService_Create_WithAcceptedQuote(t *testing.T) {
	svc, jobRepo, quoteRepo, clientRepo := newService()
	ctx := context.Background()

	client, err := partner.NewClient("Rossi Costruzioni SRL")
	require.NoError(t, err)
	q, err := quote.NewQuote("PRE-2025-001", client.ID, domjob.CompanyAlcafer, "Cancello", decimal.NewFromInt(2000))
	require.NoError(t, err)
	require.NoError(t, q.Send())
	require.NoError(t, q.Accept())

	req := validCreateRequest()
	req.ClientID = &client.ID
	req.QuoteID = &q.ID

	jobRepo.On("ExistsByNumber", ctx, "LAV-2025-001").Return(false, nil)
	clientRepo.On("FindByID", ctx, client.ID).Return(client, nil)
	quoteRepo.On("FindByID", ctx, q.ID).Return(q, nil)
	jobRepo.On("Save", ctx, mock.AnythingOfType("*job.Job")).Return(nil)

	resp, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, &q.ID, resp.QuoteID)
}

func TestJobService_Create_UnknownClient(t *testing.T) {
	svc, jobRepo, _, clientRepo := newService()
	ctx := context.Background()

	clientID := uuid.New()
	req := validCreateRequest()
	req.ClientID = &clientID

	jobRepo.On("ExistsByNumber", ctx, "LAV-2025-001").Return(false, nil)
	clientRepo.On("FindByID", ctx, clientID).Return(nil, shared.ErrNotFound)

	_, err := svc.Create(ctx, req)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CLIENT", domainErr.Code)
}

// =============================================================================
// Update Tests
// =============================================================================

func existingJob(t *testing.T) *domjob.Job {
	t.Helper()
	invoicedBy := domjob.CompanyAlcafer
	j, err := domjob.NewJob(domjob.Record{
		Number:            "LAV-2025-001",
		Description:       "Cancello scorrevole zincato",
		TotalAmount:       decimal.NewFromInt(2000),
		DepositPercentage: decimal.NewFromInt(50),
		DepositRecipient:  domjob.DepositToAlcafer,
		DepositInvoicedBy: &invoicedBy,
		Status:            domjob.StatusPending,
	})
	require.NoError(t, err)
	return j
}

func TestJobService_Update_IgnoresDepositPercentage(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()
	j := existingJob(t)

	req := UpdateJobRequest{
		Description:       "Cancello scorrevole zincato",
		TotalAmount:       decimal.NewFromInt(3000),
		DepositPercentage: decimal.NewFromInt(10), // must be ignored
		DepositRecipient:  "alcafer",
		DepositInvoicedBy: "alcafer",
		Status:            "in_production",
	}

	jobRepo.On("FindByID", ctx, j.ID).Return(j, nil)
	jobRepo.On("Save", ctx, j).Return(nil)

	resp, err := svc.Update(ctx, j.ID, req)

	require.NoError(t, err)
	assert.Equal(t, "50", resp.DepositPercentage.String())
	assert.Equal(t, "1500.00", resp.DepositAmount.StringFixed(2))
	assert.Equal(t, "in_production", resp.Status)
}

func TestJobService_Update_OutOfRangePercentageDoesNotFailValidation(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()
	j := existingJob(t)

	// The percentage is read-only on update, so a value that would never be
	// applied must not be able to reject the request either.
	req := UpdateJobRequest{
		Description:       "Cancello scorrevole zincato",
		TotalAmount:       decimal.NewFromInt(3000),
		DepositPercentage: decimal.NewFromInt(150),
		DepositRecipient:  "alcafer",
		DepositInvoicedBy: "alcafer",
		Status:            "pending",
	}

	jobRepo.On("FindByID", ctx, j.ID).Return(j, nil)
	jobRepo.On("Save", ctx, j).Return(nil)

	resp, err := svc.Update(ctx, j.ID, req)

	require.NoError(t, err)
	assert.Equal(t, "50", resp.DepositPercentage.String())
	assert.Equal(t, "1500.00", resp.DepositAmount.StringFixed(2))
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()
	id := uuid.New()

	jobRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(ctx, id, UpdateJobRequest{})

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

// =============================================================================
// Status / Get / List / Delete Tests
// =============================================================================

func TestJobService_UpdateStatus(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()
	j := existingJob(t)

	jobRepo.On("FindByID", ctx, j.ID).Return(j, nil)
	jobRepo.On("Save", ctx, j).Return(nil)

	resp, err := svc.UpdateStatus(ctx, j.ID, UpdateJobStatusRequest{Status: "completed"})

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestJobService_List_ByStatus(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()
	j := existingJob(t)

	jobRepo.On("FindByStatus", ctx, domjob.StatusPending, mock.AnythingOfType("shared.Filter")).
		Return([]*domjob.Job{j}, nil)
	jobRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	responses, total, err := svc.List(ctx, JobListFilter{Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, responses, 1)
	assert.Equal(t, "LAV-2025-001", responses[0].Number)
}

func TestJobService_Delete(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()
	j := existingJob(t)

	jobRepo.On("FindByID", ctx, j.ID).Return(j, nil)
	jobRepo.On("Delete", ctx, j.ID).Return(nil)

	require.NoError(t, svc.Delete(ctx, j.ID))
	jobRepo.AssertExpectations(t)
}

func TestJobService_Create_RepositoryFailure(t *testing.T) {
	svc, jobRepo, _, _ := newService()
	ctx := context.Background()

	jobRepo.On("ExistsByNumber", ctx, "LAV-2025-001").Return(false, nil)
	jobRepo.On("Save", ctx, mock.AnythingOfType("*job.Job")).Return(errors.New("connection refused"))

	_, err := svc.Create(ctx, validCreateRequest())

	assert.EqualError(t, err, "connection refused")
}
