package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	jobapp "github.com/gestionale/backend/internal/application/job"
	domjob "github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/gestionale/backend/internal/domain/quote"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJobRepository implements job.Repository for testing
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

// MockQuoteRepository implements quote.Repository for testing
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

// MockClientRepository implements partner.ClientRepository for testing
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

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Test setup helpers

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupJobHandler(jobRepo *MockJobRepository, quoteRepo *MockQuoteRepository, clientRepo *MockClientRepository) *JobHandler {
	jobService := jobapp.NewJobService(jobRepo, quoteRepo, clientRepo)
	return NewJobHandler(jobService)
}

func createTestJob(t *testing.T) *domjob.Job {
	t.Helper()
	invoicedBy := domjob.CompanyAlcafer
	j, err := domjob.NewJob(domjob.Record{
		Number:            "LAV-2026-042",
		Description:       "Cancello carrabile",
		TotalAmount:       decimal.NewFromInt(5000),
		DepositPercentage: decimal.NewFromInt(30),
		DepositRecipient:  domjob.DepositToAlcafer,
		DepositInvoicedBy: &invoicedBy,
		Status:            domjob.StatusPending,
	})
	require.NoError(t, err)
	return j
}

func validCreateJobBody() jobapp.CreateJobRequest {
	return jobapp.CreateJobRequest{
		Number:            "LAV-2026-042",
		Description:       "Cancello carrabile",
		TotalAmount:       decimal.NewFromInt(5000),
		DepositPercentage: decimal.NewFromInt(30),
		DepositRecipient:  "alcafer",
		DepositInvoicedBy: "alcafer",
		Status:            "pending",
	}
}

// Tests

func TestJobHandler_Create_Success(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	jobRepo.On("ExistsByNumber", mock.Anything, "LAV-2026-042").Return(false, nil)
	jobRepo.On("Save", mock.Anything, mock.AnythingOfType("*job.Job")).Return(nil)

	router := setupTestRouter()
	router.POST("/jobs", handler.Create)

	body, _ := json.Marshal(validCreateJobBody())
	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "LAV-2026-042", data["number"])
	assert.Equal(t, "1500", data["deposit_amount"])
	jobRepo.AssertExpectations(t)
}

func TestJobHandler_Create_DuplicateNumber(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	jobRepo.On("ExistsByNumber", mock.Anything, "LAV-2026-042").Return(true, nil)

	router := setupTestRouter()
	router.POST("/jobs", handler.Create)

	body, _ := json.Marshal(validCreateJobBody())
	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	jobRepo.AssertExpectations(t)
}

func TestJobHandler_Create_ValidationFailure(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	router := setupTestRouter()
	router.POST("/jobs", handler.Create)

	reqBody := validCreateJobBody()
	reqBody.TotalAmount = decimal.Zero
	reqBody.DepositPercentage = decimal.NewFromInt(150)
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Fields, "total_amount")
	assert.Contains(t, resp.Error.Fields, "deposit_percentage")
	jobRepo.AssertNotCalled(t, "Save")
}

func TestJobHandler_Create_RejectedQuoteLink(t *testing.T) {
	jobRepo := new(MockJobRepository)
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	handler := setupJobHandler(jobRepo, quoteRepo, clientRepo)

	quoteID := uuid.New()
	q := createTestQuote(t)
	require.NoError(t, q.Send())
	require.NoError(t, q.Reject())

	jobRepo.On("ExistsByNumber", mock.Anything, "LAV-2026-042").Return(false, nil)
	quoteRepo.On("FindByID", mock.Anything, quoteID).Return(q, nil)

	router := setupTestRouter()
	router.POST("/jobs", handler.Create)

	reqBody := validCreateJobBody()
	reqBody.QuoteID = &quoteID
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "QUOTE_NOT_ACCEPTED", resp.Error.Code)
	jobRepo.AssertNotCalled(t, "Save")
}

func TestJobHandler_Create_InvalidJSON(t *testing.T) {
	handler := setupJobHandler(new(MockJobRepository), new(MockQuoteRepository), new(MockClientRepository))

	router := setupTestRouter()
	router.POST("/jobs", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobHandler_Get_Success(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	j := createTestJob(t)
	jobRepo.On("FindByID", mock.Anything, j.ID).Return(j, nil)

	router := setupTestRouter()
	router.GET("/jobs/:id", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+j.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	jobRepo.AssertExpectations(t)
}

func TestJobHandler_Get_NotFound(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	jobID := uuid.New()
	jobRepo.On("FindByID", mock.Anything, jobID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.GET("/jobs/:id", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+jobID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobHandler_Get_InvalidID(t *testing.T) {
	handler := setupJobHandler(new(MockJobRepository), new(MockQuoteRepository), new(MockClientRepository))

	router := setupTestRouter()
	router.GET("/jobs/:id", handler.Get)

	req := httptest.NewRequest(http.MethodGet, "/jobs/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobHandler_GetByNumber_Success(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	j := createTestJob(t)
	jobRepo.On("FindByNumber", mock.Anything, "LAV-2026-042").Return(j, nil)

	router := setupTestRouter()
	router.GET("/jobs/by-number/:number", handler.GetByNumber)

	req := httptest.NewRequest(http.MethodGet, "/jobs/by-number/LAV-2026-042", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	jobRepo.AssertExpectations(t)
}

func TestJobHandler_UpdateStatus_Success(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	j := createTestJob(t)
	jobRepo.On("FindByID", mock.Anything, j.ID).Return(j, nil)
	jobRepo.On("Save", mock.Anything, mock.AnythingOfType("*job.Job")).Return(nil)

	router := setupTestRouter()
	router.PATCH("/jobs/:id/status", handler.UpdateStatus)

	body, _ := json.Marshal(jobapp.UpdateJobStatusRequest{Status: "in_production"})
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+j.ID.String()+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "in_production", data["status"])
	jobRepo.AssertExpectations(t)
}

func TestJobHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	router := setupTestRouter()
	router.PATCH("/jobs/:id/status", handler.UpdateStatus)

	body := []byte(`{"status":"archived"}`)
	req := httptest.NewRequest(http.MethodPatch, "/jobs/"+uuid.New().String()+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	jobRepo.AssertNotCalled(t, "FindByID")
}

func TestJobHandler_List_Success(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	j := createTestJob(t)
	jobRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return([]*domjob.Job{j}, nil)
	jobRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return(int64(1), nil)

	router := setupTestRouter()
	router.GET("/jobs", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/jobs?page=1&page_size=10", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.PageSize)
	jobRepo.AssertExpectations(t)
}

func TestJobHandler_List_FiltersByStatus(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	jobRepo.On("FindByStatus", mock.Anything, domjob.StatusCompleted, mock.AnythingOfType("shared.Filter")).
		Return([]*domjob.Job{}, nil)
	jobRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return(int64(0), nil)

	router := setupTestRouter()
	router.GET("/jobs", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/jobs?status=completed", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	jobRepo.AssertExpectations(t)
	jobRepo.AssertNotCalled(t, "FindAll")
}

func TestJobHandler_Delete_Success(t *testing.T) {
	jobRepo := new(MockJobRepository)
	handler := setupJobHandler(jobRepo, new(MockQuoteRepository), new(MockClientRepository))

	j := createTestJob(t)
	jobRepo.On("FindByID", mock.Anything, j.ID).Return(j, nil)
	jobRepo.On("Delete", mock.Anything, j.ID).Return(nil)

	router := setupTestRouter()
	router.DELETE("/jobs/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/jobs/"+j.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	jobRepo.AssertExpectations(t)
}
