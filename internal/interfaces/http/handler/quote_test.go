package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	quoteapp "github.com/gestionale/backend/internal/application/quote"
	domjob "github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/gestionale/backend/internal/domain/quote"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupQuoteHandler(quoteRepo *MockQuoteRepository, clientRepo *MockClientRepository) *QuoteHandler {
	quoteService := quoteapp.NewQuoteService(quoteRepo, clientRepo, nil)
	return NewQuoteHandler(quoteService)
}

func createTestQuote(t *testing.T) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote("PRV-2026-007", uuid.New(), domjob.CompanyGabifer,
		"Scala in acciaio inox", decimal.NewFromInt(3200))
	require.NoError(t, err)
	return q
}

func createTestClient(t *testing.T) *partner.Client {
	t.Helper()
	c, err := partner.NewClient("Rossi Costruzioni SRL")
	require.NoError(t, err)
	return c
}

func TestQuoteHandler_Create_Success(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	handler := setupQuoteHandler(quoteRepo, clientRepo)

	client := createTestClient(t)

	quoteRepo.On("ExistsByNumber", mock.Anything, "PRV-2026-007").Return(false, nil)
	clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	quoteRepo.On("Save", mock.Anything, mock.AnythingOfType("*quote.Quote")).Return(nil)

	router := setupTestRouter()
	router.POST("/quotes", handler.Create)

	reqBody := quoteapp.CreateQuoteRequest{
		Number:      "PRV-2026-007",
		ClientID:    client.ID,
		IssuedBy:    "gabifer",
		Description: "Scala in acciaio inox",
		TotalAmount: decimal.NewFromInt(3200),
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "draft", data["status"])
	quoteRepo.AssertExpectations(t)
}

func TestQuoteHandler_Create_UnknownClient(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	clientRepo := new(MockClientRepository)
	handler := setupQuoteHandler(quoteRepo, clientRepo)

	clientID := uuid.New()
	quoteRepo.On("ExistsByNumber", mock.Anything, "PRV-2026-007").Return(false, nil)
	clientRepo.On("FindByID", mock.Anything, clientID).Return(nil, shared.ErrNotFound)

	router := setupTestRouter()
	router.POST("/quotes", handler.Create)

	reqBody := quoteapp.CreateQuoteRequest{
		Number:      "PRV-2026-007",
		ClientID:    clientID,
		IssuedBy:    "gabifer",
		Description: "Scala in acciaio inox",
		TotalAmount: decimal.NewFromInt(3200),
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CLIENT", resp.Error.Code)
	quoteRepo.AssertNotCalled(t, "Save")
}

func TestQuoteHandler_Accept_Success(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	handler := setupQuoteHandler(quoteRepo, new(MockClientRepository))

	q := createTestQuote(t)
	require.NoError(t, q.Send())

	quoteRepo.On("FindByID", mock.Anything, q.ID).Return(q, nil)
	quoteRepo.On("Save", mock.Anything, mock.AnythingOfType("*quote.Quote")).Return(nil)

	router := setupTestRouter()
	router.POST("/quotes/:id/accept", handler.Accept)

	req := httptest.NewRequest(http.MethodPost, "/quotes/"+q.ID.String()+"/accept", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "accepted", data["status"])
	quoteRepo.AssertExpectations(t)
}

func TestQuoteHandler_Accept_FromDraft(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	handler := setupQuoteHandler(quoteRepo, new(MockClientRepository))

	q := createTestQuote(t)

	quoteRepo.On("FindByID", mock.Anything, q.ID).Return(q, nil)

	router := setupTestRouter()
	router.POST("/quotes/:id/accept", handler.Accept)

	req := httptest.NewRequest(http.MethodPost, "/quotes/"+q.ID.String()+"/accept", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	quoteRepo.AssertNotCalled(t, "Save")
}

func TestQuoteHandler_ListAccepted(t *testing.T) {
	quoteRepo := new(MockQuoteRepository)
	handler := setupQuoteHandler(quoteRepo, new(MockClientRepository))

	q := createTestQuote(t)
	require.NoError(t, q.Send())
	require.NoError(t, q.Accept())

	quoteRepo.On("FindByStatus", mock.Anything, quote.StatusAccepted, mock.AnythingOfType("shared.Filter")).
		Return([]*quote.Quote{q}, nil)
	quoteRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return(int64(1), nil)

	router := setupTestRouter()
	router.GET("/quotes/accepted", handler.ListAccepted)

	req := httptest.NewRequest(http.MethodGet, "/quotes/accepted", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	quoteRepo.AssertExpectations(t)
}

func TestQuoteHandler_ListByClient_InvalidID(t *testing.T) {
	handler := setupQuoteHandler(new(MockQuoteRepository), new(MockClientRepository))

	router := setupTestRouter()
	router.GET("/quotes/by-client/:clientId", handler.ListByClient)

	req := httptest.NewRequest(http.MethodGet, "/quotes/by-client/nope", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
