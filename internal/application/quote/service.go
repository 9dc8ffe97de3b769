package quote

import (
	"context"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/gestionale/backend/internal/domain/quote"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Cache is a read-through cache for quote lookups. Get returns nil with no
// error on a miss; cache failures must never fail the request.
type Cache interface {
	Get(ctx context.Context, id uuid.UUID) (*QuoteResponse, error)
	Set(ctx context.Context, resp QuoteResponse) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// QuoteService handles quote-related business operations
type QuoteService struct {
	quoteRepo  quote.Repository
	clientRepo partner.ClientRepository
	cache      Cache
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quoteRepo quote.Repository, clientRepo partner.ClientRepository, cache Cache) *QuoteService {
	return &QuoteService{
		quoteRepo:  quoteRepo,
		clientRepo: clientRepo,
		cache:      cache,
	}
}

// Create creates a new draft quote
func (s *QuoteService) Create(ctx context.Context, req CreateQuoteRequest) (*QuoteResponse, error) {
	exists, err := s.quoteRepo.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Quote with this number already exists")
	}

	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Linked client does not exist")
	}

	q, err := quote.NewQuote(req.Number, req.ClientID, job.Company(req.IssuedBy), req.Description, req.TotalAmount)
	if err != nil {
		return nil, err
	}
	q.ValidUntil = req.ValidUntil

	if err := s.quoteRepo.Save(ctx, q); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(q)
	return &response, nil
}

// Update edits a draft quote
func (s *QuoteService) Update(ctx context.Context, quoteID uuid.UUID, req UpdateQuoteRequest) (*QuoteResponse, error) {
	q, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if err := q.UpdateDetails(req.Description, req.TotalAmount, req.ValidUntil); err != nil {
		return nil, err
	}

	if err := s.quoteRepo.Save(ctx, q); err != nil {
		return nil, err
	}
	s.refreshCache(ctx, q)

	response := ToQuoteResponse(q)
	return &response, nil
}

// Send marks the quote as sent to the client
func (s *QuoteService) Send(ctx context.Context, quoteID uuid.UUID) (*QuoteResponse, error) {
	return s.transition(ctx, quoteID, (*quote.Quote).Send)
}

// Accept marks the quote as accepted by the client
func (s *QuoteService) Accept(ctx context.Context, quoteID uuid.UUID) (*QuoteResponse, error) {
	return s.transition(ctx, quoteID, (*quote.Quote).Accept)
}

// Reject marks the quote as rejected by the client
func (s *QuoteService) Reject(ctx context.Context, quoteID uuid.UUID) (*QuoteResponse, error) {
	return s.transition(ctx, quoteID, (*quote.Quote).Reject)
}

func (s *QuoteService) transition(ctx context.Context, quoteID uuid.UUID, apply func(*quote.Quote) error) (*QuoteResponse, error) {
	q, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if err := apply(q); err != nil {
		return nil, err
	}

	if err := s.quoteRepo.Save(ctx, q); err != nil {
		return nil, err
	}
	s.refreshCache(ctx, q)

	response := ToQuoteResponse(q)
	return &response, nil
}

// GetByID retrieves a quote, consulting the cache first
func (s *QuoteService) GetByID(ctx context.Context, quoteID uuid.UUID) (*QuoteResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, quoteID); err == nil && cached != nil {
			return cached, nil
		}
	}

	q, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(q)
	if s.cache != nil {
		_ = s.cache.Set(ctx, response)
	}
	return &response, nil
}

// List retrieves quotes with filtering and pagination
func (s *QuoteService) List(ctx context.Context, filter QuoteListFilter) ([]QuoteResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search

	var (
		quotes []*quote.Quote
		err    error
	)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
		quotes, err = s.quoteRepo.FindByStatus(ctx, quote.Status(filter.Status), domainFilter)
	} else {
		quotes, err = s.quoteRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.quoteRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToQuoteResponses(quotes), total, nil
}

// ListByClient retrieves every quote issued to one client
func (s *QuoteService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]QuoteResponse, error) {
	quotes, err := s.quoteRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return ToQuoteResponses(quotes), nil
}

// Delete removes a quote. Accepted quotes cannot be deleted because jobs may
// reference them.
func (s *QuoteService) Delete(ctx context.Context, quoteID uuid.UUID) error {
	q, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if q.IsAccepted() {
		return shared.NewDomainError("INVALID_STATE", "Accepted quotes cannot be deleted")
	}

	if err := s.quoteRepo.Delete(ctx, quoteID); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, quoteID)
	}
	return nil
}

func (s *QuoteService) refreshCache(ctx context.Context, q *quote.Quote) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, ToQuoteResponse(q))
}
