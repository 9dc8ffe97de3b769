package persistence

import (
	"context"
	"errors"

	"github.com/gestionale/backend/internal/domain/quote"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuoteRepository implements quote.Repository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// FindByID finds a quote by its ID
func (r *GormQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a quote by its unique number
func (r *GormQuoteRepository) FindByNumber(ctx context.Context, number string) (*quote.Quote, error) {
	var model models.QuoteModel
	if err := r.db.WithContext(ctx).First(&model, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all quotes matching the filter
func (r *GormQuoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*quote.Quote, error) {
	var quoteModels []models.QuoteModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.QuoteModel{}), filter)

	if err := query.Find(&quoteModels).Error; err != nil {
		return nil, err
	}

	return toDomainQuotes(quoteModels), nil
}

// FindByStatus finds quotes by status
func (r *GormQuoteRepository) FindByStatus(ctx context.Context, status quote.Status, filter shared.Filter) ([]*quote.Quote, error) {
	var quoteModels []models.QuoteModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.QuoteModel{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&quoteModels).Error; err != nil {
		return nil, err
	}

	return toDomainQuotes(quoteModels), nil
}

// FindByClient finds all quotes issued to a client
func (r *GormQuoteRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*quote.Quote, error) {
	var quoteModels []models.QuoteModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&quoteModels).Error; err != nil {
		return nil, err
	}

	return toDomainQuotes(quoteModels), nil
}

// ExistsByNumber checks if a quote with the given number exists
func (r *GormQuoteRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.QuoteModel{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts quotes matching the filter
func (r *GormQuoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.QuoteModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a quote
func (r *GormQuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	model := models.QuoteModelFromDomain(q)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a quote
func (r *GormQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.QuoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainQuotes(quoteModels []models.QuoteModel) []*quote.Quote {
	quotes := make([]*quote.Quote, len(quoteModels))
	for i := range quoteModels {
		quotes[i] = quoteModels[i].ToDomain()
	}
	return quotes
}

// applyFilter applies filter options to the query
func (r *GormQuoteRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Paginate() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	query = applyOrder(query, filter, "created_at DESC", "number", "total_amount", "status", "sent_at", "created_at")

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormQuoteRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("number LIKE ? OR description LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "issued_by":
			query = query.Where("issued_by = ?", value)
		}
	}

	return query
}

// Ensure GormQuoteRepository implements quote.Repository
var _ quote.Repository = (*GormQuoteRepository)(nil)
