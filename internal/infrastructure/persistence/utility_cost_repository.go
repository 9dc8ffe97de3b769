package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/gestionale/backend/internal/domain/costing"
	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormUtilityCostRepository implements costing.UtilityCostRepository using GORM
type GormUtilityCostRepository struct {
	db *gorm.DB
}

// NewGormUtilityCostRepository creates a new GormUtilityCostRepository
func NewGormUtilityCostRepository(db *gorm.DB) *GormUtilityCostRepository {
	return &GormUtilityCostRepository{db: db}
}

// FindByID finds a utility cost entry by its ID
func (r *GormUtilityCostRepository) FindByID(ctx context.Context, id uuid.UUID) (*costing.UtilityCost, error) {
	var model models.UtilityCostModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all utility cost entries matching the filter
func (r *GormUtilityCostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*costing.UtilityCost, error) {
	var costModels []models.UtilityCostModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.UtilityCostModel{}), filter)

	if err := query.Find(&costModels).Error; err != nil {
		return nil, err
	}

	return toDomainUtilityCosts(costModels), nil
}

// FindByCompany finds utility cost entries for a company
func (r *GormUtilityCostRepository) FindByCompany(ctx context.Context, company job.Company, filter shared.Filter) ([]*costing.UtilityCost, error) {
	var costModels []models.UtilityCostModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.UtilityCostModel{}).Where("company = ?", company),
		filter,
	)

	if err := query.Find(&costModels).Error; err != nil {
		return nil, err
	}

	return toDomainUtilityCosts(costModels), nil
}

// TotalByCompany sums utility costs whose billing period starts within the range
func (r *GormUtilityCostRepository) TotalByCompany(ctx context.Context, company job.Company, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.UtilityCostModel{}).
		Select("SUM(amount)").
		Where("company = ? AND period_start >= ? AND period_start < ?", company, from, to).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Save creates or updates a utility cost entry
func (r *GormUtilityCostRepository) Save(ctx context.Context, cost *costing.UtilityCost) error {
	model := models.UtilityCostModelFromDomain(cost)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a utility cost entry
func (r *GormUtilityCostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UtilityCostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainUtilityCosts(costModels []models.UtilityCostModel) []*costing.UtilityCost {
	costs := make([]*costing.UtilityCost, len(costModels))
	for i := range costModels {
		costs[i] = costModels[i].ToDomain()
	}
	return costs
}

// applyFilter applies filter options to the query
func (r *GormUtilityCostRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("notes LIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "company":
			query = query.Where("company = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		}
	}

	if filter.Paginate() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	query = applyOrder(query, filter, "period_start DESC", "period_start", "amount", "company", "created_at")

	return query
}

// Ensure GormUtilityCostRepository implements costing.UtilityCostRepository
var _ costing.UtilityCostRepository = (*GormUtilityCostRepository)(nil)
