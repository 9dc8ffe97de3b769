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

// GormLaborCostRepository implements costing.LaborCostRepository using GORM
type GormLaborCostRepository struct {
	db *gorm.DB
}

// NewGormLaborCostRepository creates a new GormLaborCostRepository
func NewGormLaborCostRepository(db *gorm.DB) *GormLaborCostRepository {
	return &GormLaborCostRepository{db: db}
}

// FindByID finds a labor cost entry by its ID
func (r *GormLaborCostRepository) FindByID(ctx context.Context, id uuid.UUID) (*costing.LaborCost, error) {
	var model models.LaborCostModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all labor cost entries matching the filter
func (r *GormLaborCostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*costing.LaborCost, error) {
	var costModels []models.LaborCostModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.LaborCostModel{}), filter)

	if err := query.Find(&costModels).Error; err != nil {
		return nil, err
	}

	return toDomainLaborCosts(costModels), nil
}

// FindByCompany finds labor cost entries for a company
func (r *GormLaborCostRepository) FindByCompany(ctx context.Context, company job.Company, filter shared.Filter) ([]*costing.LaborCost, error) {
	var costModels []models.LaborCostModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.LaborCostModel{}).Where("company = ?", company),
		filter,
	)

	if err := query.Find(&costModels).Error; err != nil {
		return nil, err
	}

	return toDomainLaborCosts(costModels), nil
}

// FindByJob finds labor cost entries charged to a job
func (r *GormLaborCostRepository) FindByJob(ctx context.Context, jobID uuid.UUID) ([]*costing.LaborCost, error) {
	var costModels []models.LaborCostModel
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("worked_on DESC").
		Find(&costModels).Error; err != nil {
		return nil, err
	}

	return toDomainLaborCosts(costModels), nil
}

// TotalByCompany sums labor costs for a company over a period
func (r *GormLaborCostRepository) TotalByCompany(ctx context.Context, company job.Company, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.LaborCostModel{}).
		Select("SUM(total_cost)").
		Where("company = ? AND worked_on >= ? AND worked_on < ?", company, from, to).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Save creates or updates a labor cost entry
func (r *GormLaborCostRepository) Save(ctx context.Context, cost *costing.LaborCost) error {
	model := models.LaborCostModelFromDomain(cost)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a labor cost entry
func (r *GormLaborCostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LaborCostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainLaborCosts(costModels []models.LaborCostModel) []*costing.LaborCost {
	costs := make([]*costing.LaborCost, len(costModels))
	for i := range costModels {
		costs[i] = costModels[i].ToDomain()
	}
	return costs
}

// applyFilter applies filter options to the query
func (r *GormLaborCostRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("description LIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "company":
			query = query.Where("company = ?", value)
		case "job_id":
			query = query.Where("job_id = ?", value)
		}
	}

	if filter.Paginate() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	query = applyOrder(query, filter, "worked_on DESC", "worked_on", "total_cost", "company", "created_at")

	return query
}

// Ensure GormLaborCostRepository implements costing.LaborCostRepository
var _ costing.LaborCostRepository = (*GormLaborCostRepository)(nil)
