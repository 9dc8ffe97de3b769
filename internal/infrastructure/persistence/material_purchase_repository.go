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

// GormMaterialPurchaseRepository implements costing.MaterialPurchaseRepository using GORM
type GormMaterialPurchaseRepository struct {
	db *gorm.DB
}

// NewGormMaterialPurchaseRepository creates a new GormMaterialPurchaseRepository
func NewGormMaterialPurchaseRepository(db *gorm.DB) *GormMaterialPurchaseRepository {
	return &GormMaterialPurchaseRepository{db: db}
}

// FindByID finds a material purchase by its ID
func (r *GormMaterialPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*costing.MaterialPurchase, error) {
	var model models.MaterialPurchaseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all material purchases matching the filter
func (r *GormMaterialPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*costing.MaterialPurchase, error) {
	var purchaseModels []models.MaterialPurchaseModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.MaterialPurchaseModel{}), filter)

	if err := query.Find(&purchaseModels).Error; err != nil {
		return nil, err
	}

	return toDomainPurchases(purchaseModels), nil
}

// FindByCompany finds material purchases for a company
func (r *GormMaterialPurchaseRepository) FindByCompany(ctx context.Context, company job.Company, filter shared.Filter) ([]*costing.MaterialPurchase, error) {
	var purchaseModels []models.MaterialPurchaseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.MaterialPurchaseModel{}).Where("company = ?", company),
		filter,
	)

	if err := query.Find(&purchaseModels).Error; err != nil {
		return nil, err
	}

	return toDomainPurchases(purchaseModels), nil
}

// FindByJob finds material purchases charged to a job
func (r *GormMaterialPurchaseRepository) FindByJob(ctx context.Context, jobID uuid.UUID) ([]*costing.MaterialPurchase, error) {
	var purchaseModels []models.MaterialPurchaseModel
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("purchased_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, err
	}

	return toDomainPurchases(purchaseModels), nil
}

// TotalByCompany sums material costs for a company over a period
func (r *GormMaterialPurchaseRepository) TotalByCompany(ctx context.Context, company job.Company, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.MaterialPurchaseModel{}).
		Select("SUM(total_cost)").
		Where("company = ? AND purchased_at >= ? AND purchased_at < ?", company, from, to).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Save creates or updates a material purchase
func (r *GormMaterialPurchaseRepository) Save(ctx context.Context, purchase *costing.MaterialPurchase) error {
	model := models.MaterialPurchaseModelFromDomain(purchase)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a material purchase
func (r *GormMaterialPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MaterialPurchaseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainPurchases(purchaseModels []models.MaterialPurchaseModel) []*costing.MaterialPurchase {
	purchases := make([]*costing.MaterialPurchase, len(purchaseModels))
	for i := range purchaseModels {
		purchases[i] = purchaseModels[i].ToDomain()
	}
	return purchases
}

// applyFilter applies filter options to the query
func (r *GormMaterialPurchaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("description LIKE ? OR invoice_number LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "company":
			query = query.Where("company = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "job_id":
			query = query.Where("job_id = ?", value)
		}
	}

	if filter.Paginate() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	query = applyOrder(query, filter, "purchased_at DESC", "purchased_at", "total_cost", "company", "created_at")

	return query
}

// Ensure GormMaterialPurchaseRepository implements costing.MaterialPurchaseRepository
var _ costing.MaterialPurchaseRepository = (*GormMaterialPurchaseRepository)(nil)
