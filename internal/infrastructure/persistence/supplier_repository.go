package persistence

import (
	"context"
	"errors"

	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Supplier, error) {
	var supplierModels []models.SupplierModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SupplierModel{}), filter)

	if err := query.Find(&supplierModels).Error; err != nil {
		return nil, err
	}

	return toDomainSuppliers(supplierModels), nil
}

// FindByStatus finds suppliers by status
func (r *GormSupplierRepository) FindByStatus(ctx context.Context, status partner.SupplierStatus, filter shared.Filter) ([]*partner.Supplier, error) {
	var supplierModels []models.SupplierModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.SupplierModel{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&supplierModels).Error; err != nil {
		return nil, err
	}

	return toDomainSuppliers(supplierModels), nil
}

// SearchByName finds suppliers whose name contains the given fragment
func (r *GormSupplierRepository) SearchByName(ctx context.Context, name string, filter shared.Filter) ([]*partner.Supplier, error) {
	var supplierModels []models.SupplierModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.SupplierModel{}).Where("name LIKE ?", "%"+name+"%"),
		filter,
	)

	if err := query.Find(&supplierModels).Error; err != nil {
		return nil, err
	}

	return toDomainSuppliers(supplierModels), nil
}

// Count counts suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.SupplierModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	model := models.SupplierModelFromDomain(supplier)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a supplier
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SupplierModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainSuppliers(supplierModels []models.SupplierModel) []*partner.Supplier {
	suppliers := make([]*partner.Supplier, len(supplierModels))
	for i := range supplierModels {
		suppliers[i] = supplierModels[i].ToDomain()
	}
	return suppliers
}

// applyFilter applies filter options to the query
func (r *GormSupplierRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Paginate() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	query = applyOrder(query, filter, "name ASC", "name", "city", "status", "created_at")

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormSupplierRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR vat_number LIKE ? OR email LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "payment_terms":
			query = query.Where("payment_terms = ?", value)
		case "city":
			query = query.Where("city = ?", value)
		}
	}

	return query
}

// Ensure GormSupplierRepository implements partner.SupplierRepository
var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
