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

// GormClientRepository implements partner.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	return toDomainClients(clientModels), nil
}

// FindByStatus finds clients by status
func (r *GormClientRepository) FindByStatus(ctx context.Context, status partner.ClientStatus, filter shared.Filter) ([]*partner.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	return toDomainClients(clientModels), nil
}

// SearchByName finds clients whose name contains the given fragment
func (r *GormClientRepository) SearchByName(ctx context.Context, name string, filter shared.Filter) ([]*partner.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("name LIKE ?", "%"+name+"%"),
		filter,
	)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	return toDomainClients(clientModels), nil
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	model := models.ClientModelFromDomain(client)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a client
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainClients(clientModels []models.ClientModel) []*partner.Client {
	clients := make([]*partner.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientModels[i].ToDomain()
	}
	return clients
}

// applyFilter applies filter options to the query
func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Paginate() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	query = applyOrder(query, filter, "name ASC", "name", "city", "status", "created_at")

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormClientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR vat_number LIKE ? OR email LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "city":
			query = query.Where("city = ?", value)
		case "province":
			query = query.Where("province = ?", value)
		}
	}

	return query
}

// Ensure GormClientRepository implements partner.ClientRepository
var _ partner.ClientRepository = (*GormClientRepository)(nil)
