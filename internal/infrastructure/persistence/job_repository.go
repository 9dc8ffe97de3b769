package persistence

import (
	"context"
	"errors"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/gestionale/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJobRepository implements job.Repository using GORM
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GormJobRepository
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// FindByID finds a job by its ID
func (r *GormJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	var model models.JobModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a job by its unique number
func (r *GormJobRepository) FindByNumber(ctx context.Context, number string) (*job.Job, error) {
	var model models.JobModel
	if err := r.db.WithContext(ctx).First(&model, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all jobs matching the filter
func (r *GormJobRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*job.Job, error) {
	var jobModels []models.JobModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.JobModel{}), filter)

	if err := query.Find(&jobModels).Error; err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, len(jobModels))
	for i, model := range jobModels {
		jobs[i] = model.ToDomain()
	}
	return jobs, nil
}

// FindByStatus finds jobs by status
func (r *GormJobRepository) FindByStatus(ctx context.Context, status job.Status, filter shared.Filter) ([]*job.Job, error) {
	var jobModels []models.JobModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.JobModel{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&jobModels).Error; err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, len(jobModels))
	for i, model := range jobModels {
		jobs[i] = model.ToDomain()
	}
	return jobs, nil
}

// ExistsByNumber checks if a job with the given number exists
func (r *GormJobRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.JobModel{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts jobs matching the filter
func (r *GormJobRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.JobModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a job
func (r *GormJobRepository) Save(ctx context.Context, j *job.Job) error {
	model := models.JobModelFromDomain(j)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a job
func (r *GormJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.JobModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormJobRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Paginate() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	query = applyOrder(query, filter, "created_at DESC", "number", "total_amount", "deposit_amount", "status", "start_date", "created_at")

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormJobRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		case "quote_id":
			query = query.Where("quote_id = ?", value)
		case "deposit_recipient":
			query = query.Where("deposit_recipient = ?", value)
		case "has_advance":
			if value == true {
				query = query.Where("advance_amount IS NOT NULL")
			} else {
				query = query.Where("advance_amount IS NULL")
			}
		}
	}

	return query
}

// Ensure GormJobRepository implements job.Repository
var _ job.Repository = (*GormJobRepository)(nil)
