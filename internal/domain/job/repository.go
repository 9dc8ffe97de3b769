package job

import (
	"context"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the persistence contract for jobs
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Job, error)
	FindByNumber(ctx context.Context, number string) (*Job, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Job, error)
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]*Job, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}
