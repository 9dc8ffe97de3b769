package quote

import (
	"context"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the persistence interface for quotes
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)
	FindByNumber(ctx context.Context, number string) (*Quote, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Quote, error)
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]*Quote, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*Quote, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, quote *Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
}
