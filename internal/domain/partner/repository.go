package partner

import (
	"context"

	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the persistence interface for clients
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Client, error)
	FindByStatus(ctx context.Context, status ClientStatus, filter shared.Filter) ([]*Client, error)
	SearchByName(ctx context.Context, name string, filter shared.Filter) ([]*Client, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository defines the persistence interface for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Supplier, error)
	FindByStatus(ctx context.Context, status SupplierStatus, filter shared.Filter) ([]*Supplier, error)
	SearchByName(ctx context.Context, name string, filter shared.Filter) ([]*Supplier, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}
