package costing

import (
	"context"
	"time"

	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialPurchaseRepository defines the persistence interface for material purchases
type MaterialPurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MaterialPurchase, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*MaterialPurchase, error)
	FindByCompany(ctx context.Context, company job.Company, filter shared.Filter) ([]*MaterialPurchase, error)
	FindByJob(ctx context.Context, jobID uuid.UUID) ([]*MaterialPurchase, error)
	TotalByCompany(ctx context.Context, company job.Company, from, to time.Time) (decimal.Decimal, error)
	Save(ctx context.Context, purchase *MaterialPurchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LaborCostRepository defines the persistence interface for labor costs
type LaborCostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LaborCost, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*LaborCost, error)
	FindByCompany(ctx context.Context, company job.Company, filter shared.Filter) ([]*LaborCost, error)
	FindByJob(ctx context.Context, jobID uuid.UUID) ([]*LaborCost, error)
	TotalByCompany(ctx context.Context, company job.Company, from, to time.Time) (decimal.Decimal, error)
	Save(ctx context.Context, cost *LaborCost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UtilityCostRepository defines the persistence interface for utility costs
type UtilityCostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UtilityCost, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*UtilityCost, error)
	FindByCompany(ctx context.Context, company job.Company, filter shared.Filter) ([]*UtilityCost, error)
	TotalByCompany(ctx context.Context, company job.Company, from, to time.Time) (decimal.Decimal, error)
	Save(ctx context.Context, cost *UtilityCost) error
	Delete(ctx context.Context, id uuid.UUID) error
}
