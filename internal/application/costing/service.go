package costing

import (
	"context"
	"time"

	"github.com/gestionale/backend/internal/domain/costing"
	"github.com/gestionale/backend/internal/domain/job"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CostingService handles cost tracking across materials, labor and utilities
type CostingService struct {
	materialRepo costing.MaterialPurchaseRepository
	laborRepo    costing.LaborCostRepository
	utilityRepo  costing.UtilityCostRepository
}

// NewCostingService creates a new CostingService
func NewCostingService(materialRepo costing.MaterialPurchaseRepository, laborRepo costing.LaborCostRepository, utilityRepo costing.UtilityCostRepository) *CostingService {
	return &CostingService{
		materialRepo: materialRepo,
		laborRepo:    laborRepo,
		utilityRepo:  utilityRepo,
	}
}

// RecordMaterialPurchase records a material purchase
func (s *CostingService) RecordMaterialPurchase(ctx context.Context, req CreateMaterialPurchaseRequest) (*MaterialPurchaseResponse, error) {
	purchase, err := costing.NewMaterialPurchase(job.Company(req.Company), req.Description, req.Quantity, req.UnitPrice, req.PurchasedAt)
	if err != nil {
		return nil, err
	}

	if req.SupplierID != nil {
		purchase.AssignSupplier(*req.SupplierID)
	}
	if req.JobID != nil {
		purchase.AssignJob(*req.JobID)
	}
	if req.InvoiceNumber != "" {
		purchase.SetInvoiceNumber(req.InvoiceNumber)
	}

	if err := s.materialRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToMaterialPurchaseResponse(purchase)
	return &response, nil
}

// RecordLaborCost records worked hours
func (s *CostingService) RecordLaborCost(ctx context.Context, req CreateLaborCostRequest) (*LaborCostResponse, error) {
	cost, err := costing.NewLaborCost(job.Company(req.Company), req.Description, req.Hours, req.HourlyRate, req.WorkedOn)
	if err != nil {
		return nil, err
	}

	if req.JobID != nil {
		cost.AssignJob(*req.JobID)
	}

	if err := s.laborRepo.Save(ctx, cost); err != nil {
		return nil, err
	}

	response := ToLaborCostResponse(cost)
	return &response, nil
}

// RecordUtilityCost records a utility bill
func (s *CostingService) RecordUtilityCost(ctx context.Context, req CreateUtilityCostRequest) (*UtilityCostResponse, error) {
	cost, err := costing.NewUtilityCost(job.Company(req.Company), costing.UtilityType(req.Type), req.Amount, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	if req.Notes != "" {
		cost.SetNotes(req.Notes)
	}

	if err := s.utilityRepo.Save(ctx, cost); err != nil {
		return nil, err
	}

	response := ToUtilityCostResponse(cost)
	return &response, nil
}

// ListMaterialPurchases retrieves material purchases, optionally per company
func (s *CostingService) ListMaterialPurchases(ctx context.Context, filter CostListFilter) ([]MaterialPurchaseResponse, error) {
	purchases, err := s.listMaterial(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]MaterialPurchaseResponse, len(purchases))
	for i, p := range purchases {
		responses[i] = ToMaterialPurchaseResponse(p)
	}
	return responses, nil
}

func (s *CostingService) listMaterial(ctx context.Context, filter CostListFilter) ([]*costing.MaterialPurchase, error) {
	domainFilter := toDomainFilter(filter)
	if filter.Company != "" {
		return s.materialRepo.FindByCompany(ctx, job.Company(filter.Company), domainFilter)
	}
	return s.materialRepo.FindAll(ctx, domainFilter)
}

// ListLaborCosts retrieves labor costs, optionally per company
func (s *CostingService) ListLaborCosts(ctx context.Context, filter CostListFilter) ([]LaborCostResponse, error) {
	var (
		costs []*costing.LaborCost
		err   error
	)
	domainFilter := toDomainFilter(filter)
	if filter.Company != "" {
		costs, err = s.laborRepo.FindByCompany(ctx, job.Company(filter.Company), domainFilter)
	} else {
		costs, err = s.laborRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]LaborCostResponse, len(costs))
	for i, c := range costs {
		responses[i] = ToLaborCostResponse(c)
	}
	return responses, nil
}

// ListUtilityCosts retrieves utility costs, optionally per company
func (s *CostingService) ListUtilityCosts(ctx context.Context, filter CostListFilter) ([]UtilityCostResponse, error) {
	var (
		costs []*costing.UtilityCost
		err   error
	)
	domainFilter := toDomainFilter(filter)
	if filter.Company != "" {
		costs, err = s.utilityRepo.FindByCompany(ctx, job.Company(filter.Company), domainFilter)
	} else {
		costs, err = s.utilityRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]UtilityCostResponse, len(costs))
	for i, c := range costs {
		responses[i] = ToUtilityCostResponse(c)
	}
	return responses, nil
}

// ListByJob retrieves the material and labor entries charged to one job
func (s *CostingService) ListByJob(ctx context.Context, jobID uuid.UUID) ([]MaterialPurchaseResponse, []LaborCostResponse, error) {
	purchases, err := s.materialRepo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	labor, err := s.laborRepo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	materialResponses := make([]MaterialPurchaseResponse, len(purchases))
	for i, p := range purchases {
		materialResponses[i] = ToMaterialPurchaseResponse(p)
	}
	laborResponses := make([]LaborCostResponse, len(labor))
	for i, l := range labor {
		laborResponses[i] = ToLaborCostResponse(l)
	}
	return materialResponses, laborResponses, nil
}

// Summary aggregates all cost categories for one company over a period
func (s *CostingService) Summary(ctx context.Context, company string, from, to time.Time) (*CompanyCostSummary, error) {
	c := job.Company(company)
	if !c.IsValid() {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Invalid company")
	}
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end cannot precede period start")
	}

	materials, err := s.materialRepo.TotalByCompany(ctx, c, from, to)
	if err != nil {
		return nil, err
	}
	labor, err := s.laborRepo.TotalByCompany(ctx, c, from, to)
	if err != nil {
		return nil, err
	}
	utilities, err := s.utilityRepo.TotalByCompany(ctx, c, from, to)
	if err != nil {
		return nil, err
	}

	return &CompanyCostSummary{
		Company:    company,
		From:       from,
		To:         to,
		Materials:  materials,
		Labor:      labor,
		Utilities:  utilities,
		TotalCosts: materials.Add(labor).Add(utilities),
	}, nil
}

// DeleteMaterialPurchase removes a material purchase
func (s *CostingService) DeleteMaterialPurchase(ctx context.Context, id uuid.UUID) error {
	if _, err := s.materialRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, id)
}

// DeleteLaborCost removes a labor cost entry
func (s *CostingService) DeleteLaborCost(ctx context.Context, id uuid.UUID) error {
	if _, err := s.laborRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.laborRepo.Delete(ctx, id)
}

// DeleteUtilityCost removes a utility cost entry
func (s *CostingService) DeleteUtilityCost(ctx context.Context, id uuid.UUID) error {
	if _, err := s.utilityRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.utilityRepo.Delete(ctx, id)
}

func toDomainFilter(filter CostListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	return domainFilter
}
