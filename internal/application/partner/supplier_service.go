package partner

import (
	"context"

	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := supplier.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.City != "" || req.Province != "" || req.PostalCode != "" {
		if err := supplier.SetAddress(req.Address, req.City, req.Province, req.PostalCode); err != nil {
			return nil, err
		}
	}
	if req.VATNumber != "" {
		if err := supplier.SetVATNumber(req.VATNumber); err != nil {
			return nil, err
		}
	}
	if req.PaymentTerms != "" {
		if err := supplier.SetPaymentTerms(partner.PaymentTerms(req.PaymentTerms)); err != nil {
			return nil, err
		}
	}
	supplier.Notes = req.Notes

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
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
	domainFilter.Search = filter.Search

	var (
		suppliers []*partner.Supplier
		err       error
	)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
		suppliers, err = s.supplierRepo.FindByStatus(ctx, partner.SupplierStatus(filter.Status), domainFilter)
	} else {
		suppliers, err = s.supplierRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := supplier.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName, phone, email := supplier.ContactName, supplier.Phone, supplier.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := supplier.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}
	if req.Address != nil || req.City != nil || req.Province != nil || req.PostalCode != nil {
		address, city, province, postalCode := supplier.Address, supplier.City, supplier.Province, supplier.PostalCode
		if req.Address != nil {
			address = *req.Address
		}
		if req.City != nil {
			city = *req.City
		}
		if req.Province != nil {
			province = *req.Province
		}
		if req.PostalCode != nil {
			postalCode = *req.PostalCode
		}
		if err := supplier.SetAddress(address, city, province, postalCode); err != nil {
			return nil, err
		}
	}
	if req.VATNumber != nil {
		if err := supplier.SetVATNumber(*req.VATNumber); err != nil {
			return nil, err
		}
	}
	if req.PaymentTerms != nil {
		if err := supplier.SetPaymentTerms(partner.PaymentTerms(*req.PaymentTerms)); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Activate marks a supplier as active
func (s *SupplierService) Activate(ctx context.Context, supplierID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}
	supplier.Activate()
	return s.supplierRepo.Save(ctx, supplier)
}

// Deactivate marks a supplier as inactive
func (s *SupplierService) Deactivate(ctx context.Context, supplierID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}
	supplier.Deactivate()
	return s.supplierRepo.Save(ctx, supplier)
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, supplierID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, supplierID)
}
