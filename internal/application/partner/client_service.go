package partner

import (
	"context"

	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/gestionale/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := client.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.City != "" || req.Province != "" || req.PostalCode != "" {
		if err := client.SetAddress(req.Address, req.City, req.Province, req.PostalCode); err != nil {
			return nil, err
		}
	}
	if req.VATNumber != "" || req.FiscalCode != "" {
		if err := client.SetTaxInfo(req.VATNumber, req.FiscalCode); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		client.SetNotes(req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
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
		clients []*partner.Client
		err     error
	)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
		clients, err = s.clientRepo.FindByStatus(ctx, partner.ClientStatus(filter.Status), domainFilter)
	} else {
		clients, err = s.clientRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientResponses(clients), total, nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := client.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName, phone, email := client.ContactName, client.Phone, client.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := client.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}
	if req.Address != nil || req.City != nil || req.Province != nil || req.PostalCode != nil {
		address, city, province, postalCode := client.Address, client.City, client.Province, client.PostalCode
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
		if err := client.SetAddress(address, city, province, postalCode); err != nil {
			return nil, err
		}
	}
	if req.VATNumber != nil || req.FiscalCode != nil {
		vat, fiscal := client.VATNumber, client.FiscalCode
		if req.VATNumber != nil {
			vat = *req.VATNumber
		}
		if req.FiscalCode != nil {
			fiscal = *req.FiscalCode
		}
		if err := client.SetTaxInfo(vat, fiscal); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		client.SetNotes(*req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Activate marks a client as active
func (s *ClientService) Activate(ctx context.Context, clientID uuid.UUID) error {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	client.Activate()
	return s.clientRepo.Save(ctx, client)
}

// Deactivate marks a client as inactive
func (s *ClientService) Deactivate(ctx context.Context, clientID uuid.UUID) error {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	client.Deactivate()
	return s.clientRepo.Save(ctx, client)
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, clientID)
}
