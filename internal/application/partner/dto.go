package partner

import (
	"time"

	"github.com/gestionale/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	VATNumber   string `json:"vat_number" binding:"omitempty,len=11,numeric"`
	FiscalCode  string `json:"fiscal_code" binding:"max=16"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Address     string `json:"address" binding:"max=500"`
	City        string `json:"city" binding:"max=100"`
	Province    string `json:"province" binding:"max=2"`
	PostalCode  string `json:"postal_code" binding:"max=10"`
	Notes       string `json:"notes"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	VATNumber   *string `json:"vat_number" binding:"omitempty,len=11,numeric"`
	FiscalCode  *string `json:"fiscal_code" binding:"omitempty,max=16"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Province    *string `json:"province" binding:"omitempty,max=2"`
	PostalCode  *string `json:"postal_code" binding:"omitempty,max=10"`
	Notes       *string `json:"notes"`
}

// ClientListFilter represents filtering options for listing clients
type ClientListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	VATNumber   string    `json:"vat_number"`
	FiscalCode  string    `json:"fiscal_code"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Province    string    `json:"province"`
	PostalCode  string    `json:"postal_code"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		VATNumber:   c.VATNumber,
		FiscalCode:  c.FiscalCode,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		City:        c.City,
		Province:    c.Province,
		PostalCode:  c.PostalCode,
		Status:      string(c.Status),
		Notes:       c.Notes,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToClientResponses converts a slice of domain clients to response DTOs
func ToClientResponses(clients []*partner.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(c)
	}
	return responses
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	VATNumber    string `json:"vat_number" binding:"omitempty,len=11,numeric"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
	Email        string `json:"email" binding:"omitempty,email,max=200"`
	Address      string `json:"address" binding:"max=500"`
	City         string `json:"city" binding:"max=100"`
	Province     string `json:"province" binding:"max=2"`
	PostalCode   string `json:"postal_code" binding:"max=10"`
	PaymentTerms string `json:"payment_terms" binding:"omitempty,oneof=immediate 30_days 60_days 90_days"`
	Notes        string `json:"notes"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	VATNumber    *string `json:"vat_number" binding:"omitempty,len=11,numeric"`
	ContactName  *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email,max=200"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	Province     *string `json:"province" binding:"omitempty,max=2"`
	PostalCode   *string `json:"postal_code" binding:"omitempty,max=10"`
	PaymentTerms *string `json:"payment_terms" binding:"omitempty,oneof=immediate 30_days 60_days 90_days"`
	Notes        *string `json:"notes"`
}

// SupplierListFilter represents filtering options for listing suppliers
type SupplierListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	VATNumber    string    `json:"vat_number"`
	ContactName  string    `json:"contact_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Province     string    `json:"province"`
	PostalCode   string    `json:"postal_code"`
	PaymentTerms string    `json:"payment_terms"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		VATNumber:    s.VATNumber,
		ContactName:  s.ContactName,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		City:         s.City,
		Province:     s.Province,
		PostalCode:   s.PostalCode,
		PaymentTerms: string(s.PaymentTerms),
		Status:       string(s.Status),
		Notes:        s.Notes,
		Version:      s.Version,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of domain suppliers to response DTOs
func ToSupplierResponses(suppliers []*partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		responses[i] = ToSupplierResponse(s)
	}
	return responses
}
