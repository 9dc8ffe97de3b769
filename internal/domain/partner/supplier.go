package partner

import (
	"strings"

	"github.com/gestionale/backend/internal/domain/shared"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// IsValid checks if the status is a valid SupplierStatus
func (s SupplierStatus) IsValid() bool {
	switch s {
	case SupplierStatusActive, SupplierStatusInactive:
		return true
	}
	return false
}

// PaymentTerms represents the agreed payment deadline with a supplier
type PaymentTerms string

const (
	PaymentTermsImmediate PaymentTerms = "immediate"
	PaymentTerms30Days    PaymentTerms = "30_days"
	PaymentTerms60Days    PaymentTerms = "60_days"
	PaymentTerms90Days    PaymentTerms = "90_days"
)

// IsValid checks if the terms are valid PaymentTerms
func (p PaymentTerms) IsValid() bool {
	switch p {
	case PaymentTermsImmediate, PaymentTerms30Days, PaymentTerms60Days, PaymentTerms90Days:
		return true
	}
	return false
}

// Supplier represents a material or service supplier. Material purchases
// reference suppliers by ID.
type Supplier struct {
	shared.BaseAggregateRoot
	Name         string
	VATNumber    string
	ContactName  string
	Phone        string
	Email        string
	Address      string
	City         string
	Province     string
	PostalCode   string
	PaymentTerms PaymentTerms
	Status       SupplierStatus
	Notes        string
}

// NewSupplier creates a new active supplier with immediate payment terms
func NewSupplier(name string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		PaymentTerms:      PaymentTermsImmediate,
		Status:            SupplierStatusActive,
	}, nil
}

// Rename changes the supplier's display name
func (s *Supplier) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	s.Name = name
	s.Touch()
	s.IncrementVersion()
	return nil
}

// SetContact sets the supplier's contact information
func (s *Supplier) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	s.ContactName = contactName
	s.Phone = phone
	s.Email = email
	s.Touch()
	s.IncrementVersion()
	return nil
}

// SetAddress sets the supplier's address information
func (s *Supplier) SetAddress(address, city, province, postalCode string) error {
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	if city != "" && len(city) > 100 {
		return shared.NewDomainError("INVALID_CITY", "City cannot exceed 100 characters")
	}
	if province != "" && len(province) > 2 {
		return shared.NewDomainError("INVALID_PROVINCE", "Province must be a two-letter code")
	}
	if postalCode != "" && len(postalCode) > 10 {
		return shared.NewDomainError("INVALID_POSTAL_CODE", "Postal code cannot exceed 10 characters")
	}

	s.Address = address
	s.City = city
	s.Province = strings.ToUpper(province)
	s.PostalCode = postalCode
	s.Touch()
	s.IncrementVersion()
	return nil
}

// SetVATNumber sets the supplier's partita IVA
func (s *Supplier) SetVATNumber(vatNumber string) error {
	if vatNumber != "" {
		if err := validateVATNumber(vatNumber); err != nil {
			return err
		}
	}

	s.VATNumber = vatNumber
	s.Touch()
	s.IncrementVersion()
	return nil
}

// SetPaymentTerms sets the agreed payment deadline
func (s *Supplier) SetPaymentTerms(terms PaymentTerms) error {
	if !terms.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_TERMS", "Invalid payment terms")
	}

	s.PaymentTerms = terms
	s.Touch()
	s.IncrementVersion()
	return nil
}

// Activate marks the supplier as active
func (s *Supplier) Activate() {
	s.Status = SupplierStatusActive
	s.Touch()
	s.IncrementVersion()
}

// Deactivate marks the supplier as inactive
func (s *Supplier) Deactivate() {
	s.Status = SupplierStatusInactive
	s.Touch()
	s.IncrementVersion()
}

// IsActive reports whether the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}
