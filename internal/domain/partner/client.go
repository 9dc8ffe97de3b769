package partner

import (
	"regexp"
	"strings"

	"github.com/gestionale/backend/internal/domain/shared"
)

// ClientStatus represents the status of a client
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// IsValid checks if the status is a valid ClientStatus
func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive:
		return true
	}
	return false
}

// Client represents a customer of either company. Jobs and quotes reference
// clients by ID; the same client can work with both companies.
type Client struct {
	shared.BaseAggregateRoot
	Name        string
	VATNumber   string // partita IVA, optional for private individuals
	FiscalCode  string // codice fiscale
	ContactName string
	Phone       string
	Email       string
	Address     string
	City        string
	Province    string
	PostalCode  string
	Status      ClientStatus
	Notes       string
}

// NewClient creates a new active client
func NewClient(name string) (*Client, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Status:            ClientStatusActive,
	}, nil
}

// Rename changes the client's display name
func (c *Client) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	c.Name = name
	c.Touch()
	c.IncrementVersion()
	return nil
}

// SetContact sets the client's contact information
func (c *Client) SetContact(contactName, phone, email string) error {
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

	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.Touch()
	c.IncrementVersion()
	return nil
}

// SetAddress sets the client's address information
func (c *Client) SetAddress(address, city, province, postalCode string) error {
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

	c.Address = address
	c.City = city
	c.Province = strings.ToUpper(province)
	c.PostalCode = postalCode
	c.Touch()
	c.IncrementVersion()
	return nil
}

// SetTaxInfo sets the client's Italian tax identifiers
func (c *Client) SetTaxInfo(vatNumber, fiscalCode string) error {
	if vatNumber != "" {
		if err := validateVATNumber(vatNumber); err != nil {
			return err
		}
	}
	if fiscalCode != "" && len(fiscalCode) > 16 {
		return shared.NewDomainError("INVALID_FISCAL_CODE", "Fiscal code cannot exceed 16 characters")
	}

	c.VATNumber = vatNumber
	c.FiscalCode = strings.ToUpper(fiscalCode)
	c.Touch()
	c.IncrementVersion()
	return nil
}

// SetNotes sets free-form notes
func (c *Client) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
	c.IncrementVersion()
}

// Activate marks the client as active
func (c *Client) Activate() {
	c.Status = ClientStatusActive
	c.Touch()
	c.IncrementVersion()
}

// Deactivate marks the client as inactive
func (c *Client) Deactivate() {
	c.Status = ClientStatusInactive
	c.Touch()
	c.IncrementVersion()
}

// IsActive reports whether the client is active
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

// Validation functions

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

// validateVATNumber checks the shape of an Italian partita IVA, eleven digits.
func validateVATNumber(vat string) error {
	validVAT := regexp.MustCompile(`^\d{11}$`)
	if !validVAT.MatchString(vat) {
		return shared.NewDomainError("INVALID_VAT", "VAT number must be eleven digits")
	}
	return nil
}
