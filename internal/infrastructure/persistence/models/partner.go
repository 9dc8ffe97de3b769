package models

import (
	"github.com/gestionale/backend/internal/domain/partner"
)

// ClientModel is the persistence mapping for the Client aggregate
type ClientModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(200);not null;index"`
	VATNumber   string `gorm:"type:varchar(11);index"`
	FiscalCode  string `gorm:"type:varchar(16)"`
	ContactName string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(200)"`
	Address     string `gorm:"type:text"`
	City        string `gorm:"type:varchar(100)"`
	Province    string `gorm:"type:varchar(2)"`
	PostalCode  string `gorm:"type:varchar(10)"`
	Status      string `gorm:"type:varchar(20);not null;index"`
	Notes       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client aggregate
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		VATNumber:         m.VATNumber,
		FiscalCode:        m.FiscalCode,
		ContactName:       m.ContactName,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		City:              m.City,
		Province:          m.Province,
		PostalCode:        m.PostalCode,
		Status:            partner.ClientStatus(m.Status),
		Notes:             m.Notes,
	}
}

// ClientModelFromDomain converts a domain Client aggregate to the persistence model
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{
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
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}

// SupplierModel is the persistence mapping for the Supplier aggregate
type SupplierModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(200);not null;index"`
	VATNumber    string `gorm:"type:varchar(11);index"`
	ContactName  string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(50)"`
	Email        string `gorm:"type:varchar(200)"`
	Address      string `gorm:"type:text"`
	City         string `gorm:"type:varchar(100)"`
	Province     string `gorm:"type:varchar(2)"`
	PostalCode   string `gorm:"type:varchar(10)"`
	PaymentTerms string `gorm:"type:varchar(20);not null"`
	Status       string `gorm:"type:varchar(20);not null;index"`
	Notes        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier aggregate
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		VATNumber:         m.VATNumber,
		ContactName:       m.ContactName,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		City:              m.City,
		Province:          m.Province,
		PostalCode:        m.PostalCode,
		PaymentTerms:      partner.PaymentTerms(m.PaymentTerms),
		Status:            partner.SupplierStatus(m.Status),
		Notes:             m.Notes,
	}
}

// SupplierModelFromDomain converts a domain Supplier aggregate to the persistence model
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{
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
	}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}
