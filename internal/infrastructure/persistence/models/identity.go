package models

import (
	"time"

	"github.com/gestionale/backend/internal/domain/identity"
)

// UserModel is the persistence mapping for the User aggregate
type UserModel struct {
	AggregateModel
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(200)"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	DisplayName  string `gorm:"type:varchar(100)"`
	Role         string `gorm:"type:varchar(20);not null"`
	Active       bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User aggregate
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		DisplayName:       m.DisplayName,
		Role:              identity.Role(m.Role),
		Active:            m.Active,
		LastLoginAt:       m.LastLoginAt,
	}
}

// UserModelFromDomain converts a domain User aggregate to the persistence model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Role:         string(u.Role),
		Active:       u.Active,
		LastLoginAt:  u.LastLoginAt,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}
