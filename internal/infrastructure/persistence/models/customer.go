package models

import (
	"time"

	"github.com/custdesk/backend/internal/domain/customer"
	"github.com/custdesk/backend/internal/domain/shared"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	ID        uint                    `gorm:"primaryKey;autoIncrement"`
	Name      string                  `gorm:"type:varchar(100);not null"`
	Phone     string                  `gorm:"type:varchar(20)"`
	Email     string                  `gorm:"type:varchar(100)"`
	Address   string                  `gorm:"type:varchar(500);not null"`
	TaxID     string                  `gorm:"column:tax_id;type:varchar(11);not null;uniqueIndex:idx_customers_tax_id"`
	Status    customer.CustomerStatus `gorm:"type:varchar(20);not null;default:'Active'"`
	CreatedAt time.Time               `gorm:"not null"`
	UpdatedAt time.Time               `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:    m.Name,
		Phone:   m.Phone,
		Email:   m.Email,
		Address: m.Address,
		TaxID:   m.TaxID,
		Status:  m.Status,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.ID = c.ID
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.TaxID = c.TaxID
	m.Status = c.Status
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
