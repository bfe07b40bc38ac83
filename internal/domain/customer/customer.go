package customer

import (
	"regexp"
	"strings"

	"github.com/custdesk/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusInactive CustomerStatus = "Inactive"
)

// Customer represents a customer record
// It is the aggregate root for customer-related operations
type Customer struct {
	shared.BaseEntity
	Name    string         `gorm:"type:varchar(100);not null"`
	Phone   string         `gorm:"type:varchar(20)"`
	Email   string         `gorm:"type:varchar(100)"`
	Address string         `gorm:"type:varchar(500);not null"`
	TaxID   string         `gorm:"type:varchar(11);not null;uniqueIndex"`
	Status  CustomerStatus `gorm:"type:varchar(20);not null;default:'Active'"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, phone, email, address, taxID string) (*Customer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	if err := validateTaxID(taxID); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		Email:      strings.TrimSpace(email),
		Address:    strings.TrimSpace(address),
		TaxID:      strings.TrimSpace(taxID),
		Status:     CustomerStatusActive,
	}, nil
}

// ApplyUpdate replaces the customer's editable fields
func (c *Customer) ApplyUpdate(name, phone, email, address, taxID string) error {
	if err := validateName(name); err != nil {
		return err
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
	if err := validateAddress(address); err != nil {
		return err
	}
	if err := validateTaxID(taxID); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
	c.Address = strings.TrimSpace(address)
	c.TaxID = strings.TrimSpace(taxID)
	c.Touch()

	return nil
}

// Activate activates the customer
func (c *Customer) Activate() error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}

	c.Status = CustomerStatusActive
	c.Touch()

	return nil
}

// Deactivate deactivates the customer
func (c *Customer) Deactivate() error {
	if c.Status == CustomerStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Customer is already inactive")
	}

	c.Status = CustomerStatusInactive
	c.Touch()

	return nil
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// Validation functions

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s'\-]+$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	taxIDRegex = regexp.MustCompile(`^\d{11}$`)
	phoneStrip = regexp.MustCompile(`[\s\-\(\)\+]`)
	phoneChars = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
)

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_NAME", "Customer name must be at least 2 characters")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 100 characters")
	}
	if !nameRegex.MatchString(name) {
		return shared.NewDomainError("INVALID_NAME", "Customer name can only contain letters, spaces, hyphens, and apostrophes")
	}
	return nil
}

func validatePhone(phone string) error {
	if !phoneChars.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	digits := phoneStrip.ReplaceAllString(phone, "")
	if len(digits) < 10 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number must contain at least 10 digits")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 100 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 100 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validateAddress(address string) error {
	address = strings.TrimSpace(address)
	if len(address) < 5 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address must be at least 5 characters")
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	return nil
}

func validateTaxID(taxID string) error {
	if !taxIDRegex.MatchString(strings.TrimSpace(taxID)) {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID must be exactly 11 digits")
	}
	return nil
}
