package customer

import (
	"time"

	"github.com/custdesk/backend/internal/domain/customer"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Email   string `json:"email" binding:"omitempty,email,max=100"`
	Address string `json:"address" binding:"required,min=5,max=500"`
	TaxID   string `json:"taxId" binding:"required,len=11,numeric"`
}

// UpdateCustomerRequest represents a request to update a customer.
// All fields are replaced; there are no partial updates.
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Email   string `json:"email" binding:"omitempty,email,max=100"`
	Address string `json:"address" binding:"required,min=5,max=500"`
	TaxID   string `json:"taxId" binding:"required,len=11,numeric"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	CustomerID uint      `json:"customerId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	TaxID      string    `json:"taxId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TaxIDValidationResponse reports the outcome of a tax ID probe.
// A syntactically invalid tax ID still reports its existence.
type TaxIDValidationResponse struct {
	IsValid bool `json:"isValid"`
	Exists  bool `json:"exists"`
}

// ToCustomerResponse converts a domain customer to its API representation
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		TaxID:      c.TaxID,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
