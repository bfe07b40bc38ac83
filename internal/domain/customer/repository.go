package customer

import (
	"context"
)

// Repository defines the interface for customer persistence
type Repository interface {
	// FindAll returns all customers ordered by name
	FindAll(ctx context.Context) ([]Customer, error)

	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// FindByTaxID finds a customer by its tax identification number
	FindByTaxID(ctx context.Context, taxID string) (*Customer, error)

	// Insert persists a new customer and assigns its ID
	Insert(ctx context.Context, customer *Customer) error

	// Save updates an existing customer
	Save(ctx context.Context, customer *Customer) error

	// Delete removes a customer, reporting whether it existed
	Delete(ctx context.Context, id uint) (bool, error)

	// ExistsByTaxID checks if a customer with the given tax ID exists
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
}
