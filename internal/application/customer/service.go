package customer

import (
	"context"
	"errors"
	"regexp"

	"github.com/custdesk/backend/internal/domain/customer"
	"github.com/custdesk/backend/internal/domain/shared"
)

var taxIDShape = regexp.MustCompile(`^\d{11}$`)

// Service handles customer-related business operations
type Service struct {
	repo      customer.Repository
	validator customer.Validator
}

// NewService creates a new customer Service
func NewService(repo customer.Repository, validator customer.Validator) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
	}
}

// List returns all customers ordered by name
func (s *Service) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, nil
}

// GetByID retrieves a customer by ID
func (s *Service) GetByID(ctx context.Context, id uint) (*CustomerResponse, error) {
	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(cust)
	return &response, nil
}

// Create validates a new customer against the host system and stores it.
// The record store's tax ID uniqueness check and the host's own record
// of known tax IDs are independent and can disagree; the store wins.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	cust, err := customer.NewCustomer(req.Name, req.Phone, req.Email, req.Address, req.TaxID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTaxID(ctx, cust.TaxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this Tax ID already exists in the system")
	}

	result := s.validator.Validate(ctx, cust)
	if !result.Valid {
		return nil, &ValidationError{
			Message:    result.Message,
			Violations: result.Violations,
		}
	}

	if err := s.repo.Insert(ctx, cust); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(cust)
	return &response, nil
}

// Update replaces a customer's fields. The host validation system is
// not consulted again; only creates go through the host round-trip.
func (s *Service) Update(ctx context.Context, id uint, req UpdateCustomerRequest) (*CustomerResponse, error) {
	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	holder, err := s.repo.FindByTaxID(ctx, req.TaxID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if holder != nil && holder.ID != id {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this Tax ID already exists in the system")
	}

	if err := cust.ApplyUpdate(req.Name, req.Phone, req.Email, req.Address, req.TaxID); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, cust); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(cust)
	return &response, nil
}

// Delete removes a customer by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.ErrNotFound
	}
	return nil
}

// ValidateTaxID probes a tax ID's syntactic shape and whether a
// customer already holds it. Both are reported independently.
func (s *Service) ValidateTaxID(ctx context.Context, taxID string) (*TaxIDValidationResponse, error) {
	exists, err := s.repo.ExistsByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	return &TaxIDValidationResponse{
		IsValid: taxIDShape.MatchString(taxID),
		Exists:  exists,
	}, nil
}
