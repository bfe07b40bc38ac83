package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/custdesk/backend/internal/domain/customer"
	"github.com/custdesk/backend/internal/domain/shared"
	"github.com/custdesk/backend/internal/infrastructure/persistence/models"
)

// GormCustomerRepository implements customer.Repository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindAll returns all customers ordered by name ascending
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]customer.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]customer.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTaxID finds a customer by its tax identification number
func (r *GormCustomerRepository) FindByTaxID(ctx context.Context, taxID string) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("tax_id = ?", taxID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Insert persists a new customer and copies the assigned ID back
// onto the domain entity.
func (r *GormCustomerRepository) Insert(ctx context.Context, c *customer.Customer) error {
	model := models.CustomerModelFromDomain(c)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	c.ID = model.ID
	return nil
}

// Save updates an existing customer
func (r *GormCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if c.ID == 0 {
		return shared.NewDomainError("INVALID_ID", "Cannot save a customer without an ID")
	}
	model := models.CustomerModelFromDomain(c)
	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"phone":      model.Phone,
			"email":      model.Email,
			"address":    model.Address,
			"tax_id":     model.TaxID,
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a customer, reporting whether it existed
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ExistsByTaxID checks if a customer with the given tax ID exists
func (r *GormCustomerRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("tax_id = ?", taxID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
