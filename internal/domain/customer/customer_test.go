package customer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer successfully", func(t *testing.T) {
		customer, err := NewCustomer("John Doe", "555-123-4567", "john@example.com", "123 Main Street", "12345678901")

		require.NoError(t, err)
		assert.NotNil(t, customer)
		assert.Equal(t, "John Doe", customer.Name)
		assert.Equal(t, "555-123-4567", customer.Phone)
		assert.Equal(t, "john@example.com", customer.Email)
		assert.Equal(t, "123 Main Street", customer.Address)
		assert.Equal(t, "12345678901", customer.TaxID)
		assert.Equal(t, CustomerStatusActive, customer.Status)
		assert.True(t, customer.IsActive())
		assert.False(t, customer.CreatedAt.IsZero())
		assert.Equal(t, customer.CreatedAt, customer.UpdatedAt)
	})

	t.Run("allows empty phone and email", func(t *testing.T) {
		customer, err := NewCustomer("Jane Smith", "", "", "456 Oak Avenue", "98765432109")

		require.NoError(t, err)
		assert.Empty(t, customer.Phone)
		assert.Empty(t, customer.Email)
	})

	t.Run("allows names with apostrophes and hyphens", func(t *testing.T) {
		customer, err := NewCustomer("Mary O'Brien-Smith", "", "", "789 Pine Road", "11111111111")

		require.NoError(t, err)
		assert.Equal(t, "Mary O'Brien-Smith", customer.Name)
	})

	t.Run("fails with too short name", func(t *testing.T) {
		customer, err := NewCustomer("J", "", "", "123 Main Street", "12345678901")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "at least 2 characters")
	})

	t.Run("fails with name over 100 characters", func(t *testing.T) {
		customer, err := NewCustomer(strings.Repeat("a", 101), "", "", "123 Main Street", "12345678901")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "cannot exceed 100")
	})

	t.Run("fails with digits in name", func(t *testing.T) {
		customer, err := NewCustomer("John Doe 3rd", "", "", "123 Main Street", "12345678901")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "can only contain")
	})

	t.Run("fails with too few phone digits", func(t *testing.T) {
		customer, err := NewCustomer("John Doe", "555-1234", "", "123 Main Street", "12345678901")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "at least 10 digits")
	})

	t.Run("fails with invalid phone characters", func(t *testing.T) {
		customer, err := NewCustomer("John Doe", "555-123-456x", "", "123 Main Street", "12345678901")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("accepts formatted phone with enough digits", func(t *testing.T) {
		customer, err := NewCustomer("John Doe", "+1 (555) 123-4567", "", "123 Main Street", "12345678901")

		require.NoError(t, err)
		assert.Equal(t, "+1 (555) 123-4567", customer.Phone)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		customer, err := NewCustomer("John Doe", "", "not-an-email", "123 Main Street", "12345678901")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("fails with email over 100 characters", func(t *testing.T) {
		email := strings.Repeat("a", 95) + "@x.com"
		customer, err := NewCustomer("John Doe", "", email, "123 Main Street", "12345678901")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "Email cannot exceed 100")
	})

	t.Run("fails with too short address", func(t *testing.T) {
		customer, err := NewCustomer("John Doe", "", "", "abcd", "12345678901")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "at least 5 characters")
	})

	t.Run("fails with non-digit tax ID", func(t *testing.T) {
		customer, err := NewCustomer("John Doe", "", "", "123 Main Street", "1234567890a")

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Contains(t, err.Error(), "exactly 11 digits")
	})

	t.Run("fails with short tax ID", func(t *testing.T) {
		customer, err := NewCustomer("John Doe", "", "", "123 Main Street", "1234567890")

		assert.Error(t, err)
		assert.Nil(t, customer)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		customer, err := NewCustomer("  John Doe  ", "", "", "  123 Main Street  ", " 12345678901 ")

		require.NoError(t, err)
		assert.Equal(t, "John Doe", customer.Name)
		assert.Equal(t, "123 Main Street", customer.Address)
		assert.Equal(t, "12345678901", customer.TaxID)
	})
}

func TestCustomerApplyUpdate(t *testing.T) {
	t.Run("replaces editable fields", func(t *testing.T) {
		customer, _ := NewCustomer("John Doe", "", "", "123 Main Street", "12345678901")
		createdAt := customer.CreatedAt

		err := customer.ApplyUpdate("Jane Smith", "555-987-6543", "jane@example.com", "456 Oak Avenue", "98765432109")

		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", customer.Name)
		assert.Equal(t, "555-987-6543", customer.Phone)
		assert.Equal(t, "jane@example.com", customer.Email)
		assert.Equal(t, "456 Oak Avenue", customer.Address)
		assert.Equal(t, "98765432109", customer.TaxID)
		assert.Equal(t, createdAt, customer.CreatedAt)
		assert.True(t, !customer.UpdatedAt.Before(createdAt))
	})

	t.Run("leaves status untouched", func(t *testing.T) {
		customer, _ := NewCustomer("John Doe", "", "", "123 Main Street", "12345678901")
		require.NoError(t, customer.Deactivate())

		err := customer.ApplyUpdate("Jane Smith", "", "", "456 Oak Avenue", "98765432109")

		require.NoError(t, err)
		assert.Equal(t, CustomerStatusInactive, customer.Status)
	})

	t.Run("rejects invalid fields without mutating", func(t *testing.T) {
		customer, _ := NewCustomer("John Doe", "", "", "123 Main Street", "12345678901")

		err := customer.ApplyUpdate("X", "", "", "456 Oak Avenue", "98765432109")

		assert.Error(t, err)
		assert.Equal(t, "John Doe", customer.Name)
		assert.Equal(t, "12345678901", customer.TaxID)
	})
}

func TestCustomerStatusTransitions(t *testing.T) {
	customer, _ := NewCustomer("John Doe", "", "", "123 Main Street", "12345678901")

	t.Run("activate fails when already active", func(t *testing.T) {
		err := customer.Activate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already active")
	})

	t.Run("deactivate succeeds", func(t *testing.T) {
		err := customer.Deactivate()

		require.NoError(t, err)
		assert.Equal(t, CustomerStatusInactive, customer.Status)
		assert.False(t, customer.IsActive())
	})

	t.Run("deactivate fails when already inactive", func(t *testing.T) {
		err := customer.Deactivate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already inactive")
	})

	t.Run("activate succeeds from inactive", func(t *testing.T) {
		err := customer.Activate()

		require.NoError(t, err)
		assert.True(t, customer.IsActive())
	})
}
