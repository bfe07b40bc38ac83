package hostval

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/custdesk/backend/internal/domain/customer"
)

var (
	mockNameRegex   = regexp.MustCompile(`^[a-zA-Z\s'\-]+$`)
	mockEmailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mockTaxIDRegex  = regexp.MustCompile(`^\d{11}$`)
	mockPhoneStrip  = regexp.MustCompile(`[\s\-\(\)\+]`)
	mockPhoneBadChr = regexp.MustCompile(`[^0-9\s\-\(\)\+]`)
	mockPhoneDigit  = regexp.MustCompile(`^\d{10,}$`)
)

// MockValidator simulates the host validation program for local
// development. It reproduces the program's rule set and builds the
// same single-line textual response the real bridge relays, so the
// result goes through the same parser.
type MockValidator struct {
	mu          sync.Mutex
	knownTaxIDs []string
	logger      *zap.Logger
}

// NewMockValidator creates a mock validator seeded with the tax IDs
// the host system is known to hold.
func NewMockValidator(logger *zap.Logger) *MockValidator {
	return &MockValidator{
		knownTaxIDs: []string{
			"12345678901",
			"98765432109",
			"11111111111",
		},
		logger: logger,
	}
}

// Validate applies the host program's rules and parses the simulated
// response. On success the tax ID is remembered as existing.
func (m *MockValidator) Validate(_ context.Context, cust *customer.Customer) customer.ValidationResult {
	m.logger.Info("mock host validation", zap.String("tax_id", cust.TaxID))

	m.mu.Lock()
	defer m.mu.Unlock()

	violations := m.check(cust)

	if len(violations) > 0 {
		message := strings.Join(violations, ". ") + "."
		m.logger.Warn("mock host validation failed", zap.String("errors", message))
		return ParseResponse(fmt.Sprintf("%s %s", validationErrorPrefix, message))
	}

	m.knownTaxIDs = append(m.knownTaxIDs, cust.TaxID)

	customerID := rand.Intn(9000) + 1000
	response := fmt.Sprintf("%s Customer information validated and saved successfully. Customer ID: %d", successPrefix, customerID)
	m.logger.Info("mock host validation successful", zap.String("message", response))

	return ParseResponse(response)
}

// Reset restores the seeded tax ID list, discarding IDs recorded
// during validation. Used between tests.
func (m *MockValidator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.knownTaxIDs = []string{
		"12345678901",
		"98765432109",
		"11111111111",
	}
}

func (m *MockValidator) check(cust *customer.Customer) []string {
	var errors []string

	name := strings.TrimSpace(cust.Name)
	switch {
	case name == "":
		errors = append(errors, "Customer name is required")
	case len(name) < 2 || len(name) > 100:
		errors = append(errors, "Customer name must be 2-100 characters")
	case !mockNameRegex.MatchString(name):
		errors = append(errors, "Customer name contains invalid characters")
	}

	if strings.TrimSpace(cust.Phone) != "" {
		digits := mockPhoneStrip.ReplaceAllString(cust.Phone, "")
		if !mockPhoneDigit.MatchString(digits) {
			errors = append(errors, "Phone number must contain at least 10 digits")
		}
		if mockPhoneBadChr.MatchString(cust.Phone) {
			errors = append(errors, "Phone number contains invalid characters")
		}
	}

	if email := strings.TrimSpace(cust.Email); email != "" {
		switch {
		case len(email) > 100:
			errors = append(errors, "Email address too long (max 100 characters)")
		case !strings.Contains(email, "@"):
			errors = append(errors, "Email address must contain @ symbol")
		case !mockEmailRegex.MatchString(email):
			errors = append(errors, "Invalid email address format")
		}
	}

	address := strings.TrimSpace(cust.Address)
	switch {
	case address == "":
		errors = append(errors, "Address is required")
	case len(address) < 5:
		errors = append(errors, "Address must be at least 5 characters")
	case len(address) > 255:
		errors = append(errors, "Address too long (max 255 characters)")
	}

	taxID := strings.TrimSpace(cust.TaxID)
	switch {
	case taxID == "":
		errors = append(errors, "Tax ID is required")
	case len(taxID) != 11:
		errors = append(errors, "Tax ID must be exactly 11 characters")
	case !mockTaxIDRegex.MatchString(taxID):
		errors = append(errors, "Tax ID must contain only digits")
	case m.contains(taxID):
		errors = append(errors, "Tax ID already exists in database")
	}

	return errors
}

func (m *MockValidator) contains(taxID string) bool {
	for _, known := range m.knownTaxIDs {
		if known == taxID {
			return true
		}
	}
	return false
}
