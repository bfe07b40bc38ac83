package customer

import "context"

// ValidationResult is the outcome of a host validation round-trip.
// A transport failure is reported as a failed result, never an error.
type ValidationResult struct {
	Valid      bool
	Message    string
	Violations []string
}

// Validator validates customer data against the legacy host system
type Validator interface {
	Validate(ctx context.Context, customer *Customer) ValidationResult
}
