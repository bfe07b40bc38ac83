package hostval

import (
	"strings"

	"github.com/custdesk/backend/internal/domain/customer"
)

const (
	successPrefix         = "SUCCESS:"
	validationErrorPrefix = "VALIDATION_ERROR:"
	errorPrefix           = "ERROR:"
)

// ParseResponse classifies a raw host response string by its prefix.
// The host program writes a single text line; prefixes are matched
// case-insensitively.
func ParseResponse(raw string) customer.ValidationResult {
	if raw == "" {
		return customer.ValidationResult{
			Valid:      false,
			Message:    "No response from validation system",
			Violations: []string{"Empty response from host"},
		}
	}

	switch {
	case hasPrefixFold(raw, successPrefix):
		return customer.ValidationResult{
			Valid:   true,
			Message: raw,
		}

	case hasPrefixFold(raw, validationErrorPrefix):
		message := strings.TrimSpace(raw[len(validationErrorPrefix):])
		var violations []string
		for _, part := range strings.Split(message, ". ") {
			if strings.TrimSpace(part) != "" {
				violations = append(violations, part)
			}
		}
		return customer.ValidationResult{
			Valid:      false,
			Message:    message,
			Violations: violations,
		}

	case hasPrefixFold(raw, errorPrefix):
		message := strings.TrimSpace(raw[len(errorPrefix):])
		return customer.ValidationResult{
			Valid:      false,
			Message:    message,
			Violations: []string{message},
		}

	default:
		return customer.ValidationResult{
			Valid:      false,
			Message:    "Unknown response format",
			Violations: []string{raw},
		}
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
