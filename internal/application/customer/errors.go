package customer

// ValidationError reports a host validation rejection with the
// individual violations extracted from the host response.
type ValidationError struct {
	Message    string
	Violations []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}
