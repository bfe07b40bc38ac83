package dto

// Response is the envelope returned by every API endpoint. Success carries
// the outcome, Message a human-readable summary, and exactly one of Data,
// Error or Errors is populated depending on the outcome.
// @name Response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// NewSuccessResponse builds a success envelope with a message and payload.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse builds a failure envelope with a single error detail.
func NewErrorResponse(message, detail string) Response {
	return Response{
		Success: false,
		Message: message,
		Error:   detail,
	}
}

// NewValidationErrorResponse builds a failure envelope carrying a list of
// field-level or business-rule violations.
func NewValidationErrorResponse(message string, violations []string) Response {
	return Response{
		Success: false,
		Message: message,
		Errors:  violations,
	}
}

// NewHostRejectionResponse builds a failure envelope for a rejected host
// validation round-trip, carrying both the host's summary line and the
// individual violations it reported.
func NewHostRejectionResponse(message, detail string, violations []string) Response {
	return Response{
		Success: false,
		Message: message,
		Error:   detail,
		Errors:  violations,
	}
}
