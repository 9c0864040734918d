package handlers

// ErrorResponse is the generic error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// ValidationErrorResponse carries field-level validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Field-keyed validation messages
	Errors map[string]string `json:"errors"`
}
