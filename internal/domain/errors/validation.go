package errors

import (
	"net/http"
	"strings"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed rule of a request payload.
// The API contract returns the full list, not just the first failure.
type ValidationError struct {
	httpCode int
	fields   []FieldError
}

// NewValidationError creates a validation error with the given field failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{
		httpCode: http.StatusBadRequest,
		fields:   fields,
	}
}

// WithHTTPCode overrides the status code. Credential endpoints report
// validation failures with 401 while content endpoints use 400.
func (e *ValidationError) WithHTTPCode(code int) *ValidationError {
	return &ValidationError{httpCode: code, fields: e.fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	if len(e.fields) > 0 {
		return e.fields[0].Message
	}

	return "Input validation failed."
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}

// Fields returns every failed rule for the API response body.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}
