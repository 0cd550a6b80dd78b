package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that maps onto an API response. Code is the HTTP
// status and Errors lists per-field validation problems.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError names a request field and what is wrong with it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func newError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Sign-in
var (
	ErrInvalidCredentials = newError(http.StatusUnauthorized, "Invalid username or password")
	ErrAccountDisabled    = newError(http.StatusForbidden, "Account is disabled")
)

// Sales and devices
var (
	ErrInvoiceVoided      = newError(http.StatusConflict, "Invoice is already voided")
	ErrPrinterUnavailable = newError(http.StatusServiceUnavailable, "Printer is not available")
)

var errInternal = newError(http.StatusInternalServerError, "Internal server error")

// NewNotFoundError reports a missing resource, e.g. "Invoice not found".
func NewNotFoundError(resource string) *AppError {
	return newError(http.StatusNotFound, resource+" not found")
}

// NewValidationError is a 422 carrying every field problem found.
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewFieldError is a validation error about a single field.
func NewFieldError(field, message string) *AppError {
	return NewValidationError([]FieldError{{Field: field, Message: message}})
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError unwraps err to its AppError. Any other error becomes a bare
// 500 so database and driver messages stay out of responses.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return errInternal
}
