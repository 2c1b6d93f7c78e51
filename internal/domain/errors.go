package domain

import (
	"errors"
	"fmt"
)

// Required catalog references that could not be resolved. Handlers map
// these to client-facing rejections.
var (
	ErrPackageTypeNotFound   = errors.New("package type not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrShipmentNotFound      = errors.New("shipment not found")
)

// Malformed or missing request input, carrying the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsClientError reports whether err should be surfaced as a rejected
// request rather than an internal failure.
func IsClientError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrPackageTypeNotFound) ||
		errors.Is(err, ErrPaymentMethodNotFound) ||
		errors.Is(err, ErrDepartmentNotFound)
}
