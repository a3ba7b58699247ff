package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrCategoryNotFound indicates that no category has the requested id.
	// API layer should map this to HTTP 404 Not Found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrEndpointNotFound indicates that no endpoint has the requested id.
	// API layer should map this to HTTP 404 Not Found.
	ErrEndpointNotFound = errors.New("endpoint not found")
)

// CatalogServiceError is a custom error type for unexpected catalog service failures.
type CatalogServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CatalogServiceError.
func (e *CatalogServiceError) Error() string {
	if e.Err != nil {
		return "catalog service " + e.Operation + " failed: " + e.Message + ": " + e.Err.Error()
	}
	return "catalog service " + e.Operation + " failed: " + e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CatalogServiceError) Unwrap() error {
	return e.Err
}

// NewCatalogServiceError creates a new CatalogServiceError.
func NewCatalogServiceError(operation, message string, err error) *CatalogServiceError {
	return &CatalogServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
