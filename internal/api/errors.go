package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/apiref/internal/api/shared"
	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/service"
	"github.com/phrazzld/apiref/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrEndpointNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, service.ErrEndpointNotFound),
		errors.Is(err, store.ErrEndpointNotFound):
		return "Endpoint not found"

	case store.IsNotFoundError(err):
		return "Not found"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. A non-empty message
// overrides the mapped safe message.
func HandleAPIError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	message string,
	opts ...shared.ResponseOption,
) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
