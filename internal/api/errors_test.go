package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/service"
	"github.com/phrazzld/apiref/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"category not found", service.ErrCategoryNotFound, http.StatusNotFound},
		{"wrapped category not found", fmt.Errorf("lookup: %w", service.ErrCategoryNotFound), http.StatusNotFound},
		{"endpoint not found", service.ErrEndpointNotFound, http.StatusNotFound},
		{"store not found", store.ErrCategoryNotFound, http.StatusNotFound},
		{"store error wrapping not found", store.NewStoreError("endpoint", "get", "lookup failed", store.ErrNotFound), http.StatusNotFound},
		{"validation", fmt.Errorf("%w: q", domain.ErrValidation), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"service error", service.NewCatalogServiceError("list_categories", "failed", errors.New("x")), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"category", service.ErrCategoryNotFound, "Category not found"},
		{"store category", store.ErrCategoryNotFound, "Category not found"},
		{"endpoint", service.ErrEndpointNotFound, "Endpoint not found"},
		{"generic not found", store.ErrNotFound, "Not found"},
		{"store error wrapping not found", store.NewStoreError("document", "get", "lookup failed", store.ErrNotFound), "Not found"},
		{"validation", domain.ErrValidation, "Invalid request"},
		{"internal details stay hidden", errors.New("open /etc/apiref/catalog.yaml: permission denied"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/categories/x", nil)

	w := httptest.NewRecorder()
	HandleAPIError(w, req, service.ErrCategoryNotFound, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"Category not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	HandleAPIError(w, req, errors.New("boom"), "Failed to fetch categories")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"Failed to fetch categories"}`, w.Body.String())
}
