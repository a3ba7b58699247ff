package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/apiref/internal/api/shared"
	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/service"
	"github.com/phrazzld/apiref/internal/testutils"
)

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouterRoutes(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	tests := []struct {
		name        string
		method      string
		target      string
		wantStatus  int
		contentType string
	}{
		{"categories", http.MethodGet, "/api/categories", http.StatusOK, "application/json"},
		{"category", http.MethodGet, "/api/categories/pix", http.StatusOK, "application/json"},
		{"missing category", http.MethodGet, "/api/categories/nope", http.StatusNotFound, "application/json"},
		{"endpoint", http.MethodGet, "/api/endpoints/pix-a40", http.StatusOK, "application/json"},
		{"search", http.MethodGet, "/api/search?q=a40", http.StatusOK, "application/json"},
		{"document", http.MethodGet, "/api/document", http.StatusOK, "application/json"},
		{"page", http.MethodGet, "/?q=patient", http.StatusOK, "text/html; charset=utf-8"},
		{"health", http.MethodGet, "/health", http.StatusOK, ""},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound, "application/json"},
		{"read only", http.MethodPost, "/api/categories", http.StatusMethodNotAllowed, "application/json"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, router, tc.method, tc.target)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.contentType != "" {
				assert.Equal(t, tc.contentType, w.Header().Get("Content-Type"))
			}
			assert.NotEmpty(t, w.Header().Get(shared.TraceIDHeader))
		})
	}
}

func TestRouterCategoryNotFoundBody(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := serve(t, router, http.MethodGet, "/api/categories/does-not-exist")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"Category not found"}`, w.Body.String())
}

func TestRouterAPIErrorsAreJSON(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"unknown api route", http.MethodGet, "/api/unknown", http.StatusNotFound, `{"error":"Not found"}`},
		{"write to read-only route", http.MethodPost, "/api/categories", http.StatusMethodNotAllowed, `{"error":"Method not allowed"}`},
		{"delete category", http.MethodDelete, "/api/categories/pix", http.StatusMethodNotAllowed, `{"error":"Method not allowed"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, router, tc.method, tc.target)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestRouterGetMatchesList(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	var all []domain.Category
	w := serve(t, router, http.MethodGet, "/api/categories")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))

	for _, want := range all {
		w := serve(t, router, http.MethodGet, "/api/categories/"+want.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var got domain.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, want, got)
	}
}

func TestRouterSearch(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := serve(t, router, http.MethodGet, "/api/search?q=a40")
	require.Equal(t, http.StatusOK, w.Code)

	var result service.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Categories, 1)
	assert.Equal(t, "pix", result.Categories[0].ID)
	require.Len(t, result.Categories[0].Endpoints, 1)
	assert.Equal(t, "pix-a40", result.Categories[0].Endpoints[0].ID)
}

func TestRouterHealth(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := serve(t, router, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouterCompressesWhenAsked(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestRouterOverHTTP(t *testing.T) {
	server := testutils.CreateTestServer(t, newTestApplication(t).setupRouter())

	var categories []domain.Category
	resp := testutils.GetJSON(t, server.URL+"/api/categories", http.StatusOK, &categories)
	assert.Len(t, categories, 7)
	assert.NotEmpty(t, resp.Header.Get(shared.TraceIDHeader))

	var errResp shared.ErrorResponse
	testutils.GetJSON(t, server.URL+"/api/categories/unknown", http.StatusNotFound, &errResp)
	assert.Equal(t, "Category not found", errResp.Error)

	resp, body := testutils.Get(t, server.URL+"/?q=a40&open=pix-a40")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Found 1 endpoint matching")
}
