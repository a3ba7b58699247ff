package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/apiref/internal/api/shared"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
	})
	return server
}

// Get issues a GET to url and returns the response with its body read.
func Get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err, "GET %s", url)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Warning: failed to close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp, body
}

// GetJSON issues a GET to url, requires the expected status and decodes
// the JSON body into v.
func GetJSON(t *testing.T, url string, expectedStatus int, v any) *http.Response {
	t.Helper()

	resp, body := Get(t, url)
	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status for %s: %s", url, string(body))
	require.NoError(t, json.Unmarshal(body, v), "Failed to unmarshal response: %s", string(body))
	return resp
}

// AssertErrorResponse checks that a recorded response is a JSON error with
// the expected status and exactly the expected message.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "Expected status code %d but got %d", expectedStatus, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp), "Failed to unmarshal error response: %s", rec.Body.String())
	assert.Equal(t, expectedMessage, errResp.Error)
}
