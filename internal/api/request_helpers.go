package api

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/apiref/internal/api/shared"
	"github.com/phrazzld/apiref/internal/domain"
)

// SearchRequest is the query string of a search.
type SearchRequest struct {
	Query string `validate:"max=256"`
}

// getSearchRequest reads and validates the search query string.
func getSearchRequest(r *http.Request) (SearchRequest, error) {
	req := SearchRequest{Query: r.URL.Query().Get("q")}
	if err := shared.ValidateRequest(&req); err != nil {
		return SearchRequest{}, fmt.Errorf("%w: q: %v", domain.ErrValidation, err)
	}
	return req, nil
}
