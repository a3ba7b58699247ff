package store

import (
	"context"

	"github.com/phrazzld/apiref/internal/domain"
)

// CategoryStore defines read access to the catalog's categories.
// Implementations must return copies so callers cannot alter shared data.
type CategoryStore interface {
	// List returns every category in catalog order.
	List(ctx context.Context) ([]domain.Category, error)

	// Get returns the category with the given id.
	// Returns ErrCategoryNotFound if no category has that id.
	Get(ctx context.Context, id string) (*domain.Category, error)

	// GetEndpoint returns the endpoint with the given id together with the id
	// of its category.
	// Returns ErrEndpointNotFound if no endpoint has that id.
	GetEndpoint(ctx context.Context, id string) (*domain.Endpoint, string, error)
}

// DocumentStore exposes the catalog's descriptive metadata.
type DocumentStore interface {
	Document(ctx context.Context) (*domain.Document, error)
}
