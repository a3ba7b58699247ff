package mocks

import (
	"context"

	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/store"
)

// MockCatalogRepository implements store.CategoryStore and store.DocumentStore for testing
type MockCatalogRepository struct {
	// Custom behavior functions
	ListFn        func(ctx context.Context) ([]domain.Category, error)
	GetFn         func(ctx context.Context, id string) (*domain.Category, error)
	GetEndpointFn func(ctx context.Context, id string) (*domain.Endpoint, string, error)
	DocumentFn    func(ctx context.Context) (*domain.Document, error)

	// Default return values
	Categories   []domain.Category
	Doc          *domain.Document
	DefaultError error
}

var (
	_ store.CategoryStore = (*MockCatalogRepository)(nil)
	_ store.DocumentStore = (*MockCatalogRepository)(nil)
)

// List implements the CategoryStore.List method
func (m *MockCatalogRepository) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	return domain.CloneCategories(m.Categories), nil
}

// Get implements the CategoryStore.Get method.
// Without GetFn it searches Categories and returns store.ErrCategoryNotFound on a miss.
func (m *MockCatalogRepository) Get(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	for _, c := range m.Categories {
		if c.ID == id {
			clone := c.Clone()
			return &clone, nil
		}
	}
	return nil, store.ErrCategoryNotFound
}

// GetEndpoint implements the CategoryStore.GetEndpoint method
func (m *MockCatalogRepository) GetEndpoint(ctx context.Context, id string) (*domain.Endpoint, string, error) {
	if m.GetEndpointFn != nil {
		return m.GetEndpointFn(ctx, id)
	}
	if m.DefaultError != nil {
		return nil, "", m.DefaultError
	}
	for _, c := range m.Categories {
		for _, e := range c.Endpoints {
			if e.ID == id {
				clone := e.Clone()
				return &clone, c.ID, nil
			}
		}
	}
	return nil, "", store.ErrEndpointNotFound
}

// Document implements the DocumentStore.Document method
func (m *MockCatalogRepository) Document(ctx context.Context) (*domain.Document, error) {
	if m.DocumentFn != nil {
		return m.DocumentFn(ctx)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	if m.Doc == nil {
		return &domain.Document{}, nil
	}
	doc := *m.Doc
	return &doc, nil
}
