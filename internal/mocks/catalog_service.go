package mocks

import (
	"context"

	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/search"
	"github.com/phrazzld/apiref/internal/service"
)

// MockCatalogService implements service.CatalogService for testing
type MockCatalogService struct {
	// Custom behavior functions
	ListCategoriesFn func(ctx context.Context) ([]domain.Category, error)
	GetCategoryFn    func(ctx context.Context, id string) (*domain.Category, error)
	GetEndpointFn    func(ctx context.Context, id string) (*domain.Endpoint, string, error)
	SearchFn         func(ctx context.Context, query string) (*service.SearchResult, error)
	DocumentFn       func(ctx context.Context) (*domain.Document, error)

	// Default return values
	Categories   []domain.Category
	Doc          *domain.Document
	DefaultError error
}

var _ service.CatalogService = (*MockCatalogService)(nil)

// ListCategories implements the CatalogService.ListCategories method
func (m *MockCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return m.Categories, m.DefaultError
}

// GetCategory implements the CatalogService.GetCategory method
func (m *MockCatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetCategoryFn != nil {
		return m.GetCategoryFn(ctx, id)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	for _, c := range m.Categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, service.ErrCategoryNotFound
}

// GetEndpoint implements the CatalogService.GetEndpoint method
func (m *MockCatalogService) GetEndpoint(ctx context.Context, id string) (*domain.Endpoint, string, error) {
	if m.GetEndpointFn != nil {
		return m.GetEndpointFn(ctx, id)
	}
	if m.DefaultError != nil {
		return nil, "", m.DefaultError
	}
	for _, c := range m.Categories {
		for _, e := range c.Endpoints {
			if e.ID == id {
				e := e
				return &e, c.ID, nil
			}
		}
	}
	return nil, "", service.ErrEndpointNotFound
}

// Search implements the CatalogService.Search method.
// Without SearchFn it filters Categories with the real search filter.
func (m *MockCatalogService) Search(ctx context.Context, query string) (*service.SearchResult, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	filtered := search.Filter(m.Categories, query)
	return &service.SearchResult{Query: query, Total: search.Count(filtered), Categories: filtered}, nil
}

// Document implements the CatalogService.Document method
func (m *MockCatalogService) Document(ctx context.Context) (*domain.Document, error) {
	if m.DocumentFn != nil {
		return m.DocumentFn(ctx)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	if m.Doc == nil {
		return &domain.Document{}, nil
	}
	return m.Doc, nil
}
