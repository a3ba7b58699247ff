package memory

import (
	"context"
	"log/slog"

	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/store"
)

// CategoryStore implements store.CategoryStore and store.DocumentStore over
// an immutable catalog. It is safe for concurrent use: the catalog is never
// written after construction and every read returns a copy.
type CategoryStore struct {
	catalog *domain.Catalog
	logger  *slog.Logger
}

// Ensure CategoryStore implements the store interfaces
var (
	_ store.CategoryStore = (*CategoryStore)(nil)
	_ store.DocumentStore = (*CategoryStore)(nil)
)

// NewCategoryStore validates catalog and returns a store over a private copy
// of it. If logger is nil, a default logger will be used.
func NewCategoryStore(catalog *domain.Catalog, logger *slog.Logger) (*CategoryStore, error) {
	if catalog == nil {
		return nil, store.NewStoreError("catalog", "open", "catalog cannot be nil", nil)
	}
	if err := catalog.Validate(); err != nil {
		return nil, store.NewStoreError("catalog", "open", "invalid catalog", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryStore{
		catalog: catalog.Clone(),
		logger:  logger.With(slog.String("component", "category_store")),
	}, nil
}

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	return domain.CloneCategories(s.catalog.Categories), nil
}

// Get implements store.CategoryStore.Get.
func (s *CategoryStore) Get(ctx context.Context, id string) (*domain.Category, error) {
	category, ok := s.catalog.FindCategory(id)
	if !ok {
		s.logger.DebugContext(ctx, "category not found", slog.String("category_id", id))
		return nil, store.ErrCategoryNotFound
	}

	clone := category.Clone()
	return &clone, nil
}

// GetEndpoint implements store.CategoryStore.GetEndpoint.
func (s *CategoryStore) GetEndpoint(ctx context.Context, id string) (*domain.Endpoint, string, error) {
	endpoint, categoryID, ok := s.catalog.FindEndpoint(id)
	if !ok {
		s.logger.DebugContext(ctx, "endpoint not found", slog.String("endpoint_id", id))
		return nil, "", store.ErrEndpointNotFound
	}

	clone := endpoint.Clone()
	return &clone, categoryID, nil
}

// Document implements store.DocumentStore.Document.
func (s *CategoryStore) Document(ctx context.Context) (*domain.Document, error) {
	doc := s.catalog.Clone().Document
	return &doc, nil
}
