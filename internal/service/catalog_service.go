package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/platform/logger"
	"github.com/phrazzld/apiref/internal/search"
	"github.com/phrazzld/apiref/internal/store"
)

// SearchResult is the outcome of a catalog search.
type SearchResult struct {
	Query      string            `json:"query"`
	Total      int               `json:"total"`
	Categories []domain.Category `json:"categories"`
}

// CatalogRepository is the read access the catalog service needs.
type CatalogRepository interface {
	store.CategoryStore
	store.DocumentStore
}

// CatalogService provides catalog operations
type CatalogService interface {
	// ListCategories returns every category in catalog order.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// GetCategory returns one category by id.
	// Returns ErrCategoryNotFound if no category has that id.
	GetCategory(ctx context.Context, id string) (*domain.Category, error)

	// GetEndpoint returns one endpoint by id along with its category id.
	// Returns ErrEndpointNotFound if no endpoint has that id.
	GetEndpoint(ctx context.Context, id string) (*domain.Endpoint, string, error)

	// Search filters the catalog by a free-text query. A blank query
	// returns the whole catalog.
	Search(ctx context.Context, query string) (*SearchResult, error)

	// Document returns the catalog's descriptive metadata.
	Document(ctx context.Context) (*domain.Document, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	repo   CatalogRepository
	logger *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// It returns an error if the repository is nil.
func NewCatalogService(repo CatalogRepository, logger *slog.Logger) (CatalogService, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		repo:   repo,
		logger: logger.With(slog.String("component", "catalog_service")),
	}, nil
}

// ListCategories implements CatalogService.ListCategories
func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, NewCatalogServiceError("list_categories", "failed to list categories", err)
	}
	return categories, nil
}

// GetCategory implements CatalogService.GetCategory
func (s *catalogServiceImpl) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			log.Debug("category lookup missed", slog.String("category_id", id))
			return nil, ErrCategoryNotFound
		}
		return nil, NewCatalogServiceError("get_category", "failed to retrieve category", err)
	}
	return category, nil
}

// GetEndpoint implements CatalogService.GetEndpoint
func (s *catalogServiceImpl) GetEndpoint(ctx context.Context, id string) (*domain.Endpoint, string, error) {
	endpoint, categoryID, err := s.repo.GetEndpoint(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrEndpointNotFound) {
			return nil, "", ErrEndpointNotFound
		}
		return nil, "", NewCatalogServiceError("get_endpoint", "failed to retrieve endpoint", err)
	}
	return endpoint, categoryID, nil
}

// Search implements CatalogService.Search
func (s *catalogServiceImpl) Search(ctx context.Context, query string) (*SearchResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, NewCatalogServiceError("search", "failed to list categories", err)
	}

	filtered := search.Filter(categories, query)
	result := &SearchResult{
		Query:      query,
		Total:      search.Count(filtered),
		Categories: filtered,
	}

	log.Debug("catalog searched",
		slog.String("query", query),
		slog.Int("matches", result.Total),
		slog.Int("categories", len(filtered)))

	return result, nil
}

// Document implements CatalogService.Document
func (s *catalogServiceImpl) Document(ctx context.Context) (*domain.Document, error) {
	doc, err := s.repo.Document(ctx)
	if err != nil {
		return nil, NewCatalogServiceError("document", "failed to read document metadata", err)
	}
	return doc, nil
}
