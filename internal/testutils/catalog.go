package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/platform/embedded"
	"github.com/phrazzld/apiref/internal/platform/memory"
	"github.com/phrazzld/apiref/internal/service"
)

// LoadCatalog returns a freshly decoded copy of the embedded catalog.
func LoadCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := embedded.Load()
	require.NoError(t, err, "embedded catalog must load")
	return catalog
}

// NewCatalogService returns a catalog service over the embedded catalog,
// backed by the in-memory store.
func NewCatalogService(t *testing.T) service.CatalogService {
	t.Helper()

	repo, err := memory.NewCategoryStore(LoadCatalog(t), nil)
	require.NoError(t, err)

	svc, err := service.NewCatalogService(repo, nil)
	require.NoError(t, err)
	return svc
}
