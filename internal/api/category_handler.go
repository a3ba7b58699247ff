package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/apiref/internal/api/shared"
	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/platform/logger"
	"github.com/phrazzld/apiref/internal/service"
)

// CategoryHandler serves the catalog's JSON endpoints.
type CategoryHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(catalogService service.CatalogService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}

	return &CategoryHandler{
		catalogService: catalogService,
		logger:         logger.With(slog.String("component", "category_handler")),
	}
}

// ListCategories handles GET /api/categories requests.
// It returns every category in catalog order.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/{id} requests.
// An unknown id yields 404 with body {"error":"Category not found"}.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := chi.URLParam(r, "id")

	category, err := h.catalogService.GetCategory(r.Context(), id)
	if err != nil {
		log.Debug("category request failed", slog.String("category_id", id), slog.Any("error", err))
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, category)
}

// EndpointResponse is an endpoint together with the id of its category.
type EndpointResponse struct {
	CategoryID string           `json:"categoryId"`
	Endpoint   *domain.Endpoint `json:"endpoint"`
}

// GetEndpoint handles GET /api/endpoints/{id} requests.
func (h *CategoryHandler) GetEndpoint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	endpoint, categoryID, err := h.catalogService.GetEndpoint(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EndpointResponse{
		CategoryID: categoryID,
		Endpoint:   endpoint,
	})
}

// Search handles GET /api/search?q= requests.
func (h *CategoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	req, err := getSearchRequest(r)
	if err != nil {
		// Rejected queries are client input worth seeing at the default log level.
		HandleAPIError(w, r, err, "Invalid search query", shared.WithElevatedLogLevel())
		return
	}

	result, err := h.catalogService.Search(r.Context(), req.Query)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetDocument handles GET /api/document requests.
func (h *CategoryHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.catalogService.Document(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch document")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}
