package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/apiref/internal/platform/logger"
	"github.com/phrazzld/apiref/internal/service"
	"github.com/phrazzld/apiref/internal/view"
)

// PageHandler serves the HTML reference page.
type PageHandler struct {
	catalogService service.CatalogService
	renderer       *view.Renderer
	headerOffset   int
	logger         *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(
	catalogService service.CatalogService,
	renderer *view.Renderer,
	headerOffset int,
	logger *slog.Logger,
) *PageHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PageHandler")
	}
	if renderer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("renderer cannot be nil for PageHandler")
	}

	return &PageHandler{
		catalogService: catalogService,
		renderer:       renderer,
		headerOffset:   headerOffset,
		logger:         logger.With(slog.String("component", "page_handler")),
	}
}

// ServePage handles GET / requests. The view state comes from the query
// string: q (search text), open (expanded endpoint ids) and active
// (selected category).
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := getSearchRequest(r)
	if err != nil {
		HandleAPIError(w, r, err, "Invalid search query")
		return
	}

	state := view.FromQuery(r.URL.Query())
	state.Query = req.Query

	doc, err := h.catalogService.Document(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load page")
		return
	}

	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load page")
		return
	}

	page := view.NewPage(*doc, categories, state, h.headerOffset)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page); err != nil {
		log.Error("failed to render page", slog.Any("error", err))
		HandleAPIError(w, r, err, "Failed to render page")
		return
	}

	log.Debug("page rendered",
		slog.String("query", state.Query),
		slog.Int("matches", page.Total),
		slog.Int("expanded", len(page.Open)))
}
