package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/apiref/internal/config"
	"github.com/phrazzld/apiref/internal/domain"
	"github.com/phrazzld/apiref/internal/platform/embedded"
	"github.com/phrazzld/apiref/internal/platform/memory"
	"github.com/phrazzld/apiref/internal/service"
	"github.com/phrazzld/apiref/internal/view"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Catalog data, immutable after load
	catalog       *domain.Catalog
	categoryStore *memory.CategoryStore

	// Service interfaces
	catalogService service.CatalogService

	// Page rendering
	renderer *view.Renderer
}

// newApplication creates a new application instance with all dependencies initialized.
// A catalog that fails to decode or validate aborts initialization.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.catalog, err = embedded.LoadFrom(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		"categories", len(app.catalog.Categories),
		"endpoints", domain.CountEndpoints(app.catalog.Categories),
		"embedded", cfg.Catalog.Path == "")

	app.categoryStore, err = memory.NewCategoryStore(app.catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category store: %w", err)
	}

	app.catalogService, err = service.NewCatalogService(app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	app.renderer, err = view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create page renderer: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
