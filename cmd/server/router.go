package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/apiref/internal/api"
	"github.com/phrazzld/apiref/internal/api/shared"
	apiMiddleware "github.com/phrazzld/apiref/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	categoryHandler := api.NewCategoryHandler(app.catalogService, app.logger)
	pageHandler := api.NewPageHandler(
		app.catalogService,
		app.renderer,
		app.config.View.HeaderOffset,
		app.logger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", categoryHandler.ListCategories)
		r.Get("/categories/{id}", categoryHandler.GetCategory)
		r.Get("/endpoints/{id}", categoryHandler.GetEndpoint)
		r.Get("/search", categoryHandler.Search)
		r.Get("/document", categoryHandler.GetDocument)

		// API clients get JSON errors instead of chi's plain-text defaults.
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
		})
	})

	r.Get("/", pageHandler.ServePage)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
