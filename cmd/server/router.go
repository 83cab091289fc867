package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/srs-calc/internal/api"
	apiMiddleware "github.com/phrazzld/srs-calc/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(
		apiMiddleware.NewTraceMiddleware(app.logger),
	) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	reviewHandler := api.NewReviewHandler(app.srsService, app.codecs, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Historical plain-text endpoint: JSON in (legacy srs string),
		// "[[date:YYYY-MM-DD]] F.FF/I.II" out. The GET form takes the same
		// inputs via the query string.
		r.Post("/calculate", reviewHandler.Calculate)
		r.Get("/calculate", reviewHandler.CalculateFromQuery)

		// Structured variant: JSON in, JSON out
		r.Post("/reviews", reviewHandler.SubmitReview)
	})

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
