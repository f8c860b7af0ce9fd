package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/handlers"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/metrics"
)

// HealthRoutes registers the unauthenticated probe and metrics endpoints.
func HealthRoutes(router *chi.Mux, healthHandler *handlers.HealthHandler) {
	router.Get("/healthz", healthHandler.HealthzHandler)
	router.Get("/readyz", healthHandler.ReadyzHandler)
	router.Handle("/metrics", metrics.Handler())
}
