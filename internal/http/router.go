package http

import (
	"net/http"

	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/metrics"
	"usage-analytics/internal/summaries"
	"usage-analytics/internal/trackers"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(trackingService trackers.TrackingService, queryService summaries.SummaryQueryService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	trackEventHandler := NewTrackEventHandler(trackingService)
	summaryHandler := NewSummaryHandler(queryService)

	// Routes
	router.Post("/events", errorHandlingAdapter(trackEventHandler))
	router.Get("/summary/{dimension}", errorHandlingAdapter(summaryHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
