package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/divitrack/Dividend-Tracker-Backend/internal/api/middleware"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/config"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	eventService *service.EventService,
	timelineService *service.TimelineService,
	exportService *service.ExportService,
	marketDataService *service.MarketDataService,
	quoteService *service.QuoteService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/events", func(r chi.Router) {
			eventHandler := handlers.NewEventHandler(eventService, exportService)
			r.Get("/", eventHandler.ListEvents)
			r.Post("/", eventHandler.CreateEvent)
			r.Post("/cash", eventHandler.CreateCashEvent)
			r.Get("/export", eventHandler.ExportCSV)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", eventHandler.GetEvent)
				r.Put("/", eventHandler.UpdateEvent)
				r.Delete("/", eventHandler.DeleteEvent)
			})
		})

		timelineHandler := handlers.NewTimelineHandler(timelineService)
		r.Get("/timeline", timelineHandler.Timeline)
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", timelineHandler.Calendar)
			r.Get("/{date}", timelineHandler.CalendarDay)
		})

		r.Route("/security", func(r chi.Router) {
			securityHandler := handlers.NewSecurityHandler(marketDataService)
			r.Get("/search", securityHandler.Search)
			r.Get("/{ticker}", securityHandler.StockData)
		})

		quoteHandler := handlers.NewQuoteHandler(quoteService)
		r.Get("/quote/{ticker}", quoteHandler.GetQuote)

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(marketDataService)
			r.Get("/api-key", settingsHandler.GetAPIKeyStatus)
			r.Put("/api-key", settingsHandler.SetAPIKey)
		})
	})

	return r
}
