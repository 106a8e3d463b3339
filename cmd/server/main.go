package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/config"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/database"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/intrinio"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/repository"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/secrets"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Select the event store backend once at startup
	var db *sql.DB
	var eventStore service.EventStore
	var quoteStore service.QuoteStore
	var settingStore service.SettingStore

	switch cfg.Database.Backend {
	case config.BackendSQLite:
		db, err = database.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		log.Printf("Connected to database: %s", cfg.Database.Path)

		eventStore = repository.NewEventRepository(db)
		quoteStore = repository.NewQuoteRepository(db)
		settingStore = repository.NewSettingRepository(db)

	case config.BackendMemory:
		memEvents := repository.NewMemoryEventRepository()
		if cfg.Database.DemoSeed {
			memEvents.SeedDemo(time.Now().UTC())
			log.Println("Seeded in-memory store with demo events")
		}

		eventStore = memEvents
		quoteStore = repository.NewMemoryQuoteRepository()
		settingStore = repository.NewMemorySettingRepository()

		log.Println("Using in-memory event store")
	}

	// Sealer for secrets stored through the settings endpoint
	var sealer *secrets.Sealer
	if cfg.Secrets.SettingsKey != "" {
		sealer, err = secrets.NewSealer(cfg.Secrets.SettingsKey)
		if err != nil {
			log.Fatalf("Failed to decode SETTINGS_ENCRYPTION_KEY: %v", err)
		}
	} else {
		sealer, err = secrets.NewEphemeralSealer()
		if err != nil {
			log.Fatalf("Failed to generate settings key: %v", err)
		}
		log.Println("SETTINGS_ENCRYPTION_KEY not set; stored API keys will not survive a restart")
	}

	// Create services
	systemService := service.NewSystemService(db)
	eventService := service.NewEventService(eventStore)
	timelineService := service.NewTimelineService(eventStore)
	exportService := service.NewExportService(eventStore)

	marketDataService := service.NewMarketDataService(nil, settingStore, sealer, cfg.MarketData.APIKey)
	securitiesClient := intrinio.NewClient(cfg.MarketData.BaseURL, marketDataService)
	marketDataService.SetClient(securitiesClient)

	quoteService := service.NewQuoteService(quoteStore, eventStore, marketDataService)

	// Scheduled quote refresh
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Scheduler.QuoteRefresh, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := quoteService.RefreshAll(ctx); err != nil {
			log.Printf("Scheduled quote refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule quote refresh %q: %v", cfg.Scheduler.QuoteRefresh, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Warm the quote cache once at startup so the first page load has data.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := quoteService.RefreshAll(ctx); err != nil {
			log.Printf("Initial quote refresh failed: %v", err)
		}
	}()

	// Create router
	router := api.NewRouter(systemService, eventService, timelineService, exportService, marketDataService, quoteService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
