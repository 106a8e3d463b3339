package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/repository"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/secrets"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/service"
)

// MakeID generates a unique ID for test entities.
func MakeID() string {
	return uuid.New().String()
}

// Date parses a YYYY-MM-DD string into a UTC time, panicking on bad input.
// Intended for test fixtures only.
func Date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d.UTC()
}

func NewTestEventService(t *testing.T, db *sql.DB) *service.EventService {
	t.Helper()

	return service.NewEventService(repository.NewEventRepository(db))
}

func NewTestTimelineService(t *testing.T, db *sql.DB) *service.TimelineService {
	t.Helper()

	return service.NewTimelineService(repository.NewEventRepository(db))
}

func NewTestExportService(t *testing.T, db *sql.DB) *service.ExportService {
	t.Helper()

	return service.NewExportService(repository.NewEventRepository(db))
}

// NewTestMarketDataService creates a MarketDataService backed by an in-memory
// setting store and an ephemeral sealer. Pass a mock securities client to
// avoid real API calls.
func NewTestMarketDataService(t *testing.T, client service.SecuritiesClient, envKey string) *service.MarketDataService {
	t.Helper()

	sealer, err := secrets.NewEphemeralSealer()
	if err != nil {
		t.Fatalf("Failed to create test sealer: %v", err)
	}

	return service.NewMarketDataService(client, repository.NewMemorySettingRepository(), sealer, envKey)
}
