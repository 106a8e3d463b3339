package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/repository"
)

// ExportService serializes the full event list to CSV. It consumes the raw
// events, not the aggregated timeline. encoding/csv handles RFC 4180 quoting,
// so embedded commas and quotes in notes survive a round trip.
type ExportService struct {
	store EventStore
}

// NewExportService creates a new ExportService over the provided store.
func NewExportService(store EventStore) *ExportService {
	return &ExportService{store: store}
}

var csvHeader = []string{
	"id", "ticker", "exDate", "payDate", "amount", "yield",
	"yieldOnCost", "price", "received", "status", "notes", "createdAt",
}

// WriteCSV writes the header row followed by one row per event. Absent
// optional fields are emitted as empty cells.
func (s *ExportService) WriteCSV(w io.Writer) error {
	events, err := s.store.ListEvents()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, event := range events {
		if err := writer.Write(eventRecord(event)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func eventRecord(event model.DividendEvent) []string {
	payDate := ""
	if event.PayDate != nil {
		payDate = repository.FormatDate(*event.PayDate)
	}

	return []string{
		event.ID,
		event.Ticker,
		repository.FormatDate(event.ExDate),
		payDate,
		formatFloat(event.Amount),
		formatFloat(event.Yield),
		formatFloat(event.YieldOnCost),
		formatFloat(event.Price),
		strconv.FormatBool(event.Received),
		event.Status,
		event.Notes,
		event.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
