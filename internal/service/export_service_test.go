package service_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/repository"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/testutil"
)

// TestExportService_WriteCSV tests the CSV export document.
//
// WHY: Notes are free-form text and regularly contain commas and quotes.
// The export must produce a parseable document where such values survive a
// round trip instead of shifting columns.
func TestExportService_WriteCSV(t *testing.T) {
	t.Run("header only for empty store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExportService(t, db)

		var buf bytes.Buffer
		if err := svc.WriteCSV(&buf); err != nil {
			t.Fatalf("WriteCSV() returned unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("Export is not valid CSV: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Expected header row only, got %d rows", len(records))
		}
		if records[0][0] != "id" || records[0][1] != "ticker" {
			t.Errorf("Unexpected header: %v", records[0])
		}
	})

	t.Run("notes with commas and quotes survive a round trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExportService(t, db)
		repo := repository.NewEventRepository(db)

		notes := `special "one-time" payout, reinvested`
		testutil.NewEvent().WithTicker("KO").WithNotes(notes).Build(t, repo)

		var buf bytes.Buffer
		if err := svc.WriteCSV(&buf); err != nil {
			t.Fatalf("WriteCSV() returned unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("Export is not valid CSV: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("Expected header plus one row, got %d rows", len(records))
		}

		row := records[1]
		if row[1] != "KO" {
			t.Errorf("Expected ticker KO, got %s", row[1])
		}
		if row[10] != notes {
			t.Errorf("Notes did not survive round trip: %q", row[10])
		}
	})

	t.Run("absent optional fields are empty cells", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExportService(t, db)
		repo := repository.NewEventRepository(db)

		testutil.NewEvent().WithoutAmount().Build(t, repo)

		var buf bytes.Buffer
		if err := svc.WriteCSV(&buf); err != nil {
			t.Fatalf("WriteCSV() returned unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("Export is not valid CSV: %v", err)
		}

		row := records[1]
		// payDate, amount, yield, yieldOnCost columns
		for _, idx := range []int{3, 4, 5, 6} {
			if row[idx] != "" {
				t.Errorf("Expected empty cell at column %d, got %q", idx, row[idx])
			}
		}
	})

	t.Run("one row per event in ex-date order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExportService(t, db)
		repo := repository.NewEventRepository(db)

		testutil.NewEvent().WithTicker("B").WithExDate("2024-03-01").Build(t, repo)
		testutil.NewEvent().WithTicker("A").WithExDate("2024-01-01").Build(t, repo)

		var buf bytes.Buffer
		if err := svc.WriteCSV(&buf); err != nil {
			t.Fatalf("WriteCSV() returned unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("Expected 3 lines, got %d", len(lines))
		}
		if !strings.Contains(lines[1], "A") || !strings.Contains(lines[2], "B") {
			t.Errorf("Rows not in ex-date order: %v", lines[1:])
		}
	})
}
