package service_test

import (
	"errors"
	"testing"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/request"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/repository"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/testutil"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

// TestEventService_CreateEvent tests event creation from request payloads.
//
// WHY: Creation is where request strings become typed model fields. Date
// parsing, ID assignment, and the status default all happen here.
func TestEventService_CreateEvent(t *testing.T) {
	t.Run("creates event with all fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestEventService(t, db)

		event, err := svc.CreateEvent(request.CreateEventRequest{
			Ticker:   "AAPL",
			ExDate:   "2024-02-09",
			PayDate:  "2024-02-15",
			Amount:   floatPtr(0.24),
			Yield:    floatPtr(0.55),
			Price:    floatPtr(188.12),
			Received: true,
			Status:   model.StatusConfirmed,
			Notes:    "regular quarterly",
		})
		if err != nil {
			t.Fatalf("CreateEvent() returned unexpected error: %v", err)
		}

		if event.ID == "" {
			t.Error("Expected an assigned ID")
		}
		if repository.FormatDate(event.ExDate) != "2024-02-09" {
			t.Errorf("Expected exDate 2024-02-09, got %s", repository.FormatDate(event.ExDate))
		}
		if event.PayDate == nil || repository.FormatDate(*event.PayDate) != "2024-02-15" {
			t.Errorf("Expected payDate 2024-02-15, got %v", event.PayDate)
		}
		if !event.Received {
			t.Error("Expected received true")
		}
	})

	t.Run("defaults status to Confirmed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestEventService(t, db)

		event, err := svc.CreateEvent(request.CreateEventRequest{
			Ticker: "MSFT",
			ExDate: "2024-02-15",
		})
		if err != nil {
			t.Fatalf("CreateEvent() returned unexpected error: %v", err)
		}

		if event.Status != model.StatusConfirmed {
			t.Errorf("Expected default status Confirmed, got %s", event.Status)
		}
		if event.PayDate != nil {
			t.Errorf("Expected nil payDate, got %v", *event.PayDate)
		}
	})

	t.Run("rejects malformed ex-date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestEventService(t, db)

		_, err := svc.CreateEvent(request.CreateEventRequest{
			Ticker: "AAPL",
			ExDate: "02/09/2024",
		})
		if !errors.Is(err, apperrors.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate, got %v", err)
		}
	})
}

// TestEventService_CreateCashEvent tests the cash contribution shape.
//
// WHY: Cash contributions drive the cash-utilized series via the price
// field. The service must mirror amount into price and mark the event as
// received and confirmed.
func TestEventService_CreateCashEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestEventService(t, db)

	event, err := svc.CreateCashEvent(request.CreateCashEventRequest{
		Amount: floatPtr(1000),
		Date:   "2024-01-02",
		Notes:  "Initial Roth Contribution",
	})
	if err != nil {
		t.Fatalf("CreateCashEvent() returned unexpected error: %v", err)
	}

	if event.Ticker != model.TickerCash {
		t.Errorf("Expected CASH ticker, got %s", event.Ticker)
	}
	if event.Amount == nil || *event.Amount != 1000 {
		t.Errorf("Expected amount 1000, got %v", event.Amount)
	}
	if event.Price == nil || *event.Price != 1000 {
		t.Errorf("Expected price mirroring amount, got %v", event.Price)
	}
	if !event.Received || event.Status != model.StatusConfirmed {
		t.Errorf("Expected received/confirmed, got received=%v status=%s", event.Received, event.Status)
	}
	if event.Notes != "Initial Roth Contribution" {
		t.Errorf("Unexpected notes %q", event.Notes)
	}
}

// TestEventService_UpdateEvent tests partial updates.
//
// WHY: Updates are field-by-field merges driven by pointer presence. An
// omitted field must stay untouched, and an explicit empty payDate must
// clear the stored date.
func TestEventService_UpdateEvent(t *testing.T) {
	t.Run("only provided fields change", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestEventService(t, db)
		repo := repository.NewEventRepository(db)

		created := testutil.NewEvent().
			WithTicker("AAPL").
			WithExDate("2024-02-09").
			WithAmount(0.24).
			WithNotes("keep me").
			Build(t, repo)

		updated, err := svc.UpdateEvent(created.ID, request.UpdateEventRequest{
			Amount: floatPtr(0.25),
		})
		if err != nil {
			t.Fatalf("UpdateEvent() returned unexpected error: %v", err)
		}

		if updated.Amount == nil || *updated.Amount != 0.25 {
			t.Errorf("Expected amount 0.25, got %v", updated.Amount)
		}
		if updated.Ticker != "AAPL" {
			t.Errorf("Ticker changed unexpectedly to %s", updated.Ticker)
		}
		if updated.Notes != "keep me" {
			t.Errorf("Notes changed unexpectedly to %q", updated.Notes)
		}
	})

	t.Run("empty payDate clears the field", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestEventService(t, db)
		repo := repository.NewEventRepository(db)

		created := testutil.NewEvent().WithPayDate("2024-02-15").Build(t, repo)

		updated, err := svc.UpdateEvent(created.ID, request.UpdateEventRequest{
			PayDate: strPtr(""),
		})
		if err != nil {
			t.Fatalf("UpdateEvent() returned unexpected error: %v", err)
		}

		if updated.PayDate != nil {
			t.Errorf("Expected payDate cleared, got %v", *updated.PayDate)
		}
	})

	t.Run("toggling received flips the flag", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestEventService(t, db)
		repo := repository.NewEventRepository(db)

		created := testutil.NewEvent().Build(t, repo)
		received := true

		updated, err := svc.UpdateEvent(created.ID, request.UpdateEventRequest{
			Received: &received,
		})
		if err != nil {
			t.Fatalf("UpdateEvent() returned unexpected error: %v", err)
		}
		if !updated.Received {
			t.Error("Expected received true after update")
		}
	})

	t.Run("missing event returns ErrEventNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestEventService(t, db)

		_, err := svc.UpdateEvent(testutil.MakeID(), request.UpdateEventRequest{})
		if !errors.Is(err, apperrors.ErrEventNotFound) {
			t.Errorf("Expected ErrEventNotFound, got %v", err)
		}
	})
}

// TestEventService_DeleteEvent covers delete and the not-found path.
func TestEventService_DeleteEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestEventService(t, db)
	repo := repository.NewEventRepository(db)

	created := testutil.NewEvent().Build(t, repo)

	if err := svc.DeleteEvent(created.ID); err != nil {
		t.Fatalf("DeleteEvent() returned unexpected error: %v", err)
	}

	if err := svc.DeleteEvent(created.ID); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("Expected ErrEventNotFound on second delete, got %v", err)
	}
}
