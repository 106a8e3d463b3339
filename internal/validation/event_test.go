package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/request"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/validation"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

// TestValidateCreateEvent covers required fields, date formats, and the
// non-negative numeric constraints.
func TestValidateCreateEvent(t *testing.T) {
	valid := request.CreateEventRequest{
		Ticker: "AAPL",
		ExDate: "2024-02-09",
	}

	t.Run("accepts a minimal valid request", func(t *testing.T) {
		if err := validation.ValidateCreateEvent(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	tests := []struct {
		name     string
		mutate   func(r *request.CreateEventRequest)
		wantField string
	}{
		{
			name:     "missing ticker",
			mutate:   func(r *request.CreateEventRequest) { r.Ticker = "  " },
			wantField: "ticker",
		},
		{
			name:     "missing exDate",
			mutate:   func(r *request.CreateEventRequest) { r.ExDate = "" },
			wantField: "exDate",
		},
		{
			name:     "malformed exDate",
			mutate:   func(r *request.CreateEventRequest) { r.ExDate = "02/09/2024" },
			wantField: "exDate",
		},
		{
			name:     "malformed payDate",
			mutate:   func(r *request.CreateEventRequest) { r.PayDate = "Feb 15" },
			wantField: "payDate",
		},
		{
			name:     "negative amount",
			mutate:   func(r *request.CreateEventRequest) { r.Amount = floatPtr(-0.01) },
			wantField: "amount",
		},
		{
			name:     "negative price",
			mutate:   func(r *request.CreateEventRequest) { r.Price = floatPtr(-1) },
			wantField: "price",
		},
		{
			name:     "unknown status",
			mutate:   func(r *request.CreateEventRequest) { r.Status = "Maybe" },
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validation.ValidateCreateEvent(req)
			if err == nil {
				t.Fatal("Expected a validation error")
			}

			var vErr *validation.Error
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := vErr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected error on field %q, got %v", tt.wantField, vErr.Fields)
			}
		})
	}

	t.Run("zero amount is allowed", func(t *testing.T) {
		req := valid
		req.Amount = floatPtr(0)
		if err := validation.ValidateCreateEvent(req); err != nil {
			t.Errorf("Expected no error for zero amount, got %v", err)
		}
	})
}

// TestValidateUpdateEvent covers the pointer-field semantics.
func TestValidateUpdateEvent(t *testing.T) {
	t.Run("empty request is valid", func(t *testing.T) {
		if err := validation.ValidateUpdateEvent(request.UpdateEventRequest{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("empty payDate is valid and means clear", func(t *testing.T) {
		req := request.UpdateEventRequest{PayDate: strPtr("")}
		if err := validation.ValidateUpdateEvent(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("blank ticker is rejected", func(t *testing.T) {
		req := request.UpdateEventRequest{Ticker: strPtr(" ")}
		if err := validation.ValidateUpdateEvent(req); err == nil {
			t.Error("Expected a validation error")
		}
	})

	t.Run("malformed exDate is rejected", func(t *testing.T) {
		req := request.UpdateEventRequest{ExDate: strPtr("yesterday")}
		if err := validation.ValidateUpdateEvent(req); err == nil {
			t.Error("Expected a validation error")
		}
	})
}

// TestValidateCreateCashEvent covers the cash contribution constraints.
func TestValidateCreateCashEvent(t *testing.T) {
	t.Run("accepts a valid contribution", func(t *testing.T) {
		req := request.CreateCashEventRequest{Amount: floatPtr(1000), Date: "2024-01-02"}
		if err := validation.ValidateCreateCashEvent(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("amount is required and must be positive", func(t *testing.T) {
		for _, req := range []request.CreateCashEventRequest{
			{Date: "2024-01-02"},
			{Amount: floatPtr(0), Date: "2024-01-02"},
			{Amount: floatPtr(-5), Date: "2024-01-02"},
		} {
			if err := validation.ValidateCreateCashEvent(req); err == nil {
				t.Errorf("Expected a validation error for amount %v", req.Amount)
			}
		}
	})

	t.Run("date is required", func(t *testing.T) {
		req := request.CreateCashEventRequest{Amount: floatPtr(100)}
		err := validation.ValidateCreateCashEvent(req)
		if err == nil {
			t.Fatal("Expected a validation error")
		}
		if !strings.Contains(err.Error(), "date") {
			t.Errorf("Expected date mentioned in error, got %v", err)
		}
	})
}
