package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/testutil"
)

// TestMarketDataService_APIKey tests key resolution precedence.
//
// WHY: Two key sources exist: the environment and the sealed setting. The
// environment must always win, and a missing key must map to the dedicated
// sentinel so handlers can answer 503 instead of a generic 500.
func TestMarketDataService_APIKey(t *testing.T) {
	t.Run("environment key takes precedence", func(t *testing.T) {
		svc := testutil.NewTestMarketDataService(t, testutil.NewMockSecuritiesClient(), "env-key")

		if err := svc.SetAPIKey("stored-key"); err != nil {
			t.Fatalf("SetAPIKey() returned unexpected error: %v", err)
		}

		key, err := svc.APIKey()
		if err != nil {
			t.Fatalf("APIKey() returned unexpected error: %v", err)
		}
		if key != "env-key" {
			t.Errorf("Expected env-key, got %s", key)
		}
	})

	t.Run("stored key round-trips through the sealer", func(t *testing.T) {
		svc := testutil.NewTestMarketDataService(t, testutil.NewMockSecuritiesClient(), "")

		if err := svc.SetAPIKey("stored-key"); err != nil {
			t.Fatalf("SetAPIKey() returned unexpected error: %v", err)
		}

		key, err := svc.APIKey()
		if err != nil {
			t.Fatalf("APIKey() returned unexpected error: %v", err)
		}
		if key != "stored-key" {
			t.Errorf("Expected stored-key, got %s", key)
		}
	})

	t.Run("no key returns ErrAPIKeyNotConfigured", func(t *testing.T) {
		svc := testutil.NewTestMarketDataService(t, testutil.NewMockSecuritiesClient(), "")

		_, err := svc.APIKey()
		if !errors.Is(err, apperrors.ErrAPIKeyNotConfigured) {
			t.Errorf("Expected ErrAPIKeyNotConfigured, got %v", err)
		}

		if svc.APIKeyConfigured() {
			t.Error("Expected APIKeyConfigured to be false")
		}
	})
}

// TestMarketDataService_Search tests the query guard and delegation.
func TestMarketDataService_Search(t *testing.T) {
	t.Run("short query is rejected without a network call", func(t *testing.T) {
		mock := testutil.NewMockSecuritiesClient()
		svc := testutil.NewTestMarketDataService(t, mock, "env-key")

		_, err := svc.Search(context.Background(), " a ")
		if !errors.Is(err, apperrors.ErrQueryTooShort) {
			t.Errorf("Expected ErrQueryTooShort, got %v", err)
		}
		if mock.CallCount != 0 {
			t.Errorf("Expected no client calls, got %d", mock.CallCount)
		}
	})

	t.Run("valid query returns client results", func(t *testing.T) {
		mock := testutil.NewMockSecuritiesClient()
		svc := testutil.NewTestMarketDataService(t, mock, "env-key")

		results, err := svc.Search(context.Background(), "apple")
		if err != nil {
			t.Fatalf("Search() returned unexpected error: %v", err)
		}
		if len(results) != 1 || results[0].Ticker != "AAPL" {
			t.Errorf("Unexpected results: %v", results)
		}
		if mock.CallCount != 1 {
			t.Errorf("Expected 1 client call, got %d", mock.CallCount)
		}
	})
}
