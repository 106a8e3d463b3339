package secrets_test

import (
	"errors"
	"testing"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/secrets"
)

// TestSealer_RoundTrip verifies that a sealed secret opens back to the
// original plaintext and that the token is not the plaintext itself.
func TestSealer_RoundTrip(t *testing.T) {
	sealer, err := secrets.NewEphemeralSealer()
	if err != nil {
		t.Fatalf("NewEphemeralSealer() returned unexpected error: %v", err)
	}

	token, err := sealer.Seal("super-secret-api-key")
	if err != nil {
		t.Fatalf("Seal() returned unexpected error: %v", err)
	}
	if token == "super-secret-api-key" {
		t.Fatal("Sealed token must not equal the plaintext")
	}

	plaintext, err := sealer.Open(token)
	if err != nil {
		t.Fatalf("Open() returned unexpected error: %v", err)
	}
	if plaintext != "super-secret-api-key" {
		t.Errorf("Expected original plaintext, got %q", plaintext)
	}
}

// TestSealer_WrongKey verifies tokens sealed under one key fail under another.
func TestSealer_WrongKey(t *testing.T) {
	sealerA, err := secrets.NewEphemeralSealer()
	if err != nil {
		t.Fatalf("NewEphemeralSealer() returned unexpected error: %v", err)
	}
	sealerB, err := secrets.NewEphemeralSealer()
	if err != nil {
		t.Fatalf("NewEphemeralSealer() returned unexpected error: %v", err)
	}

	token, err := sealerA.Seal("secret")
	if err != nil {
		t.Fatalf("Seal() returned unexpected error: %v", err)
	}

	if _, err := sealerB.Open(token); !errors.Is(err, secrets.ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

// TestNewSealer_BadKey verifies malformed keys are rejected at construction.
func TestNewSealer_BadKey(t *testing.T) {
	if _, err := secrets.NewSealer("not-base64!!"); err == nil {
		t.Error("Expected an error for a malformed key")
	}
}
