// Package secrets seals small secrets (the stored market-data API key) with
// fernet before they touch the setting table.
package secrets

import (
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// ErrInvalidToken indicates a stored token that fails verification, typically
// because the encryption key changed.
var ErrInvalidToken = errors.New("invalid sealed token")

// Sealer encrypts and decrypts strings with a single fernet key.
type Sealer struct {
	key *fernet.Key
}

// NewSealer creates a Sealer from a base64-encoded fernet key.
func NewSealer(encodedKey string) (*Sealer, error) {
	keys, err := fernet.DecodeKeys(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}
	return &Sealer{key: keys[0]}, nil
}

// NewEphemeralSealer creates a Sealer with a freshly generated key. Secrets
// sealed with it do not survive a restart; intended for development setups
// that omit SETTINGS_ENCRYPTION_KEY.
func NewEphemeralSealer() (*Sealer, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return nil, fmt.Errorf("failed to generate fernet key: %w", err)
	}
	return &Sealer{key: &key}, nil
}

// Seal encrypts and signs a plaintext string.
func (s *Sealer) Seal(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), s.key)
	if err != nil {
		return "", fmt.Errorf("failed to seal secret: %w", err)
	}
	return string(token), nil
}

// Open verifies and decrypts a sealed token. TTL is not enforced; stored
// secrets remain valid until replaced.
func (s *Sealer) Open(token string) (string, error) {
	msg := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{s.key})
	if msg == nil {
		return "", ErrInvalidToken
	}
	return string(msg), nil
}
