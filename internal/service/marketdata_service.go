package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/repository"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/secrets"
)

// SecuritiesClient is the external securities data contract, satisfied by
// the intrinio client.
type SecuritiesClient interface {
	Search(ctx context.Context, query string) ([]model.SecuritySearchResult, error)
	StockData(ctx context.Context, ticker string) (model.StockData, error)
}

// MarketDataService fronts the external securities provider and owns the
// stored API key. A key from the environment takes precedence over one
// stored (fernet-sealed) through the settings endpoint.
type MarketDataService struct {
	client   SecuritiesClient
	settings SettingStore
	sealer   *secrets.Sealer
	envKey   string
}

// NewMarketDataService creates a new MarketDataService.
func NewMarketDataService(client SecuritiesClient, settings SettingStore, sealer *secrets.Sealer, envKey string) *MarketDataService {
	return &MarketDataService{
		client:   client,
		settings: settings,
		sealer:   sealer,
		envKey:   envKey,
	}
}

// SetClient installs the securities client after construction. The client
// resolves its key through this service, so the two cannot be built in one
// step.
func (s *MarketDataService) SetClient(client SecuritiesClient) {
	s.client = client
}

// APIKey resolves the active API key. Implements intrinio.KeySource so the
// client picks up key changes without a restart.
func (s *MarketDataService) APIKey() (string, error) {
	if s.envKey != "" {
		return s.envKey, nil
	}

	sealed, err := s.settings.GetSetting(repository.SettingMarketDataAPIKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			return "", apperrors.ErrAPIKeyNotConfigured
		}
		return "", err
	}

	key, err := s.sealer.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to unseal stored API key: %w", err)
	}
	return key, nil
}

// SetAPIKey seals and stores a user-supplied API key.
func (s *MarketDataService) SetAPIKey(key string) error {
	sealed, err := s.sealer.Seal(key)
	if err != nil {
		return err
	}
	return s.settings.SetSetting(repository.SettingMarketDataAPIKey, sealed)
}

// APIKeyConfigured reports whether a usable API key is available, without
// exposing it.
func (s *MarketDataService) APIKeyConfigured() bool {
	_, err := s.APIKey()
	return err == nil
}

// Search looks up securities matching the query. Queries under two
// characters are rejected before touching the network.
func (s *MarketDataService) Search(ctx context.Context, query string) ([]model.SecuritySearchResult, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, apperrors.ErrQueryTooShort
	}
	return s.client.Search(ctx, query)
}

// StockData fetches the merged security and latest-dividend data for a
// ticker.
func (s *MarketDataService) StockData(ctx context.Context, ticker string) (model.StockData, error) {
	return s.client.StockData(ctx, ticker)
}
