package testutil

import (
	"context"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
)

// MockSecuritiesClient is a mock implementation of service.SecuritiesClient.
// It returns predefined test data instead of making actual API calls.
type MockSecuritiesClient struct {
	SearchResults []model.SecuritySearchResult
	Stock         model.StockData
	// MockError is returned from both methods when set
	MockError error
	// CallCount tracks how many times either method was called
	CallCount int
}

// NewMockSecuritiesClient creates a mock with a single plausible result set.
func NewMockSecuritiesClient() *MockSecuritiesClient {
	yield := 0.0058
	payout := 0.25
	return &MockSecuritiesClient{
		SearchResults: []model.SecuritySearchResult{
			{Ticker: "AAPL", Name: "Apple Inc"},
		},
		Stock: model.StockData{
			Ticker:         "AAPL",
			Name:           "Apple Inc",
			Price:          190.50,
			DividendYield:  yield,
			LatestDividend: 0.25,
			ExDivDate:      "2024-02-09",
			PaymentDate:    "2024-02-15",
			SafetyScore: &model.DividendSafetyScore{
				Score:       90,
				PayoutRatio: &payout,
				Rating:      model.SafetyRatingHigh,
			},
		},
	}
}

// WithError configures the mock to return the specified error.
func (m *MockSecuritiesClient) WithError(err error) *MockSecuritiesClient {
	m.MockError = err
	return m
}

// Search returns the configured results.
func (m *MockSecuritiesClient) Search(_ context.Context, _ string) ([]model.SecuritySearchResult, error) {
	m.CallCount++
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.SearchResults, nil
}

// StockData returns the configured stock data.
func (m *MockSecuritiesClient) StockData(_ context.Context, _ string) (model.StockData, error) {
	m.CallCount++
	if m.MockError != nil {
		return model.StockData{}, m.MockError
	}
	return m.Stock, nil
}
