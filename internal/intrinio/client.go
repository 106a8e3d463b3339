// Package intrinio provides a client for the external securities data API
// used to prefill new dividend events and refresh the quote cache.
package intrinio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
)

// maxSearchResults caps the number of search hits returned to the caller.
const maxSearchResults = 10

// KeySource supplies the API key per request, so a key stored through the
// settings endpoint takes effect without restarting.
type KeySource interface {
	APIKey() (string, error)
}

// StaticKey is a KeySource for a fixed key.
type StaticKey string

func (k StaticKey) APIKey() (string, error) {
	return string(k), nil
}

// Client provides methods for querying the securities data provider.
type Client struct {
	baseURL    string
	keys       KeySource
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL.
func NewClient(baseURL string, keys KeySource) *Client {
	return &Client{
		baseURL: baseURL,
		keys:    keys,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Search looks up securities matching the query and returns at most
// maxSearchResults hits.
func (c *Client) Search(ctx context.Context, query string) ([]model.SecuritySearchResult, error) {
	endpoint := fmt.Sprintf("%s/securities/search?query=%s", c.baseURL, url.QueryEscape(query))

	var parsed searchResponse
	if err := c.get(ctx, endpoint, &parsed); err != nil {
		return nil, err
	}

	results := []model.SecuritySearchResult{}
	for _, sec := range parsed.Securities {
		results = append(results, model.SecuritySearchResult{
			Ticker:       sec.Ticker,
			Name:         sec.Name,
			SecurityType: sec.SecurityType,
			Exchange:     sec.Exchange,
		})
		if len(results) == maxSearchResults {
			break
		}
	}

	return results, nil
}

// StockData fetches security metadata and the latest dividend declaration for
// a ticker in parallel and merges them, including the derived safety score.
func (c *Client) StockData(ctx context.Context, ticker string) (model.StockData, error) {
	var security securityResponse
	var dividend dividendResponse

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.get(ctx, fmt.Sprintf("%s/securities/%s", c.baseURL, url.PathEscape(ticker)), &security)
	})
	g.Go(func() error {
		return c.get(ctx, fmt.Sprintf("%s/securities/%s/dividends/latest", c.baseURL, url.PathEscape(ticker)), &dividend)
	})
	if err := g.Wait(); err != nil {
		return model.StockData{}, err
	}

	score := ScoreSafety(security.PayoutRatio, security.DividendYield)

	return model.StockData{
		Ticker:         security.Ticker,
		Name:           security.Name,
		Price:          security.LastPrice,
		DividendYield:  security.DividendYield,
		LatestDividend: dividend.Amount,
		ExDivDate:      dividend.ExDividend,
		PaymentDate:    dividend.PayDate,
		SafetyScore:    &score,
	}, nil
}

// get executes an authenticated GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	key, err := c.keys.APIKey()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("securities API error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("securities API error: status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode securities API response: %w", err)
	}

	return nil
}
