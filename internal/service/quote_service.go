package service

import (
	"context"
	"fmt"
	"log"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
)

// QuoteService maintains the cached quotes for every ticker present in the
// event store. RefreshAll is invoked by the cron scheduler.
type QuoteService struct {
	quotes QuoteStore
	events EventStore
	market *MarketDataService
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(quotes QuoteStore, events EventStore, market *MarketDataService) *QuoteService {
	return &QuoteService{
		quotes: quotes,
		events: events,
		market: market,
	}
}

// GetQuote returns the cached quote for a ticker.
func (s *QuoteService) GetQuote(ticker string) (model.Quote, error) {
	return s.quotes.GetQuote(ticker)
}

// RefreshAll fetches fresh market data for every distinct ticker in the
// event store and upserts the quote cache. A failure for one ticker is
// logged and skipped so the remaining tickers still refresh; an error is
// returned only when no ticker could be refreshed at all.
func (s *QuoteService) RefreshAll(ctx context.Context) error {
	tickers, err := s.events.Tickers()
	if err != nil {
		return err
	}
	if len(tickers) == 0 {
		return nil
	}

	refreshed := 0
	for _, ticker := range tickers {
		data, err := s.market.StockData(ctx, ticker)
		if err != nil {
			log.Printf("quote refresh: skipping %s: %v", ticker, err)
			continue
		}

		if _, err := s.quotes.UpsertQuote(ticker, data.Price, data.DividendYield); err != nil {
			log.Printf("quote refresh: failed to store %s: %v", ticker, err)
			continue
		}
		refreshed++
	}

	if refreshed == 0 {
		return fmt.Errorf("no quotes refreshed for %d tickers", len(tickers))
	}

	log.Printf("quote refresh: updated %d/%d tickers", refreshed, len(tickers))
	return nil
}
