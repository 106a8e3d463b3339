package repository

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
	"github.com/google/uuid"
)

// MemoryEventRepository is an in-memory event store used for demo setups and
// tests. It satisfies the same contract as the sqlite EventRepository.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]model.DividendEvent
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{
		events: make(map[string]model.DividendEvent),
	}
}

var demoTickers = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "BRK.B", "JNJ", "JPM", "PG", "XOM", "INTC"}

// SeedDemo populates the store with randomized sample dividend events over
// the trailing six months plus two cash contributions, mirroring the demo
// dataset users see before connecting real storage.
func (r *MemoryEventRepository) SeedDemo(now time.Time) {
	rng := rand.New(rand.NewSource(now.UnixNano()))

	for i := 0; i < 15; i++ {
		ticker := demoTickers[rng.Intn(len(demoTickers))]

		exDate := now.AddDate(0, -rng.Intn(6), 0)
		payDate := exDate.AddDate(0, 1, 0)

		price := 50 + rng.Float64()*150
		amount := (price * (0.01 + rng.Float64()*0.03)) / 4 // quarterly payout
		yield := (amount * 4 / price) * 100

		status := model.StatusConfirmed
		if rng.Float64() > 0.7 {
			status = model.StatusProjected
		}

		event := model.DividendEvent{
			ID:          uuid.New().String(),
			Ticker:      ticker,
			ExDate:      dateOnly(exDate),
			PayDate:     timePtr(dateOnly(payDate)),
			Amount:      &amount,
			Yield:       &yield,
			YieldOnCost: &yield,
			Price:       &price,
			Received:    rng.Float64() > 0.5,
			Status:      status,
			CreatedAt:   now.UTC(),
		}
		r.events[event.ID] = event
	}

	contributions := []struct {
		monthsAgo int
		amount    float64
		notes     string
	}{
		{2, 1000, "Initial Roth Contribution"},
		{1, 500, "Reinvested dividends"},
	}
	for _, c := range contributions {
		amount := c.amount
		event := model.DividendEvent{
			ID:        uuid.New().String(),
			Ticker:    model.TickerCash,
			ExDate:    dateOnly(now.AddDate(0, -c.monthsAgo, 0)),
			Amount:    &amount,
			Price:     &amount,
			Received:  true,
			Status:    model.StatusConfirmed,
			Notes:     c.notes,
			CreatedAt: now.UTC(),
		}
		r.events[event.ID] = event
	}
}

func (r *MemoryEventRepository) ListEvents() ([]model.DividendEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]model.DividendEvent, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].ExDate.Equal(events[j].ExDate) {
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		}
		return events[i].ExDate.Before(events[j].ExDate)
	})
	return events, nil
}

func (r *MemoryEventRepository) GetEvent(id string) (model.DividendEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return model.DividendEvent{}, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (r *MemoryEventRepository) CreateEvent(event model.DividendEvent) (model.DividendEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[event.ID] = event
	return event, nil
}

func (r *MemoryEventRepository) UpdateEvent(event model.DividendEvent) (model.DividendEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.ID]; !ok {
		return model.DividendEvent{}, apperrors.ErrEventNotFound
	}
	r.events[event.ID] = event
	return event, nil
}

func (r *MemoryEventRepository) DeleteEvent(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *MemoryEventRepository) Tickers() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	tickers := []string{}
	for _, event := range r.events {
		if event.Ticker == model.TickerCash || seen[event.Ticker] {
			continue
		}
		seen[event.Ticker] = true
		tickers = append(tickers, event.Ticker)
	}
	sort.Strings(tickers)
	return tickers, nil
}

// MemoryQuoteRepository is the in-memory counterpart of QuoteRepository.
type MemoryQuoteRepository struct {
	mu     sync.RWMutex
	quotes map[string]model.Quote
}

func NewMemoryQuoteRepository() *MemoryQuoteRepository {
	return &MemoryQuoteRepository{quotes: make(map[string]model.Quote)}
}

func (r *MemoryQuoteRepository) GetQuote(ticker string) (model.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quote, ok := r.quotes[ticker]
	if !ok {
		return model.Quote{}, apperrors.ErrQuoteNotFound
	}
	return quote, nil
}

func (r *MemoryQuoteRepository) UpsertQuote(ticker string, price, dividendYield float64) (model.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quote := model.Quote{
		ID:            uuid.New().String(),
		Ticker:        ticker,
		Price:         price,
		DividendYield: dividendYield,
		UpdatedAt:     time.Now().UTC(),
	}
	if existing, ok := r.quotes[ticker]; ok {
		quote.ID = existing.ID
	}
	r.quotes[ticker] = quote
	return quote, nil
}

// MemorySettingRepository is the in-memory counterpart of SettingRepository.
type MemorySettingRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySettingRepository() *MemorySettingRepository {
	return &MemorySettingRepository{values: make(map[string]string)}
}

func (r *MemorySettingRepository) GetSetting(key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return "", apperrors.ErrSettingNotFound
	}
	return value, nil
}

func (r *MemorySettingRepository) SetSetting(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
