package testutil

import (
	"testing"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
)

// EventStore is the subset of the event store contract the builders need.
type EventStore interface {
	CreateEvent(event model.DividendEvent) (model.DividendEvent, error)
}

// EventBuilder provides a fluent interface for creating test dividend events.
//
// Example usage:
//
//	// Simple creation with defaults
//	event := testutil.NewEvent().Build(t, store)
//
//	// Customized event
//	event := testutil.NewEvent().
//	    WithTicker("MSFT").
//	    WithExDate("2024-02-15").
//	    WithAmount(0.75).
//	    Received().
//	    Build(t, store)
type EventBuilder struct {
	ID       string
	Ticker   string
	ExDate   time.Time
	PayDate  *time.Time
	Amount   *float64
	Yield    *float64
	Price    *float64
	received bool
	Status   string
	Notes    string
}

// NewEvent creates an EventBuilder with sensible defaults.
func NewEvent() *EventBuilder {
	amount := 0.50
	return &EventBuilder{
		ID:     MakeID(),
		Ticker: "AAPL",
		ExDate: Date("2024-01-15"),
		Amount: &amount,
		Status: model.StatusConfirmed,
	}
}

// WithID sets a custom ID.
func (b *EventBuilder) WithID(id string) *EventBuilder {
	b.ID = id
	return b
}

// WithTicker sets a custom ticker.
func (b *EventBuilder) WithTicker(ticker string) *EventBuilder {
	b.Ticker = ticker
	return b
}

// WithExDate sets the ex-dividend date from a YYYY-MM-DD string.
func (b *EventBuilder) WithExDate(date string) *EventBuilder {
	b.ExDate = Date(date)
	return b
}

// WithPayDate sets the payment date from a YYYY-MM-DD string.
func (b *EventBuilder) WithPayDate(date string) *EventBuilder {
	d := Date(date)
	b.PayDate = &d
	return b
}

// WithAmount sets the dividend amount.
func (b *EventBuilder) WithAmount(amount float64) *EventBuilder {
	b.Amount = &amount
	return b
}

// WithoutAmount clears the dividend amount.
func (b *EventBuilder) WithoutAmount() *EventBuilder {
	b.Amount = nil
	return b
}

// WithYield sets the dividend yield.
func (b *EventBuilder) WithYield(yield float64) *EventBuilder {
	b.Yield = &yield
	return b
}

// WithPrice sets the purchase share price.
func (b *EventBuilder) WithPrice(price float64) *EventBuilder {
	b.Price = &price
	return b
}

// WithStatus sets the event status.
func (b *EventBuilder) WithStatus(status string) *EventBuilder {
	b.Status = status
	return b
}

// WithNotes sets the free-form notes.
func (b *EventBuilder) WithNotes(notes string) *EventBuilder {
	b.Notes = notes
	return b
}

// Received marks the event's cash as received.
func (b *EventBuilder) Received() *EventBuilder {
	b.received = true
	return b
}

// Projected marks the event as projected and not yet received.
func (b *EventBuilder) Projected() *EventBuilder {
	b.Status = model.StatusProjected
	b.received = false
	return b
}

// Cash turns the builder into a cash contribution for the given amount.
func (b *EventBuilder) Cash(amount float64) *EventBuilder {
	b.Ticker = model.TickerCash
	b.Amount = &amount
	b.Price = &amount
	b.received = true
	b.Status = model.StatusConfirmed
	return b
}

// Event returns the built event without storing it.
func (b *EventBuilder) Event() model.DividendEvent {
	return model.DividendEvent{
		ID:        b.ID,
		Ticker:    b.Ticker,
		ExDate:    b.ExDate,
		PayDate:   b.PayDate,
		Amount:    b.Amount,
		Yield:     b.Yield,
		Price:     b.Price,
		Received:  b.received,
		Status:    b.Status,
		Notes:     b.Notes,
		CreatedAt: time.Now().UTC(),
	}
}

// Build creates the event in the store and returns it.
func (b *EventBuilder) Build(t *testing.T, store EventStore) model.DividendEvent {
	t.Helper()

	created, err := store.CreateEvent(b.Event())
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return created
}
