package model

import "time"

// Ticker sentinel for cash contributions. Cash events carry no market data
// and are always created as received/confirmed.
const TickerCash = "CASH"

// Event status values. Status is independent of Received: a projected event
// still counts toward forward-looking totals.
const (
	StatusConfirmed = "Confirmed"
	StatusProjected = "Projected"
)

// DividendEvent represents a single dividend or cash-contribution record.
// ExDate is the anchor date of the record; for cash events it is the
// contribution date. Optional numeric fields are pointers so that an absent
// value is distinguishable from zero.
type DividendEvent struct {
	ID          string     `json:"id,omitempty"`          // Assigned by the event store on creation
	Ticker      string     `json:"ticker"`                // Symbol, or "CASH" for contributions
	ExDate      time.Time  `json:"exDate"`                // Ex-dividend date (anchor date)
	PayDate     *time.Time `json:"payDate,omitempty"`     // Payment date, if known
	Amount      *float64   `json:"amount,omitempty"`      // Dividend or cash amount
	Yield       *float64   `json:"yield,omitempty"`       // Dividend yield, percent
	YieldOnCost *float64   `json:"yieldOnCost,omitempty"` // Yield on cost, percent
	Price       *float64   `json:"price,omitempty"`       // Share price at purchase
	Received    bool       `json:"received"`              // Cash actually received vs scheduled
	Status      string     `json:"status"`                // "Confirmed" or "Projected"
	Notes       string     `json:"notes,omitempty"`       // Free-form notes
	CreatedAt   time.Time  `json:"createdAt"`
}

// EffectiveDate returns the date the event's cash lands: the pay date when
// present, otherwise the ex-date.
func (e DividendEvent) EffectiveDate() time.Time {
	if e.PayDate != nil {
		return *e.PayDate
	}
	return e.ExDate
}

// IsCash reports whether the event is a cash contribution.
func (e DividendEvent) IsCash() bool {
	return e.Ticker == TickerCash
}
