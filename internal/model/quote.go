package model

import "time"

// Quote is a cached market quote for a ticker, refreshed by the scheduled
// quote-refresh job.
type Quote struct {
	ID            string    `json:"id"`
	Ticker        string    `json:"ticker"`
	Price         float64   `json:"price"`
	DividendYield float64   `json:"dividendYield"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
