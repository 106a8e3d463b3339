package service

import "github.com/divitrack/Dividend-Tracker-Backend/internal/model"

// EventStore is the persistence contract for dividend events. Two
// implementations exist (sqlite and in-memory); one is chosen at startup and
// injected into the services — nothing re-selects a backend per call.
type EventStore interface {
	ListEvents() ([]model.DividendEvent, error)
	GetEvent(id string) (model.DividendEvent, error)
	CreateEvent(event model.DividendEvent) (model.DividendEvent, error)
	UpdateEvent(event model.DividendEvent) (model.DividendEvent, error)
	DeleteEvent(id string) error
	Tickers() ([]string, error)
}

// QuoteStore is the persistence contract for the cached market quotes.
type QuoteStore interface {
	GetQuote(ticker string) (model.Quote, error)
	UpsertQuote(ticker string, price, dividendYield float64) (model.Quote, error)
}

// SettingStore is the persistence contract for key/value settings.
type SettingStore interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}
