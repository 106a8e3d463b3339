package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrEventNotFound indicates that a dividend event with the given ID does not exist.
	ErrEventNotFound = errors.New("dividend event not found")

	// ErrQuoteNotFound indicates no cached quote exists for a ticker.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrSettingNotFound indicates that a setting key has never been stored.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrSymbolNotFound indicates that a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidDate indicates that a date field is missing or does not parse
	// as YYYY-MM-DD. Malformed dates are rejected at ingestion and never reach
	// the timeline aggregation.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidScale indicates an unknown time-scale parameter.
	ErrInvalidScale = errors.New("invalid time scale")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrEmptyTicker indicates that the ticker symbol is missing.
	ErrEmptyTicker = errors.New("ticker is required")

	// ErrInvalidStatus indicates a status outside {Confirmed, Projected}.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrQueryTooShort indicates a securities search query under two characters.
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")

	// ErrAPIKeyNotConfigured indicates the market-data API key has not been set.
	ErrAPIKeyNotConfigured = errors.New("market data API key not configured")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data.
var (
	ErrFailedToRetrieveEvents = errors.New("failed to retrieve dividend events")
	ErrFailedToCreateEvent    = errors.New("failed to create dividend event")
	ErrFailedToUpdateEvent    = errors.New("failed to update dividend event")
	ErrFailedToDeleteEvent    = errors.New("failed to delete dividend event")

	ErrFailedToBuildTimeline = errors.New("failed to build dividend timeline")
	ErrFailedToExportCSV     = errors.New("failed to export events to CSV")

	ErrFailedToSearchSecurities  = errors.New("failed to search securities")
	ErrFailedToRetrieveStockData = errors.New("failed to retrieve stock data")
	ErrFailedToRetrieveQuote     = errors.New("failed to retrieve quote")
	ErrFailedToRefreshQuotes     = errors.New("failed to refresh quotes")

	ErrFailedToStoreSetting    = errors.New("failed to store setting")
	ErrFailedToRetrieveSetting = errors.New("failed to retrieve setting")
)
