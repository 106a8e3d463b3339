package model

// SecuritySearchResult is a single hit from the external securities search,
// used to prefill a new event's fields.
type SecuritySearchResult struct {
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	SecurityType string `json:"securityType,omitempty"`
	Exchange     string `json:"exchange,omitempty"`
}

// Safety ratings bucketed from the numeric safety score.
const (
	SafetyRatingLow    = "Low"
	SafetyRatingMedium = "Medium"
	SafetyRatingHigh   = "High"
)

// DividendSafetyScore is an informational heuristic over payout ratio and
// yield. It is never consumed by the timeline aggregation.
type DividendSafetyScore struct {
	Score       int      `json:"score"`
	PayoutRatio *float64 `json:"payoutRatio"`
	Rating      string   `json:"rating"`
}

// StockData combines security metadata with the latest dividend declaration
// for a ticker.
type StockData struct {
	Ticker         string               `json:"ticker"`
	Name           string               `json:"name"`
	Price          float64              `json:"price"`
	DividendYield  float64              `json:"dividendYield"`
	LatestDividend float64              `json:"latestDividend"`
	ExDivDate      string               `json:"exDivDate"`
	PaymentDate    string               `json:"paymentDate"`
	SafetyScore    *DividendSafetyScore `json:"safetyScore,omitempty"`
}
