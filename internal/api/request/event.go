package request

// CreateEventRequest represents the request body for creating a new dividend
// event. Ticker and exDate are required; dates are YYYY-MM-DD strings.
type CreateEventRequest struct {
	Ticker      string   `json:"ticker"`
	ExDate      string   `json:"exDate"`
	PayDate     string   `json:"payDate,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Yield       *float64 `json:"yield,omitempty"`
	YieldOnCost *float64 `json:"yieldOnCost,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Received    bool     `json:"received"`
	Status      string   `json:"status,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// UpdateEventRequest represents the request body for updating an existing
// event. All fields are optional (pointers); only provided fields change.
type UpdateEventRequest struct {
	Ticker      *string  `json:"ticker,omitempty"`
	ExDate      *string  `json:"exDate,omitempty"`
	PayDate     *string  `json:"payDate,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Yield       *float64 `json:"yield,omitempty"`
	YieldOnCost *float64 `json:"yieldOnCost,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Received    *bool    `json:"received,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// CreateCashEventRequest represents the request body for recording a cash
// contribution.
type CreateCashEventRequest struct {
	Amount *float64 `json:"amount"`
	Date   string   `json:"date"`
	Notes  string   `json:"notes,omitempty"`
}

// SetAPIKeyRequest represents the request body for storing the market-data
// API key.
type SetAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}
