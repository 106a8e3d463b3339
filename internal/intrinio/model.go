package intrinio

// searchResponse maps the raw securities search response.
type searchResponse struct {
	Securities []struct {
		Ticker       string `json:"ticker"`
		Name         string `json:"name"`
		SecurityType string `json:"security_type"`
		Exchange     string `json:"exchange"`
	} `json:"securities"`
}

// securityResponse maps the raw security lookup response. PayoutRatio is not
// returned for every security; it stays nil when absent.
type securityResponse struct {
	Ticker        string   `json:"ticker"`
	Name          string   `json:"name"`
	LastPrice     float64  `json:"last_price"`
	DividendYield float64  `json:"dividend_yield"`
	PayoutRatio   *float64 `json:"payout_ratio"`
}

// dividendResponse maps the raw latest-dividend response.
type dividendResponse struct {
	Amount     float64 `json:"amount"`
	ExDividend string  `json:"ex_dividend"`
	PayDate    string  `json:"pay_date"`
}

// errorResponse maps the provider's error envelope.
type errorResponse struct {
	Error string `json:"error"`
}
