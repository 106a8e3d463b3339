package model

// TimelinePoint is one bucket of the cumulative dividend timeline.
// The three running totals are monotonically non-decreasing across an
// ascending series and never reset. Events holds only the events whose
// ex-date falls exactly on this bucket's date.
type TimelinePoint struct {
	Date                string          `json:"date"` // YYYY-MM-DD
	CashUtilized        float64         `json:"cashUtilized"`
	CumulativePaid      float64         `json:"cumulativePaid"`
	CumulativeProjected float64         `json:"cumulativeProjected"`
	Events              []DividendEvent `json:"events"`
}
