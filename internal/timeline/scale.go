// Package timeline turns a flat list of dividend events into derived,
// chart-ready series: a cumulative time-bucketed timeline and a calendar
// date-to-events mapping. All functions are pure and total: they perform no
// I/O, never fail for well-typed input, and return freshly built structures
// on every call.
package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
)

// Scale is the bucket granularity used to sample the cumulative timeline.
type Scale string

const (
	Daily     Scale = "daily"
	Weekly    Scale = "weekly"
	Monthly   Scale = "monthly"
	Quarterly Scale = "quarterly"
	Annually  Scale = "annually"
)

// ParseScale parses a time-scale string as used in the API query parameter.
func ParseScale(s string) (Scale, error) {
	switch Scale(strings.ToLower(s)) {
	case Daily:
		return Daily, nil
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	case Quarterly:
		return Quarterly, nil
	case Annually:
		return Annually, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidScale, s)
	}
}

// DateLayout is the calendar-date format used for bucket keys and point dates.
const DateLayout = "2006-01-02"

// day truncates a timestamp to midnight UTC so that all bucket comparisons
// are date-only.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// startOfMonth returns the first day of t's month, midnight UTC.
func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// The monthly/quarterly series span at most 24 months from the first event;
// the annual series spans at most 5 years. Both are additionally capped at
// the projection window end.
const (
	maxMonthlyPoints = 24
	maxAnnualPoints  = 5
)

// seriesDates generates the ordered bucket dates for a scale, from first
// through end inclusive. Weekly points step every 7th day from the first
// date with no day-of-week alignment.
func seriesDates(first, end time.Time, scale Scale) []time.Time {
	var points []time.Time

	switch scale {
	case Daily:
		for d := first; !d.After(end); d = d.AddDate(0, 0, 1) {
			points = append(points, d)
		}
	case Weekly:
		for d := first; !d.After(end); d = d.AddDate(0, 0, 7) {
			points = append(points, d)
		}
	case Monthly, Quarterly:
		step := 1
		if scale == Quarterly {
			step = 3
		}
		base := startOfMonth(first)
		for i := 0; i < maxMonthlyPoints; i += step {
			d := base.AddDate(0, i, 0)
			if d.After(end) {
				break
			}
			points = append(points, d)
		}
	case Annually:
		base := startOfMonth(first)
		for i := 0; i < maxAnnualPoints; i++ {
			d := base.AddDate(i, 0, 0)
			if d.After(end) {
				break
			}
			points = append(points, d)
		}
	}

	return points
}
