package timeline

import (
	"sort"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
)

// SharesPerEvent is the fixed share-count assumption used when deriving cash
// deployed from an event's price. It is a policy constant, not a measured
// holding size.
const SharesPerEvent = 100

// projectionMonths is the forward projection window: buckets are generated
// through now plus this many months.
const projectionMonths = 12

// BuildSeries converts events into an ordered sequence of timeline points for
// the given scale, ascending by date. Buckets start at the earliest ex-date
// and run through now+12 months. An empty event list yields a nil series.
//
// Per point d:
//   - CashUtilized sums Price x SharesPerEvent over events with ExDate <= d
//     that carry a price.
//   - CumulativePaid sums Amount over received events whose effective date
//     (pay date, else ex-date) is <= d.
//   - CumulativeProjected is CumulativePaid plus the same sum over
//     not-yet-received events.
//   - Events holds the events whose ex-date is exactly d.
//
// Each event contributes to each total at most once, so all three totals are
// monotonically non-decreasing across the series. Events missing an amount
// contribute zero to the paid/projected sums but still appear in Events for
// their ex-date; events missing a price never contribute to CashUtilized.
func BuildSeries(events []model.DividendEvent, scale Scale, now time.Time) []model.TimelinePoint {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]model.DividendEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExDate.Before(sorted[j].ExDate)
	})

	first := day(sorted[0].ExDate)
	end := day(now).AddDate(0, projectionMonths, 0)
	dates := seriesDates(first, end, scale)

	series := make([]model.TimelinePoint, 0, len(dates))
	for _, d := range dates {
		point := model.TimelinePoint{
			Date:   d.Format(DateLayout),
			Events: []model.DividendEvent{},
		}

		var projected float64
		for _, ev := range sorted {
			exDay := day(ev.ExDate)

			if !exDay.After(d) && ev.Price != nil {
				point.CashUtilized += *ev.Price * SharesPerEvent
			}

			if !day(ev.EffectiveDate()).After(d) && ev.Amount != nil {
				if ev.Received {
					point.CumulativePaid += *ev.Amount
				} else {
					projected += *ev.Amount
				}
			}

			if exDay.Equal(d) {
				point.Events = append(point.Events, ev)
			}
		}

		// Reported projected total includes what has already been paid.
		point.CumulativeProjected = point.CumulativePaid + projected

		series = append(series, point)
	}

	return series
}
