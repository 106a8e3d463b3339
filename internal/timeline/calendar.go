package timeline

import "github.com/divitrack/Dividend-Tracker-Backend/internal/model"

// OccurrenceKind distinguishes why an event appears on a calendar date.
type OccurrenceKind string

const (
	OccurrenceExDate  OccurrenceKind = "ex-dividend"
	OccurrencePayDate OccurrenceKind = "payment"
)

// Occurrence wraps an event with the occurrence it represents on a given
// date, so downstream consumers can label ex-date vs payment entries without
// inspecting or mutating the event itself.
type Occurrence struct {
	Event model.DividendEvent `json:"event"`
	Kind  OccurrenceKind      `json:"kind"`
}

// Buckets fans events out into a date-keyed calendar mapping. Every event is
// inserted under its ex-date; an event with a pay date is additionally
// inserted under that date tagged as a payment. This is a one-to-many
// fan-out, not a filter: an event whose pay date equals its ex-date appears
// twice in the same bucket, once per kind.
func Buckets(events []model.DividendEvent) map[string][]Occurrence {
	buckets := make(map[string][]Occurrence)

	for _, ev := range events {
		exKey := day(ev.ExDate).Format(DateLayout)
		buckets[exKey] = append(buckets[exKey], Occurrence{Event: ev, Kind: OccurrenceExDate})

		if ev.PayDate != nil {
			payKey := day(*ev.PayDate).Format(DateLayout)
			buckets[payKey] = append(buckets[payKey], Occurrence{Event: ev, Kind: OccurrencePayDate})
		}
	}

	return buckets
}

// EventsOn returns the occurrences bucketed under a calendar date
// (YYYY-MM-DD). A date with no occurrences yields an empty, non-nil slice so
// callers can treat the result as a plain list.
func EventsOn(buckets map[string][]Occurrence, date string) []Occurrence {
	if occ, ok := buckets[date]; ok {
		return occ
	}
	return []Occurrence{}
}
