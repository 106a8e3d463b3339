package service

import (
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/timeline"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/validation"
)

// TimelineService exposes the pure timeline aggregation over the current
// event snapshot. Each call reads a fresh snapshot from the store; the
// aggregation itself performs no I/O.
type TimelineService struct {
	store EventStore
	now   func() time.Time
}

// NewTimelineService creates a new TimelineService over the provided store.
func NewTimelineService(store EventStore) *TimelineService {
	return &TimelineService{
		store: store,
		now:   time.Now,
	}
}

// BuildTimeline returns the cumulative timeline for the given scale string.
func (s *TimelineService) BuildTimeline(scaleParam string) ([]model.TimelinePoint, error) {
	scale, err := timeline.ParseScale(scaleParam)
	if err != nil {
		return nil, err
	}

	events, err := s.store.ListEvents()
	if err != nil {
		return nil, err
	}

	series := timeline.BuildSeries(events, scale, s.now())
	if series == nil {
		series = []model.TimelinePoint{}
	}
	return series, nil
}

// CalendarBuckets returns the full date-to-occurrences calendar mapping.
func (s *TimelineService) CalendarBuckets() (map[string][]timeline.Occurrence, error) {
	events, err := s.store.ListEvents()
	if err != nil {
		return nil, err
	}
	return timeline.Buckets(events), nil
}

// CalendarDay returns the occurrences for a single calendar date. A date
// with no occurrences yields an empty list, which the UI treats as a no-op.
func (s *TimelineService) CalendarDay(date string) ([]timeline.Occurrence, error) {
	if _, err := validation.ParseDate(date); err != nil {
		return nil, err
	}

	buckets, err := s.CalendarBuckets()
	if err != nil {
		return nil, err
	}
	return timeline.EventsOn(buckets, date), nil
}
