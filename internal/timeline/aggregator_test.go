package timeline

import (
	"testing"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestBuildSeries_EmptyInput(t *testing.T) {
	series := BuildSeries(nil, Monthly, date("2024-06-01"))
	if len(series) != 0 {
		t.Errorf("Expected empty series for no events, got %d points", len(series))
	}

	series = BuildSeries([]model.DividendEvent{}, Daily, date("2024-06-01"))
	if len(series) != 0 {
		t.Errorf("Expected empty series for empty slice, got %d points", len(series))
	}
}

func TestBuildSeries_CumulativePaid(t *testing.T) {
	now := date("2024-06-15")
	events := []model.DividendEvent{
		{
			Ticker:   "AAPL",
			ExDate:   date("2024-01-15"),
			PayDate:  datePtr("2024-02-01"),
			Amount:   floatPtr(0.50),
			Received: true,
		},
	}

	series := BuildSeries(events, Monthly, now)
	if len(series) == 0 {
		t.Fatal("Expected non-empty series")
	}

	if series[0].Date != "2024-01-01" {
		t.Errorf("Expected first point at 2024-01-01, got %s", series[0].Date)
	}

	for _, point := range series {
		switch {
		case point.Date < "2024-02-01":
			if point.CumulativePaid != 0 {
				t.Errorf("Point %s: expected cumulativePaid 0 before pay date, got %f", point.Date, point.CumulativePaid)
			}
		default:
			// Counted once, at every point from the pay date onward.
			if point.CumulativePaid != 0.50 {
				t.Errorf("Point %s: expected cumulativePaid 0.50, got %f", point.Date, point.CumulativePaid)
			}
		}
	}
}

func TestBuildSeries_CashUtilized(t *testing.T) {
	now := date("2024-06-15")
	events := []model.DividendEvent{
		{
			Ticker:   model.TickerCash,
			ExDate:   date("2024-01-10"),
			Amount:   floatPtr(1000),
			Price:    floatPtr(1000),
			Received: true,
		},
	}

	series := BuildSeries(events, Daily, now)
	if len(series) == 0 {
		t.Fatal("Expected non-empty series")
	}

	for _, point := range series {
		want := 0.0
		if point.Date >= "2024-01-10" {
			want = 1000 * SharesPerEvent
		}
		if point.CashUtilized != want {
			t.Errorf("Point %s: expected cashUtilized %f, got %f", point.Date, want, point.CashUtilized)
		}
	}
}

func TestBuildSeries_ProjectedIncludesPaid(t *testing.T) {
	now := date("2024-06-15")
	events := []model.DividendEvent{
		{Ticker: "KO", ExDate: date("2024-01-10"), Amount: floatPtr(1.00), Received: true},
		{Ticker: "KO", ExDate: date("2024-04-10"), Amount: floatPtr(2.00), Received: false, Status: model.StatusProjected},
	}

	series := BuildSeries(events, Monthly, now)

	var last model.TimelinePoint
	for _, point := range series {
		last = point
	}

	if last.CumulativePaid != 1.00 {
		t.Errorf("Expected final cumulativePaid 1.00, got %f", last.CumulativePaid)
	}
	if last.CumulativeProjected != 3.00 {
		t.Errorf("Expected final cumulativeProjected 3.00 (paid + pending), got %f", last.CumulativeProjected)
	}
}

func TestBuildSeries_MonotonicTotals(t *testing.T) {
	now := date("2024-06-15")
	events := []model.DividendEvent{
		{Ticker: "AAPL", ExDate: date("2023-11-10"), PayDate: datePtr("2023-12-01"), Amount: floatPtr(0.24), Price: floatPtr(180), Received: true},
		{Ticker: "MSFT", ExDate: date("2024-02-14"), PayDate: datePtr("2024-03-14"), Amount: floatPtr(0.75), Price: floatPtr(410), Received: true},
		{Ticker: "JNJ", ExDate: date("2024-05-20"), Amount: floatPtr(1.19), Received: false, Status: model.StatusProjected},
		{Ticker: model.TickerCash, ExDate: date("2024-01-02"), Amount: floatPtr(500), Price: floatPtr(500), Received: true},
	}

	for _, scale := range []Scale{Daily, Weekly, Monthly, Quarterly, Annually} {
		series := BuildSeries(events, scale, now)
		if len(series) == 0 {
			t.Fatalf("Scale %s: expected non-empty series", scale)
		}

		prev := series[0]
		for _, point := range series[1:] {
			if point.CashUtilized < prev.CashUtilized {
				t.Errorf("Scale %s, point %s: cashUtilized decreased from %f to %f", scale, point.Date, prev.CashUtilized, point.CashUtilized)
			}
			if point.CumulativePaid < prev.CumulativePaid {
				t.Errorf("Scale %s, point %s: cumulativePaid decreased from %f to %f", scale, point.Date, prev.CumulativePaid, point.CumulativePaid)
			}
			if point.CumulativeProjected < prev.CumulativeProjected {
				t.Errorf("Scale %s, point %s: cumulativeProjected decreased from %f to %f", scale, point.Date, prev.CumulativeProjected, point.CumulativeProjected)
			}
			if point.Date <= prev.Date {
				t.Errorf("Scale %s: points not strictly ascending: %s then %s", scale, prev.Date, point.Date)
			}
			prev = point
		}
	}
}

func TestBuildSeries_MissingOptionalFields(t *testing.T) {
	now := date("2024-06-15")
	events := []model.DividendEvent{
		{Ticker: "T", ExDate: date("2024-03-01"), Received: true},
		{Ticker: "VZ", ExDate: date("2024-04-01"), Received: false},
	}

	series := BuildSeries(events, Monthly, now)
	if len(series) == 0 {
		t.Fatal("Expected non-empty series")
	}

	for _, point := range series {
		if point.CumulativePaid != 0 || point.CumulativeProjected != 0 {
			t.Errorf("Point %s: amountless events must contribute 0, got paid=%f projected=%f",
				point.Date, point.CumulativePaid, point.CumulativeProjected)
		}
		if point.CashUtilized != 0 {
			t.Errorf("Point %s: priceless events must not contribute to cashUtilized, got %f", point.Date, point.CashUtilized)
		}
	}

	// The amountless event still shows up on its exact ex-date bucket.
	found := false
	for _, point := range series {
		if point.Date == "2024-03-01" {
			for _, ev := range point.Events {
				if ev.Ticker == "T" {
					found = true
				}
			}
		}
	}
	if !found {
		t.Error("Expected amountless event to appear in its ex-date bucket")
	}
}

func TestBuildSeries_ExactDateEventsOnly(t *testing.T) {
	now := date("2024-06-15")
	events := []model.DividendEvent{
		{Ticker: "AAPL", ExDate: date("2024-03-01"), Amount: floatPtr(0.24), Received: true},
		{Ticker: "MSFT", ExDate: date("2024-03-02"), Amount: floatPtr(0.75), Received: true},
	}

	series := BuildSeries(events, Daily, now)

	for _, point := range series {
		for _, ev := range point.Events {
			if ev.ExDate.Format(DateLayout) != point.Date {
				t.Errorf("Point %s: carries event with ex-date %s; exact-day match required",
					point.Date, ev.ExDate.Format(DateLayout))
			}
		}
	}
}

func TestBuildSeries_ProjectionWindow(t *testing.T) {
	now := date("2024-06-15")
	events := []model.DividendEvent{
		{Ticker: "O", ExDate: date("2024-06-01"), Amount: floatPtr(0.26), Received: true},
	}

	series := BuildSeries(events, Daily, now)
	if len(series) == 0 {
		t.Fatal("Expected non-empty series")
	}

	last := series[len(series)-1].Date
	if last != "2025-06-15" {
		t.Errorf("Expected daily series to end at now+12 months (2025-06-15), got %s", last)
	}
}

func TestBuildSeries_InputOrderIndependent(t *testing.T) {
	now := date("2024-06-15")
	a := model.DividendEvent{Ticker: "AAPL", ExDate: date("2024-02-09"), Amount: floatPtr(0.24), Received: true}
	b := model.DividendEvent{Ticker: "MSFT", ExDate: date("2024-01-17"), Amount: floatPtr(0.75), Received: true}

	forward := BuildSeries([]model.DividendEvent{a, b}, Monthly, now)
	reversed := BuildSeries([]model.DividendEvent{b, a}, Monthly, now)

	if len(forward) != len(reversed) {
		t.Fatalf("Expected identical series lengths, got %d and %d", len(forward), len(reversed))
	}
	for i := range forward {
		if forward[i].Date != reversed[i].Date ||
			forward[i].CumulativePaid != reversed[i].CumulativePaid ||
			forward[i].CashUtilized != reversed[i].CashUtilized {
			t.Errorf("Point %d differs between input orderings", i)
		}
	}
}
