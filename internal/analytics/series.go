package analytics

import (
	"sort"
	"time"
)

// TimePoint is a chart-ready {date label, value} pair.
type TimePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// monthLabel matches the axis labels the dashboard charts render.
const monthLabel = "Jan 2006"

// dayLabel is the per-day bucket key for running totals.
const dayLabel = "2006-01-02"

// GroupByMonth sums point values per calendar month and labels each
// bucket "Jan 2006". Output is chronologically ascending by month start
// regardless of input order, so chart axes stay usable without callers
// pre-sorting. Points whose date cannot be parsed are skipped.
func GroupByMonth(points []TimePoint) []TimePoint {
	type bucket struct {
		start time.Time
		total float64
	}
	buckets := make(map[string]*bucket)
	for _, point := range points {
		t, ok := parseDate(point.Date)
		if !ok {
			continue
		}
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		label := start.Format(monthLabel)
		if b, exists := buckets[label]; exists {
			b.total += point.Value
			continue
		}
		buckets[label] = &bucket{start: start, total: point.Value}
	}

	out := make([]TimePoint, 0, len(buckets))
	starts := make([]time.Time, 0, len(buckets))
	for _, b := range buckets {
		starts = append(starts, b.start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	for _, start := range starts {
		label := start.Format(monthLabel)
		out = append(out, TimePoint{Date: label, Value: buckets[label].total})
	}
	return out
}

// RunningTotal produces one point per distinct day, valued at the
// cumulative number of records dated up to and including that day.
// Records sharing a timestamp all count toward the same bucket. Input
// order does not matter; output ascends chronologically.
func RunningTotal(timestamps []time.Time) []TimePoint {
	if len(timestamps) == 0 {
		return []TimePoint{}
	}
	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	out := make([]TimePoint, 0)
	total := 0.0
	for _, ts := range sorted {
		total++
		label := ts.UTC().Format(dayLabel)
		if len(out) > 0 && out[len(out)-1].Date == label {
			out[len(out)-1].Value = total
			continue
		}
		out = append(out, TimePoint{Date: label, Value: total})
	}
	return out
}

// CountPerDay buckets timestamps into per-day counts in ascending
// order, the non-cumulative companion to RunningTotal.
func CountPerDay(timestamps []time.Time) []TimePoint {
	if len(timestamps) == 0 {
		return []TimePoint{}
	}
	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	out := make([]TimePoint, 0)
	for _, ts := range sorted {
		label := ts.UTC().Format(dayLabel)
		if len(out) > 0 && out[len(out)-1].Date == label {
			out[len(out)-1].Value++
			continue
		}
		out = append(out, TimePoint{Date: label, Value: 1})
	}
	return out
}

// parseDate accepts the date formats that reach the aggregation layer:
// RFC3339 timestamps from the store and plain yyyy-mm-dd day labels.
func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(dayLabel, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
