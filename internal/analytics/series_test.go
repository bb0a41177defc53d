package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByMonthSumsSameMonth(t *testing.T) {
	points := []TimePoint{
		{Date: "2024-01-05", Value: 3},
		{Date: "2024-01-20", Value: 4},
	}

	grouped := GroupByMonth(points)

	require.Len(t, grouped, 1)
	assert.Equal(t, TimePoint{Date: "Jan 2024", Value: 7}, grouped[0])
}

func TestGroupByMonthChronologicalRegardlessOfInputOrder(t *testing.T) {
	points := []TimePoint{
		{Date: "2024-03-10", Value: 1},
		{Date: "2023-11-02", Value: 2},
		{Date: "2024-01-15", Value: 3},
		{Date: "2024-03-01", Value: 4},
	}

	grouped := GroupByMonth(points)

	assert.Equal(t, []TimePoint{
		{Date: "Nov 2023", Value: 2},
		{Date: "Jan 2024", Value: 3},
		{Date: "Mar 2024", Value: 5},
	}, grouped)
}

func TestGroupByMonthAcceptsRFC3339(t *testing.T) {
	points := []TimePoint{
		{Date: "2024-02-01T10:30:00Z", Value: 1},
		{Date: "2024-02-28", Value: 2},
	}

	grouped := GroupByMonth(points)

	require.Len(t, grouped, 1)
	assert.Equal(t, TimePoint{Date: "Feb 2024", Value: 3}, grouped[0])
}

func TestGroupByMonthSkipsUnparseableDates(t *testing.T) {
	points := []TimePoint{
		{Date: "not-a-date", Value: 10},
		{Date: "2024-05-01", Value: 1},
	}

	grouped := GroupByMonth(points)

	assert.Equal(t, []TimePoint{{Date: "May 2024", Value: 1}}, grouped)
}

func TestGroupByMonthEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByMonth(nil))
}

func TestRunningTotalCumulativeCount(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)

	series := RunningTotal([]time.Time{d1, d2, d3})

	assert.Equal(t, []TimePoint{
		{Date: "2024-01-01", Value: 1},
		{Date: "2024-01-03", Value: 2},
		{Date: "2024-01-07", Value: 3},
	}, series)
}

func TestRunningTotalTiesShareABucket(t *testing.T) {
	day := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	series := RunningTotal([]time.Time{day, day.Add(time.Hour), day.Add(2 * time.Hour)})

	assert.Equal(t, []TimePoint{{Date: "2024-02-14", Value: 3}}, series)
}

func TestRunningTotalSortsUnorderedInput(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	series := RunningTotal([]time.Time{d2, d1})

	assert.Equal(t, []TimePoint{
		{Date: "2024-01-01", Value: 1},
		{Date: "2024-01-02", Value: 2},
	}, series)
}

func TestRunningTotalEmptyInput(t *testing.T) {
	assert.Empty(t, RunningTotal(nil))
}

func TestCountPerDay(t *testing.T) {
	d1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	series := CountPerDay([]time.Time{d3, d1, d2})

	assert.Equal(t, []TimePoint{
		{Date: "2024-03-01", Value: 2},
		{Date: "2024-03-04", Value: 1},
	}, series)
}

func TestSeriesIdempotence(t *testing.T) {
	points := []TimePoint{
		{Date: "2024-01-05", Value: 3},
		{Date: "2024-02-20", Value: 4},
	}

	first := GroupByMonth(points)
	second := GroupByMonth(points)

	assert.Equal(t, first, second)
}
