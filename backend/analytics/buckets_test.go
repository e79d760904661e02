package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklyData(t *testing.T) {
	today := date(2024, time.June, 10) // Monday

	records := []SessionRecord{
		{Subject: "Math", Minutes: 30, Date: date(2024, time.June, 8)},
	}

	buckets := WeeklyData(records, today)

	assert.Len(t, buckets, 7)
	assert.Equal(t, date(2024, time.June, 4), buckets[0].Date)
	assert.Equal(t, date(2024, time.June, 10), buckets[6].Date)

	for i, b := range buckets {
		if b.Date.Equal(date(2024, time.June, 8)) {
			assert.Equal(t, 30, b.Minutes)
			assert.Equal(t, "Sat", b.Label)
		} else {
			assert.Zero(t, b.Minutes, "bucket %d should be empty", i)
		}
	}
}

func TestWeeklyDataLabels(t *testing.T) {
	buckets := WeeklyData(nil, date(2024, time.June, 10))

	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Mon"}, labels)
}

func TestWeeklyDataExcludesOutsideWindow(t *testing.T) {
	today := date(2024, time.June, 10)
	records := []SessionRecord{
		{Minutes: 45, Date: date(2024, time.June, 3)},  // day before window
		{Minutes: 15, Date: date(2024, time.June, 11)}, // tomorrow
		{Minutes: 20, Date: date(2024, time.June, 10)},
	}

	buckets := WeeklyData(records, today)

	total := 0
	for _, b := range buckets {
		total += b.Minutes
	}
	assert.Equal(t, 20, total)
}

func TestWeeklyDataSumsSameDay(t *testing.T) {
	today := date(2024, time.June, 10)
	records := []SessionRecord{
		{Subject: "Math", Minutes: 30, Date: date(2024, time.June, 9)},
		{Subject: "Physics", Minutes: 40, Date: date(2024, time.June, 9)},
	}

	buckets := WeeklyData(records, today)
	assert.Equal(t, 70, buckets[5].Minutes)
}

func TestMonthlyData(t *testing.T) {
	today := date(2024, time.June, 10)
	records := []SessionRecord{
		{Minutes: 60, Date: date(2024, time.May, 12)}, // oldest day inside window
		{Minutes: 25, Date: date(2024, time.June, 10)},
		{Minutes: 99, Date: date(2024, time.May, 11)}, // outside
	}

	buckets := MonthlyData(records, today)

	assert.Len(t, buckets, 30)
	assert.Equal(t, date(2024, time.May, 12), buckets[0].Date)
	assert.Equal(t, "12", buckets[0].Label)
	assert.Equal(t, 60, buckets[0].Minutes)
	assert.Equal(t, 25, buckets[29].Minutes)
}

func TestLastSixMonths(t *testing.T) {
	now := date(2024, time.June, 15)
	records := []SessionRecord{
		{Minutes: 100, Date: date(2024, time.June, 1)},
		{Minutes: 50, Date: date(2024, time.May, 20)},
		{Minutes: 30, Date: date(2024, time.February, 10)},
		{Minutes: 999, Date: date(2023, time.June, 1)}, // prior year, excluded
	}

	buckets := LastSixMonths(records, now)

	assert.Len(t, buckets, 6)
	assert.Equal(t, "Jun", buckets[5].Label)
	assert.Equal(t, 100, buckets[5].Minutes)
	assert.Equal(t, "May", buckets[4].Label)
	assert.Equal(t, 50, buckets[4].Minutes)
}

// The 30-day subtraction is deliberately not calendar-month arithmetic:
// near the end of March the steps land on Dec 31 and Dec 1, so December
// shows up twice, and one day later February drops off the chart.
func TestLastSixMonthsThirtyDayDrift(t *testing.T) {
	now := date(2024, time.March, 30)

	buckets := LastSixMonths(nil, now)

	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Nov", "Dec", "Dec", "Jan", "Feb", "Mar"}, labels)

	// One more day and February is gone from the chart.
	buckets = LastSixMonths(nil, date(2024, time.March, 31))
	labels = labels[:0]
	for _, b := range buckets {
		labels = append(labels, b.Label)
	}
	assert.NotContains(t, labels, "Feb")
}

func TestTodayTotal(t *testing.T) {
	today := date(2024, time.June, 10)
	records := []SessionRecord{
		{Minutes: 30, Date: today},
		{Minutes: 15, Date: today},
		{Minutes: 45, Date: date(2024, time.June, 9)},
	}

	assert.Equal(t, 45, TodayTotal(records, today))
	assert.Zero(t, TodayTotal(nil, today))
}

func TestMonthTotalHours(t *testing.T) {
	now := date(2024, time.June, 10)
	records := []SessionRecord{
		{Minutes: 90, Date: date(2024, time.June, 1)},
		{Minutes: 45, Date: date(2024, time.June, 9)},
		{Minutes: 600, Date: date(2024, time.May, 30)},
	}

	assert.Equal(t, 2.3, MonthTotalHours(records, now)) // 135/60 = 2.25 -> 2.3
}

// Перезапуск на тех же данных обязан давать тот же результат.
func TestBucketingIdempotent(t *testing.T) {
	today := date(2024, time.June, 10)
	records := []SessionRecord{
		{Subject: "Math", Minutes: 30, Date: date(2024, time.June, 8)},
		{Subject: "Physics", Minutes: 70, Date: date(2024, time.June, 9)},
	}

	first := WeeklyData(records, today)
	second := WeeklyData(records, today)
	assert.Equal(t, first, second)
}
