package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentStreakGracePeriod(t *testing.T) {
	today := date(2024, time.June, 10)
	dates := []time.Time{
		date(2024, time.June, 8),
		date(2024, time.June, 9),
	}

	// No record today: the grace period starts the count from yesterday.
	assert.Equal(t, 2, CurrentStreak(dates, today))
}

func TestCurrentStreakIncludesToday(t *testing.T) {
	today := date(2024, time.June, 10)
	dates := []time.Time{
		date(2024, time.June, 8),
		date(2024, time.June, 9),
		date(2024, time.June, 10),
	}

	assert.Equal(t, 3, CurrentStreak(dates, today))
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	today := date(2024, time.June, 10)
	dates := []time.Time{
		date(2024, time.June, 7),
		date(2024, time.June, 9), // gap on the 8th
	}

	// Only the 9th is reachable walking back; the 7th lies past the gap.
	assert.Equal(t, 1, CurrentStreak(dates, today))
}

func TestCurrentStreakNoHistory(t *testing.T) {
	assert.Zero(t, CurrentStreak(nil, date(2024, time.June, 10)))
}

func TestCurrentStreakBrokenLongAgo(t *testing.T) {
	today := date(2024, time.June, 10)
	dates := []time.Time{
		date(2024, time.June, 1),
		date(2024, time.June, 2),
	}

	assert.Zero(t, CurrentStreak(dates, today))
}

func TestHighestStreak(t *testing.T) {
	dates := []time.Time{
		date(2024, time.June, 1),
		date(2024, time.June, 2),
		date(2024, time.June, 3),
		date(2024, time.June, 5),
		date(2024, time.June, 6),
	}

	assert.Equal(t, 3, HighestStreak(dates))
}

func TestHighestStreakSingleDate(t *testing.T) {
	assert.Equal(t, 1, HighestStreak([]time.Time{date(2024, time.June, 1)}))
}

func TestHighestStreakEmpty(t *testing.T) {
	assert.Zero(t, HighestStreak(nil))
}

func TestHighestStreakUnsortedWithDuplicates(t *testing.T) {
	dates := []time.Time{
		date(2024, time.June, 6),
		date(2024, time.June, 5),
		date(2024, time.June, 5), // duplicate must not inflate the run
		date(2024, time.June, 1),
		date(2024, time.June, 2),
	}

	assert.Equal(t, 2, HighestStreak(dates))
}

func TestDistinctDates(t *testing.T) {
	records := []SessionRecord{
		{Minutes: 30, Date: date(2024, time.June, 9)},
		{Minutes: 40, Date: date(2024, time.June, 9)},
		{Minutes: 10, Date: date(2024, time.June, 7)},
	}

	dates := DistinctDates(records)

	assert.Equal(t, []time.Time{
		date(2024, time.June, 7),
		date(2024, time.June, 9),
	}, dates)
}
