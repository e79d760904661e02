package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func deadlineIn(now time.Time, days int) *time.Time {
	d := now.AddDate(0, 0, days)
	return &d
}

func TestClassifyUrgencyBoundaries(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want string
	}{
		{"overdue", -1, UrgencyHigh},
		{"due today", 0, UrgencyHigh},
		{"three days", 3, UrgencyHigh},
		{"four days", 4, UrgencyMedium},
		{"seven days", 7, UrgencyMedium},
		{"eight days", 8, UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUrgency(deadlineIn(now, tt.days), now))
		})
	}
}

func TestClassifyUrgencyNoDeadline(t *testing.T) {
	assert.Equal(t, UrgencyLow, ClassifyUrgency(nil, time.Now()))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, time.June, 10, 23, 30, 0, 0, time.UTC)

	// Deadline in the early morning of the 13th is still 3 calendar days
	// away, regardless of the clock time.
	deadline := time.Date(2024, time.June, 13, 1, 0, 0, 0, time.UTC)
	days, ok := DaysRemaining(&deadline, now)
	assert.True(t, ok)
	assert.Equal(t, 3, days)

	overdue := time.Date(2024, time.June, 9, 23, 59, 0, 0, time.UTC)
	days, ok = DaysRemaining(&overdue, now)
	assert.True(t, ok)
	assert.Equal(t, -1, days)

	_, ok = DaysRemaining(nil, now)
	assert.False(t, ok)
}

func TestHoursRemaining(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	deadline := time.Date(2024, time.June, 10, 18, 30, 0, 0, time.UTC)
	hours, ok := HoursRemaining(&deadline, now)
	assert.True(t, ok)
	assert.Equal(t, 6.5, hours)

	// Overdue clamps to zero instead of going negative.
	past := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	hours, ok = HoursRemaining(&past, now)
	assert.True(t, ok)
	assert.Zero(t, hours)

	_, ok = HoursRemaining(nil, now)
	assert.False(t, ok)
}

func TestFillEstimatedHours(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)

	// Explicit positive estimate wins over everything.
	assert.Equal(t, 5.0, FillEstimatedHours(5, &deadline, now))

	// No estimate + deadline: use hours remaining.
	assert.Equal(t, 3.0, FillEstimatedHours(0, &deadline, now))

	// No estimate, no deadline: default of 2 hours.
	assert.Equal(t, 2.0, FillEstimatedHours(0, nil, now))
}
