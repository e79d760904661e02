package analytics

import "time"

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// defaultEstimatedHours is assumed for assignments without a deadline.
const defaultEstimatedHours = 2.0

// DaysRemaining returns the whole calendar days between today and the
// deadline date (negative when overdue). ok is false when there is no
// deadline.
func DaysRemaining(deadline *time.Time, now time.Time) (days int, ok bool) {
	if deadline == nil {
		return 0, false
	}
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24), true
}

// HoursRemaining returns the hours until the deadline instant, rounded to
// 1 decimal and clamped at 0. ok is false when there is no deadline.
func HoursRemaining(deadline *time.Time, now time.Time) (hours float64, ok bool) {
	if deadline == nil {
		return 0, false
	}
	h := round1(deadline.Sub(now).Hours())
	if h < 0 {
		h = 0
	}
	return h, true
}

// ClassifyUrgency derives the urgency level from the deadline and the
// current time. Это чистая функция: пишущий код вызывает её перед каждым
// сохранением задания и перезаписывает поле urgency — прежнее сохранённое
// значение не учитывается.
//
// No deadline -> low; overdue or <=3 days -> high; 4..7 days -> medium;
// more than 7 days -> low.
func ClassifyUrgency(deadline *time.Time, now time.Time) string {
	days, ok := DaysRemaining(deadline, now)
	if !ok {
		return UrgencyLow
	}
	switch {
	case days <= 3: // includes overdue
		return UrgencyHigh
	case days <= 7:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// FillEstimatedHours keeps a caller-provided positive estimate; otherwise it
// falls back to the hours remaining until the deadline, or to the default of
// 2 hours when there is no deadline.
func FillEstimatedHours(provided float64, deadline *time.Time, now time.Time) float64 {
	if provided > 0 {
		return provided
	}
	if hours, ok := HoursRemaining(deadline, now); ok {
		return hours
	}
	return defaultEstimatedHours
}
