package analytics

import "time"

// WeeklyData sums minutes into 7 day buckets, (today-6)..today, oldest first.
// Labels are weekday abbreviations (Mon, Tue, ...). Days without sessions
// stay at 0; records outside the window are ignored.
func WeeklyData(records []SessionRecord, today time.Time) []Bucket {
	return dayBuckets(records, today, 7)
}

// MonthlyData sums minutes into 30 day buckets, (today-29)..today, oldest
// first, labeled by day of month.
func MonthlyData(records []SessionRecord, today time.Time) []Bucket {
	return dayBuckets(records, today, 30)
}

func dayBuckets(records []SessionRecord, today time.Time, days int) []Bucket {
	start := today.AddDate(0, 0, -(days - 1))

	buckets := make([]Bucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		label := d.Format("Mon")
		if days > 7 {
			label = d.Format("2")
		}
		buckets[i] = Bucket{Date: d, Label: label}
		index[dateKey(d)] = i
	}

	for _, r := range records {
		if i, ok := index[dateKey(r.Date)]; ok {
			buckets[i].Minutes += r.Minutes
		}
	}

	return buckets
}

// LastSixMonths sums minutes into 6 month buckets, oldest first, labeled by
// month abbreviation (Jan, Feb, ...). Reference months are derived by
// subtracting multiples of 30 days from now, not by calendar-month
// arithmetic; months drift near the month boundary and the drift is kept
// for compatibility with the charts already in production.
func LastSixMonths(records []SessionRecord, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, 6)
	for i := 5; i >= 0; i-- {
		ref := now.AddDate(0, 0, -30*i)

		total := 0
		for _, r := range records {
			if r.Date.Year() == ref.Year() && r.Date.Month() == ref.Month() {
				total += r.Minutes
			}
		}

		buckets = append(buckets, Bucket{
			Date:    ref,
			Label:   ref.Format("Jan"),
			Minutes: total,
		})
	}
	return buckets
}

// TodayTotal returns the minutes studied on the given date.
func TodayTotal(records []SessionRecord, today time.Time) int {
	total := 0
	key := dateKey(today)
	for _, r := range records {
		if dateKey(r.Date) == key {
			total += r.Minutes
		}
	}
	return total
}

// MonthTotalHours returns the hours (1 decimal) studied in the calendar
// month of now.
func MonthTotalHours(records []SessionRecord, now time.Time) float64 {
	total := 0
	for _, r := range records {
		if r.Date.Year() == now.Year() && r.Date.Month() == now.Month() {
			total += r.Minutes
		}
	}
	return round1(float64(total) / 60)
}
