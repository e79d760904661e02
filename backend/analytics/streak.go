package analytics

import (
	"sort"
	"time"
)

// DistinctDates returns the distinct calendar dates of the records, sorted
// ascending. Duration values are irrelevant: any session on a date marks it
// as studied.
func DistinctDates(records []SessionRecord) []time.Time {
	seen := make(map[string]time.Time, len(records))
	for _, r := range records {
		key := dateKey(r.Date)
		if _, ok := seen[key]; !ok {
			seen[key] = time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// CurrentStreak counts consecutive studied days walking backward from today.
// Сегодняшний день без записи не рвёт стрик (льготный день): отсчёт тогда
// начинается со вчера. Первый пропуск в прошлом завершает подсчёт.
func CurrentStreak(dates []time.Time, today time.Time) int {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[dateKey(d)] = true
	}

	day := today
	if !set[dateKey(day)] {
		day = day.AddDate(0, 0, -1) // grace period for today
	}

	streak := 0
	for set[dateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// HighestStreak finds the longest run of consecutive dates over the full
// history. A single studied date yields 1, an empty history 0.
func HighestStreak(dates []time.Time) int {
	distinct := DistinctDates(datesToRecords(dates))
	if len(distinct) == 0 {
		return 0
	}

	highest, run := 1, 1
	for i := 1; i < len(distinct); i++ {
		if dateKey(distinct[i-1].AddDate(0, 0, 1)) == dateKey(distinct[i]) {
			run++
			if run > highest {
				highest = run
			}
		} else {
			run = 1
		}
	}
	return highest
}

// datesToRecords lets HighestStreak reuse the dedup/sort of DistinctDates
// for callers that pass raw, possibly unsorted date lists.
func datesToRecords(dates []time.Time) []SessionRecord {
	records := make([]SessionRecord, len(dates))
	for i, d := range dates {
		records[i] = SessionRecord{Date: d}
	}
	return records
}
