// Package analytics содержит чистые функции агрегации учебной статистики:
// разбивка по датам для графиков, стрики, доли предметов, срочность заданий
// и рейтинги пользователей. Пакет не обращается к базе — все записи и
// опорное время ("сегодня"/"сейчас") передаются вызывающей стороной.
package analytics

import (
	"math"
	"time"
)

// SessionRecord is one already-fetched study session row.
type SessionRecord struct {
	UserID  uint
	Subject string
	Minutes int
	Date    time.Time
}

// Bucket is one chart point: a calendar unit and the minutes summed into it.
type Bucket struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	Minutes int       `json:"minutes"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// dateKey collapses a timestamp to its calendar date.
func dateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
