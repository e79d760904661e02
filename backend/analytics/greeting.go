package analytics

import "time"

var quotes = []string{
	"Focus is the key to success.",
	"Small steps every day add up to big results.",
	"Discipline beats motivation.",
	"The best time to start was yesterday. The next best time is now.",
	"You don't have to be great to start, but you have to start to be great.",
	"Consistency is what transforms average into excellence.",
}

// Greeting picks the salutation for the hour of day.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// QuoteOfTheDay returns the motivational quote for the date. Deterministic
// per calendar day so every page load shows the same quote.
func QuoteOfTheDay(now time.Time) string {
	return quotes[now.YearDay()%len(quotes)]
}
