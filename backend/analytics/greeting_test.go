package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGreeting(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, time.June, 10, hour, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, "Good morning", Greeting(at(0)))
	assert.Equal(t, "Good morning", Greeting(at(11)))
	assert.Equal(t, "Good afternoon", Greeting(at(12)))
	assert.Equal(t, "Good afternoon", Greeting(at(17)))
	assert.Equal(t, "Good evening", Greeting(at(18)))
	assert.Equal(t, "Good evening", Greeting(at(23)))
}

func TestQuoteOfTheDayStablePerDay(t *testing.T) {
	morning := time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.June, 10, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, QuoteOfTheDay(morning), QuoteOfTheDay(evening))
	assert.NotEmpty(t, QuoteOfTheDay(morning))
}
