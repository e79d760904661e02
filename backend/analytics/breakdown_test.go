package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubjectBreakdown(t *testing.T) {
	records := []SessionRecord{
		{Subject: "Math", Minutes: 30, Date: date(2024, time.June, 9)},
		{Subject: "Physics", Minutes: 70, Date: date(2024, time.June, 10)},
	}

	breakdown := SubjectBreakdown(records)

	assert.Len(t, breakdown, 2)
	assert.Equal(t, "Physics", breakdown[0].Subject)
	assert.Equal(t, 70.0, breakdown[0].Percentage)
	assert.Equal(t, 1.2, breakdown[0].Hours)
	assert.Equal(t, "Math", breakdown[1].Subject)
	assert.Equal(t, 30.0, breakdown[1].Percentage)
	assert.Equal(t, 0.5, breakdown[1].Hours)
}

func TestSubjectBreakdownEmptyOnZeroTotal(t *testing.T) {
	assert.Empty(t, SubjectBreakdown(nil))

	// Records present but all zero minutes: still no division by zero.
	records := []SessionRecord{{Subject: "Math", Minutes: 0}}
	assert.Empty(t, SubjectBreakdown(records))
}

func TestSubjectBreakdownTieKeepsFirstSeenOrder(t *testing.T) {
	records := []SessionRecord{
		{Subject: "History", Minutes: 50},
		{Subject: "Biology", Minutes: 50},
	}

	breakdown := SubjectBreakdown(records)

	assert.Equal(t, "History", breakdown[0].Subject)
	assert.Equal(t, "Biology", breakdown[1].Subject)
	assert.Equal(t, breakdown[0].Percentage, breakdown[1].Percentage)
}

func TestSubjectBreakdownRounding(t *testing.T) {
	records := []SessionRecord{
		{Subject: "Math", Minutes: 1},
		{Subject: "Physics", Minutes: 2},
	}

	breakdown := SubjectBreakdown(records)

	assert.Equal(t, 66.7, breakdown[0].Percentage)
	assert.Equal(t, 33.3, breakdown[1].Percentage)
}

func TestSubjectBreakdownIdempotent(t *testing.T) {
	records := []SessionRecord{
		{Subject: "Math", Minutes: 30},
		{Subject: "Physics", Minutes: 70},
		{Subject: "Math", Minutes: 15},
	}

	first := SubjectBreakdown(records)
	second := SubjectBreakdown(records)
	assert.Equal(t, first, second)
}
