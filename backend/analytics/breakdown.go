package analytics

import "sort"

// SubjectShare is one slice of the subject pie chart.
type SubjectShare struct {
	Subject    string  `json:"subject"`
	Minutes    int     `json:"minutes"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

// SubjectBreakdown groups the records by subject and derives each subject's
// share of the total time. Returns an empty list when the total is zero.
// Sorted descending by percentage; exact ties keep first-seen subject order.
func SubjectBreakdown(records []SessionRecord) []SubjectShare {
	totals := make(map[string]int)
	var order []string
	total := 0

	for _, r := range records {
		if _, ok := totals[r.Subject]; !ok {
			order = append(order, r.Subject)
		}
		totals[r.Subject] += r.Minutes
		total += r.Minutes
	}

	if total == 0 {
		return []SubjectShare{}
	}

	breakdown := make([]SubjectShare, 0, len(order))
	for _, subject := range order {
		minutes := totals[subject]
		breakdown = append(breakdown, SubjectShare{
			Subject:    subject,
			Minutes:    minutes,
			Hours:      round1(float64(minutes) / 60),
			Percentage: round1(float64(minutes) / float64(total) * 100),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Percentage > breakdown[j].Percentage
	})
	return breakdown
}
