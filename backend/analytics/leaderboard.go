package analytics

import "sort"

// Standing is one user's aggregate for the leaderboard: minutes studied in
// the current calendar month and the current streak.
type Standing struct {
	UserID   uint    `json:"user_id"`
	Username string  `json:"username"`
	Minutes  int     `json:"minutes"`
	Hours    float64 `json:"hours"`
	Streak   int     `json:"streak"`
}

// NewStanding fills the display hours (1 decimal) from the raw minutes.
func NewStanding(userID uint, username string, minutes, streak int) Standing {
	return Standing{
		UserID:   userID,
		Username: username,
		Minutes:  minutes,
		Hours:    round1(float64(minutes) / 60),
		Streak:   streak,
	}
}

// RankByMinutes orders the standings by monthly minutes, descending. With
// topOnly, users with zero minutes are dropped; otherwise every user stays
// in the list. Ties keep the caller's order — контроллер перечисляет
// пользователей по возрастанию ID, это и есть вторичный ключ.
func RankByMinutes(standings []Standing, topOnly bool) []Standing {
	ranked := filterStandings(standings, topOnly, func(s Standing) bool { return s.Minutes > 0 })
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Minutes > ranked[j].Minutes })
	return ranked
}

// RankByStreak orders the standings by current streak, descending. With
// topOnly, users with a zero streak are dropped.
func RankByStreak(standings []Standing, topOnly bool) []Standing {
	ranked := filterStandings(standings, topOnly, func(s Standing) bool { return s.Streak > 0 })
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Streak > ranked[j].Streak })
	return ranked
}

func filterStandings(standings []Standing, topOnly bool, keep func(Standing) bool) []Standing {
	out := make([]Standing, 0, len(standings))
	for _, s := range standings {
		if topOnly && !keep(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
