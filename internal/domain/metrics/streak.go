package metrics

import (
	"sort"
	"time"
)

// currentStreak counts consecutive calendar days with at least one saving,
// walking backward from today. A day without a saving today does not break
// an ongoing streak; the walk then starts from yesterday. The walk stops at
// the first gap.
func currentStreak(savingDays map[time.Time]struct{}, today time.Time) int {
	cursor := today
	if _, ok := savingDays[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := savingDays[cursor]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// longestStreak returns the maximum run of consecutive saving days over the
// full history: sort the distinct days ascending and scan for day deltas of
// exactly one.
func longestStreak(savingDays map[time.Time]struct{}) int {
	if len(savingDays) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(savingDays))
	for d := range savingDays {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
