package metrics

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daySet(days ...time.Time) map[time.Time]struct{} {
	set := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

func TestCurrentStreak(t *testing.T) {
	today := day(2024, 3, 15)

	t.Run("three consecutive days ending today", func(t *testing.T) {
		set := daySet(day(2024, 3, 15), day(2024, 3, 14), day(2024, 3, 13))
		if got := currentStreak(set, today); got != 3 {
			t.Errorf("expected streak 3, got %d", got)
		}
	})

	t.Run("gap stops the walk", func(t *testing.T) {
		// Savings on today and the day before yesterday; yesterday is a gap.
		set := daySet(day(2024, 3, 15), day(2024, 3, 13))
		if got := currentStreak(set, today); got != 1 {
			t.Errorf("expected streak 1, got %d", got)
		}
	})

	t.Run("today without a saving starts from yesterday", func(t *testing.T) {
		set := daySet(day(2024, 3, 14), day(2024, 3, 13))
		if got := currentStreak(set, today); got != 2 {
			t.Errorf("expected streak 2, got %d", got)
		}
	})

	t.Run("no savings at all", func(t *testing.T) {
		if got := currentStreak(daySet(), today); got != 0 {
			t.Errorf("expected streak 0, got %d", got)
		}
	})

	t.Run("old savings only", func(t *testing.T) {
		set := daySet(day(2024, 3, 1), day(2024, 3, 2))
		if got := currentStreak(set, today); got != 0 {
			t.Errorf("expected streak 0, got %d", got)
		}
	})
}

func TestLongestStreak(t *testing.T) {
	t.Run("finds the longest run in history", func(t *testing.T) {
		set := daySet(
			day(2024, 1, 1), day(2024, 1, 2),
			day(2024, 2, 10), day(2024, 2, 11), day(2024, 2, 12), day(2024, 2, 13),
			day(2024, 3, 1),
		)
		if got := longestStreak(set); got != 4 {
			t.Errorf("expected longest streak 4, got %d", got)
		}
	})

	t.Run("run across a month boundary", func(t *testing.T) {
		set := daySet(day(2024, 2, 28), day(2024, 2, 29), day(2024, 3, 1))
		if got := longestStreak(set); got != 3 {
			t.Errorf("expected longest streak 3, got %d", got)
		}
	})

	t.Run("single day", func(t *testing.T) {
		if got := longestStreak(daySet(day(2024, 3, 15))); got != 1 {
			t.Errorf("expected longest streak 1, got %d", got)
		}
	})

	t.Run("empty history", func(t *testing.T) {
		if got := longestStreak(daySet()); got != 0 {
			t.Errorf("expected longest streak 0, got %d", got)
		}
	})
}
