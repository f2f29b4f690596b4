// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"
)

// GeneratePeriodLabel generates a human-readable label for a period.
// Formats:
// - Weekly: "W{week} {year}" (e.g., "W12 2025")
// - Monthly: "{month_abbr} {year}" (e.g., "Mar 2025")
func GeneratePeriodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		_, week := date.ISOWeek()
		return fmt.Sprintf("W%d %d", week, date.Year())
	case GranularityMonthly:
		return fmt.Sprintf("%s %d", date.Month().String()[:3], date.Year())
	default:
		return date.Format("2006-01-02")
	}
}

// PeriodInfo holds information about a single period.
type PeriodInfo struct {
	Date        time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodLabel string
}

// GeneratePeriodSeries generates all periods between startDate and endDate for
// the given granularity. This ensures continuous data for chart rendering with
// no gaps.
func GeneratePeriodSeries(startDate, endDate time.Time, granularity Granularity) []PeriodInfo {
	var periods []PeriodInfo
	loc := startDate.Location()

	switch granularity {
	case GranularityWeekly:
		current := getWeekStartDate(startDate)
		for !current.After(endDate) {
			weekEnd := current.AddDate(0, 0, 6)
			if weekEnd.After(endDate) {
				weekEnd = endDate
			}
			periods = append(periods, PeriodInfo{
				Date:        current,
				PeriodStart: current,
				PeriodEnd:   weekEnd,
				PeriodLabel: GeneratePeriodLabel(current, GranularityWeekly),
			})
			current = current.AddDate(0, 0, 7)
		}

	case GranularityMonthly:
		current := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, loc)
		for !current.After(endDate) {
			monthEnd := current.AddDate(0, 1, -1)
			periods = append(periods, PeriodInfo{
				Date:        current,
				PeriodStart: current,
				PeriodEnd:   monthEnd,
				PeriodLabel: GeneratePeriodLabel(current, GranularityMonthly),
			})
			current = current.AddDate(0, 1, 0)
		}
	}

	return periods
}

// getWeekStartDate returns the Sunday of the week containing the given date.
// Weeks start on Sunday, matching the metrics engine's weekly windows.
func getWeekStartDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day()-int(date.Weekday()), 0, 0, 0, 0, date.Location())
}

// GetPeriodKeyForDate returns a unique key for the period containing the date.
func GetPeriodKeyForDate(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		return getWeekStartDate(date).Format("2006-01-02")
	case GranularityMonthly:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).Format("2006-01-02")
	default:
		return date.Format("2006-01-02")
	}
}
