// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"sort"
	"time"

	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
)

// CategorySpendResponse represents one category of the monthly breakdown.
type CategorySpendResponse struct {
	Category string `json:"category"`
	Spent    string `json:"spent"`
	Budget   string `json:"budget"`
	Budgeted bool   `json:"budgeted"`
	Badge    string `json:"badge"`
}

// OverviewResponse represents the dashboard overview.
type OverviewResponse struct {
	AsOf           time.Time `json:"as_of"`
	CurrencySymbol string    `json:"currency_symbol"`

	MonthlyTotal      string                  `json:"monthly_total"`
	Remaining         string                  `json:"remaining"`
	CategoryBreakdown []CategorySpendResponse `json:"category_breakdown"`

	WeeklySpent         string  `json:"weekly_spent"`
	WeeklySaved         string  `json:"weekly_saved"`
	LastWeekSpent       string  `json:"last_week_spent"`
	WeeklyChangePercent float64 `json:"weekly_change_percent"`
	WeeklyBudget        string  `json:"weekly_budget"`

	DailyAllowance string `json:"daily_allowance"`
	NoSpendDays    int    `json:"no_spend_days"`
	HealthScore    int    `json:"health_score"`

	CurrentStreak     int  `json:"current_streak"`
	LongestStreak     int  `json:"longest_streak"`
	ChallengeComplete bool `json:"challenge_complete"`

	PredictedTotal     string `json:"predicted_total"`
	PredictedOverUnder string `json:"predicted_over_under"`

	Points       int      `json:"points"`
	Level        int      `json:"level"`
	EarnedBadges []string `json:"earned_badges"`
}

// TrendPointResponse represents a single trend data point.
type TrendPointResponse struct {
	Date         string `json:"date"`
	PeriodLabel  string `json:"period_label"`
	Spent        string `json:"spent"`
	Saved        string `json:"saved"`
	Net          string `json:"net"`
	ExpenseCount int    `json:"expense_count"`
}

// TrendsPeriodResponse represents the period metadata for trends.
type TrendsPeriodResponse struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Granularity string `json:"granularity"`
}

// TrendsResponse represents the response for the trends endpoint.
type TrendsResponse struct {
	Period TrendsPeriodResponse `json:"period"`
	Trends []TrendPointResponse `json:"trends"`
}

// DataRangeResponse represents the date boundaries of the expense history.
type DataRangeResponse struct {
	OldestDate    *string `json:"oldest_date"`
	NewestDate    *string `json:"newest_date"`
	TotalExpenses int     `json:"total_expenses"`
	HasData       bool    `json:"has_data"`
}

// ToOverviewResponse converts an overview output to an OverviewResponse DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	report := output.Report

	breakdown := make([]CategorySpendResponse, 0, len(report.CategoryBreakdown))
	for category, spend := range report.CategoryBreakdown {
		breakdown = append(breakdown, CategorySpendResponse{
			Category: category,
			Spent:    spend.Spent.StringFixed(2),
			Budget:   spend.Budget.StringFixed(2),
			Budgeted: spend.Budgeted,
			Badge:    string(spend.Tier),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Category < breakdown[j].Category
	})

	badges := output.EarnedBadges
	if badges == nil {
		badges = []string{}
	}

	return OverviewResponse{
		AsOf:           output.AsOf,
		CurrencySymbol: output.CurrencySymbol,

		MonthlyTotal:      report.MonthlyTotal.StringFixed(2),
		Remaining:         report.Remaining.StringFixed(2),
		CategoryBreakdown: breakdown,

		WeeklySpent:         report.WeeklySpent.StringFixed(2),
		WeeklySaved:         report.WeeklySaved.StringFixed(2),
		LastWeekSpent:       report.LastWeekSpent.StringFixed(2),
		WeeklyChangePercent: report.WeeklyChangePercent,
		WeeklyBudget:        report.WeeklyBudget.StringFixed(2),

		DailyAllowance: report.DailyAllowance.StringFixed(2),
		NoSpendDays:    report.NoSpendDays,
		HealthScore:    report.HealthScore,

		CurrentStreak:     report.CurrentStreak,
		LongestStreak:     report.LongestStreak,
		ChallengeComplete: report.ChallengeComplete,

		PredictedTotal:     report.PredictedTotal.StringFixed(2),
		PredictedOverUnder: report.PredictedOverUnder.StringFixed(2),

		Points:       output.Points,
		Level:        output.Level,
		EarnedBadges: badges,
	}
}

// ToTrendsResponse converts a trends output to a TrendsResponse DTO.
func ToTrendsResponse(output *dashboard.GetTrendsOutput) TrendsResponse {
	trends := make([]TrendPointResponse, len(output.Trends))
	for i, point := range output.Trends {
		trends[i] = TrendPointResponse{
			Date:         point.Date.Format("2006-01-02"),
			PeriodLabel:  point.PeriodLabel,
			Spent:        point.Spent.StringFixed(2),
			Saved:        point.Saved.StringFixed(2),
			Net:          point.Net.StringFixed(2),
			ExpenseCount: point.ExpenseCount,
		}
	}

	return TrendsResponse{
		Period: TrendsPeriodResponse{
			StartDate:   output.Period.StartDate.Format("2006-01-02"),
			EndDate:     output.Period.EndDate.Format("2006-01-02"),
			Granularity: string(output.Period.Granularity),
		},
		Trends: trends,
	}
}

// ToDataRangeResponse converts a data range output to a DataRangeResponse DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	response := DataRangeResponse{
		TotalExpenses: output.TotalExpenses,
		HasData:       output.HasData,
	}

	if output.OldestDate != nil {
		oldest := output.OldestDate.Format("2006-01-02")
		response.OldestDate = &oldest
	}
	if output.NewestDate != nil {
		newest := output.NewestDate.Format("2006-01-02")
		response.NewestDate = &newest
	}

	return response
}
