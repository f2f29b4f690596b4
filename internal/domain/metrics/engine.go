// Package metrics implements the derived financial metrics engine.
//
// The engine is a pure function of its inputs: given a point-in-time snapshot
// of a user's expenses and savings plus the budget configuration, it computes
// every dashboard-displayed derived value (totals, pacing, health score,
// streaks, badges, prediction). The reference clock is injected; the engine
// never reads the system clock, performs I/O, or mutates its inputs.
package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

const (
	// DefaultCategoryBudget is reported for categories that have expenses
	// this month but no configured budget.
	DefaultCategoryBudget = 500

	// pacingScoreMax and noSpendScoreMax split the 0-100 health score.
	pacingScoreMax  = 70.0
	noSpendScoreMax = 30.0

	// noSpendDayPoints is the health score contribution of one no-spend day.
	noSpendDayPoints = 7.5
)

// WeeksPerMonth is the fixed week-to-month conversion used for weekly budget
// pacing. It is a constant by convention, not a computed value.
var WeeksPerMonth = decimal.NewFromFloat(4.33)

// Expense is the engine's view of a spending record.
type Expense struct {
	ID       uuid.UUID
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// Saving is the engine's view of a savings deposit.
type Saving struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
}

// Config carries the budget configuration the engine computes against.
type Config struct {
	MonthlyBudget   decimal.Decimal
	CategoryBudgets map[string]decimal.Decimal
}

// BadgeTier is the per-category badge earned from budget adherence.
type BadgeTier string

const (
	BadgeGold   BadgeTier = "gold"
	BadgeSilver BadgeTier = "silver"
	BadgeBronze BadgeTier = "bronze"
	BadgeNone   BadgeTier = "none"
)

// CategorySpend is one entry of the category breakdown.
type CategorySpend struct {
	Spent    decimal.Decimal
	Budget   decimal.Decimal
	Budgeted bool // false when Budget is the fallback default
	Tier     BadgeTier
}

// Report is the result record of one engine run.
type Report struct {
	MonthlyTotal      decimal.Decimal
	Remaining         decimal.Decimal
	CategoryBreakdown map[string]CategorySpend

	WeeklySpent         decimal.Decimal
	WeeklySaved         decimal.Decimal
	LastWeekSpent       decimal.Decimal
	WeeklyChangePercent float64
	WeeklyBudget        decimal.Decimal

	DailyAllowance decimal.Decimal
	NoSpendDays    int

	PacingScore  float64
	NoSpendScore float64
	HealthScore  int

	CurrentStreak int
	LongestStreak int

	ChallengeComplete bool

	PredictedTotal     decimal.Decimal
	PredictedOverUnder decimal.Decimal
}

// Compute runs the engine over a snapshot. It is deterministic: identical
// inputs always produce an identical report. Invalid configuration or
// malformed records fail fast instead of propagating through the arithmetic.
func Compute(expenses []Expense, savings []Saving, cfg Config, now time.Time) (*Report, error) {
	if err := validate(expenses, savings, cfg); err != nil {
		return nil, err
	}

	today := civilDate(now)
	weekStart := today.AddDate(0, 0, -int(today.Weekday())) // Sunday
	weekEnd := weekStart.AddDate(0, 0, 6)
	lastWeekStart := weekStart.AddDate(0, 0, -7)

	day := now.Day()
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	report := &Report{
		CategoryBreakdown: make(map[string]CategorySpend),
		MonthlyTotal:      decimal.Zero,
		WeeklySpent:       decimal.Zero,
		WeeklySaved:       decimal.Zero,
		LastWeekSpent:     decimal.Zero,
	}

	spentByCategory := make(map[string]decimal.Decimal)
	spendDays := make(map[time.Time]struct{})

	for _, e := range expenses {
		d := civilDate(e.Date)
		spendDays[d] = struct{}{}

		if d.Year() == now.Year() && d.Month() == now.Month() {
			report.MonthlyTotal = report.MonthlyTotal.Add(e.Amount)
			spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount)
		}
		if inRange(d, weekStart, weekEnd) {
			report.WeeklySpent = report.WeeklySpent.Add(e.Amount)
		}
		if inRange(d, lastWeekStart, weekStart.AddDate(0, 0, -1)) {
			report.LastWeekSpent = report.LastWeekSpent.Add(e.Amount)
		}
	}

	savingDays := make(map[time.Time]struct{})
	for _, s := range savings {
		d := civilDate(s.Date)
		savingDays[d] = struct{}{}
		if inRange(d, weekStart, weekEnd) {
			report.WeeklySaved = report.WeeklySaved.Add(s.Amount)
		}
	}

	report.Remaining = cfg.MonthlyBudget.Sub(report.MonthlyTotal)
	report.WeeklyBudget = cfg.MonthlyBudget.Div(WeeksPerMonth).Round(2)

	// Week-over-week change; an empty previous week is a 0% diff by
	// convention, not a division by zero.
	if report.LastWeekSpent.IsZero() {
		report.WeeklyChangePercent = 0
	} else {
		diff := report.WeeklySpent.Sub(report.LastWeekSpent)
		report.WeeklyChangePercent = diff.Div(report.LastWeekSpent).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	// Days remaining excludes today; once the month is exhausted the
	// allowance is zero rather than a division by zero.
	daysRemaining := daysInMonth - day
	if daysRemaining <= 0 {
		report.DailyAllowance = decimal.Zero
	} else {
		report.DailyAllowance = report.Remaining.Div(decimal.NewFromInt(int64(daysRemaining))).Round(2)
	}

	for d := weekStart; !d.After(today); d = d.AddDate(0, 0, 1) {
		if _, spent := spendDays[d]; !spent {
			report.NoSpendDays++
		}
	}

	report.buildBreakdown(spentByCategory, cfg)
	report.scoreHealth(cfg, day, daysInMonth)
	report.CurrentStreak = currentStreak(savingDays, today)
	report.LongestStreak = longestStreak(savingDays)
	report.predict(cfg, day, daysInMonth)

	return report, nil
}

// buildBreakdown fills the category breakdown from this month's per-category
// sums, the configured budgets, and the fallback default, and decides the
// monthly challenge. Badge tiers are computed only for configured categories.
func (r *Report) buildBreakdown(spentByCategory map[string]decimal.Decimal, cfg Config) {
	fallback := decimal.NewFromInt(DefaultCategoryBudget)

	for category, spent := range spentByCategory {
		entry := CategorySpend{Spent: spent, Budget: fallback, Tier: BadgeNone}
		if budget, ok := cfg.CategoryBudgets[category]; ok {
			entry.Budget = budget
			entry.Budgeted = true
			entry.Tier = badgeTier(spent, budget)
		}
		r.CategoryBreakdown[category] = entry
	}

	// Budgeted categories without expenses this month still show up, at the
	// best possible tier.
	for category, budget := range cfg.CategoryBudgets {
		if _, ok := r.CategoryBreakdown[category]; !ok {
			r.CategoryBreakdown[category] = CategorySpend{
				Spent:    decimal.Zero,
				Budget:   budget,
				Budgeted: true,
				Tier:     BadgeGold,
			}
		}
	}

	// The challenge needs at least one budgeted category; fallback-only
	// months never complete it.
	var budgeted, overspent bool
	for _, entry := range r.CategoryBreakdown {
		if !entry.Budgeted {
			continue
		}
		budgeted = true
		if entry.Spent.GreaterThan(entry.Budget) {
			overspent = true
			break
		}
	}
	r.ChallengeComplete = budgeted && !overspent
}

// badgeTier maps spent/budget adherence to a tier. Boundaries are inclusive:
// exactly 50% is still gold, exactly 100% is still bronze.
func badgeTier(spent, budget decimal.Decimal) BadgeTier {
	ratio := spent.Div(budget)
	switch {
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.50)):
		return BadgeGold
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.80)):
		return BadgeSilver
	case ratio.LessThanOrEqual(decimal.NewFromInt(1)):
		return BadgeBronze
	}
	return BadgeNone
}

// scoreHealth computes the 0-100 health score from budget pacing and the
// count of no-spend days this week.
func (r *Report) scoreHealth(cfg Config, day, daysInMonth int) {
	monthProgress := float64(day) / float64(daysInMonth)
	budgetUsed := r.MonthlyTotal.Div(cfg.MonthlyBudget).InexactFloat64()

	if budgetUsed <= monthProgress {
		r.PacingScore = pacingScoreMax
	} else {
		overPace := (budgetUsed - monthProgress) / monthProgress
		r.PacingScore = math.Max(0, pacingScoreMax-overPace*100)
	}

	r.NoSpendScore = math.Min(noSpendScoreMax, float64(r.NoSpendDays)*noSpendDayPoints)

	score := int(math.Round(r.PacingScore + r.NoSpendScore))
	// The component caps already bound the sum, but the clamp is part of the
	// score's contract.
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	r.HealthScore = score
}

// predict extrapolates the month-end total from the daily average so far.
func (r *Report) predict(cfg Config, day, daysInMonth int) {
	daysElapsed := day
	if daysElapsed < 1 {
		daysElapsed = 1
	}
	dailyAverage := r.MonthlyTotal.Div(decimal.NewFromInt(int64(daysElapsed)))
	r.PredictedTotal = dailyAverage.Mul(decimal.NewFromInt(int64(daysInMonth))).Round(2)
	r.PredictedOverUnder = r.PredictedTotal.Sub(cfg.MonthlyBudget)
}

// validate rejects unusable configuration and malformed records before any
// arithmetic runs, naming the offending record and field.
func validate(expenses []Expense, savings []Saving, cfg Config) error {
	if !cfg.MonthlyBudget.IsPositive() {
		return domainerror.NewMetricsError(
			domainerror.ErrCodeInvalidBudgetConfig,
			"monthly budget must be positive",
			domainerror.ErrInvalidBudgetConfig,
		)
	}
	for category, budget := range cfg.CategoryBudgets {
		if !budget.IsPositive() {
			return domainerror.NewMetricsError(
				domainerror.ErrCodeInvalidBudgetConfig,
				fmt.Sprintf("budget for category %q must be positive", category),
				domainerror.ErrInvalidBudgetConfig,
			)
		}
	}
	for _, e := range expenses {
		if e.Amount.IsNegative() {
			return malformed("expense", e.ID, "amount")
		}
		if e.Date.IsZero() {
			return malformed("expense", e.ID, "date")
		}
	}
	for _, s := range savings {
		if s.Amount.IsNegative() {
			return malformed("saving", s.ID, "amount")
		}
		if s.Date.IsZero() {
			return malformed("saving", s.ID, "date")
		}
	}
	return nil
}

func malformed(kind string, id uuid.UUID, field string) error {
	return domainerror.NewMetricsError(
		domainerror.ErrCodeMalformedRecord,
		fmt.Sprintf("%s %s: invalid %s", kind, id, field),
		domainerror.ErrMalformedRecord,
	)
}

// civilDate normalizes a timestamp to its calendar day. Expenses and savings
// carry dates, not instants, so the clock and zone components are dropped.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// inRange reports whether d falls within [start, end], all civil dates.
func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
