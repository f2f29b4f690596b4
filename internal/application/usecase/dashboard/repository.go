// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Granularity represents the aggregation bucket size for trend series.
type Granularity string

const (
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// GetDateRange returns the date range of the user's expense history.
	GetDateRange(ctx context.Context, userID uuid.UUID) (*DateRange, error)

	// GetAggregatedTrends returns spend/saved trends aggregated by granularity.
	GetAggregatedTrends(
		ctx context.Context,
		userID uuid.UUID,
		startDate, endDate time.Time,
		granularity Granularity,
	) ([]RawTrendData, error)
}

// DateRange represents the date boundaries of a user's expense history.
type DateRange struct {
	OldestDate    *time.Time
	NewestDate    *time.Time
	TotalExpenses int
}

// RawTrendData represents one aggregated period from the database.
type RawTrendData struct {
	PeriodStart  time.Time
	Spent        decimal.Decimal
	Saved        decimal.Decimal
	ExpenseCount int
}
