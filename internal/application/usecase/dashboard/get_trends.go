// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetTrendsInput represents the input for getting trends.
type GetTrendsInput struct {
	UserID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// TrendPoint represents a single trend data point.
type TrendPoint struct {
	Date         time.Time
	PeriodLabel  string
	Spent        decimal.Decimal
	Saved        decimal.Decimal
	Net          decimal.Decimal
	ExpenseCount int
}

// TrendsPeriod represents the period information for trends.
type TrendsPeriod struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// GetTrendsOutput represents the output of getting trends.
type GetTrendsOutput struct {
	Period TrendsPeriod
	Trends []TrendPoint
}

// GetTrendsUseCase handles getting spend/saved trends.
type GetTrendsUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(dashboardRepo DashboardRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute retrieves spend/saved trends for the given period and granularity.
// Periods without data appear as zero points so charts render without gaps.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	rawTrends, err := uc.dashboardRepo.GetAggregatedTrends(
		ctx,
		input.UserID,
		input.StartDate,
		input.EndDate,
		input.Granularity,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get trends: %w", err)
	}

	rawDataMap := make(map[string]RawTrendData)
	for _, rd := range rawTrends {
		key := GetPeriodKeyForDate(rd.PeriodStart, input.Granularity)
		rawDataMap[key] = rd
	}

	periods := GeneratePeriodSeries(input.StartDate, input.EndDate, input.Granularity)

	trends := make([]TrendPoint, 0, len(periods))
	for _, period := range periods {
		key := period.Date.Format("2006-01-02")

		point := TrendPoint{
			Date:        period.Date,
			PeriodLabel: period.PeriodLabel,
			Spent:       decimal.Zero,
			Saved:       decimal.Zero,
			Net:         decimal.Zero,
		}
		if rawData, ok := rawDataMap[key]; ok {
			point.Spent = rawData.Spent
			point.Saved = rawData.Saved
			point.Net = rawData.Saved.Sub(rawData.Spent)
			point.ExpenseCount = rawData.ExpenseCount
		}
		trends = append(trends, point)
	}

	return &GetTrendsOutput{
		Period: TrendsPeriod{
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
			Granularity: input.Granularity,
		},
		Trends: trends,
	}, nil
}

// validateInput validates the input parameters.
func (uc *GetTrendsUseCase) validateInput(input GetTrendsInput) error {
	if input.StartDate.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if input.EndDate.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	if input.Granularity != GranularityWeekly && input.Granularity != GranularityMonthly {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: weekly or monthly",
			domainerror.ErrInvalidGranularity,
		)
	}

	return nil
}
