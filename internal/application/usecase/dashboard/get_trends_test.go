// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type fakeDashboardRepo struct {
	trends []RawTrendData
}

func (r *fakeDashboardRepo) GetDateRange(context.Context, uuid.UUID) (*DateRange, error) {
	return &DateRange{}, nil
}

func (r *fakeDashboardRepo) GetAggregatedTrends(context.Context, uuid.UUID, time.Time, time.Time, Granularity) ([]RawTrendData, error) {
	return r.trends, nil
}

func TestGetTrends(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("fills empty periods with zeros", func(t *testing.T) {
		repo := &fakeDashboardRepo{trends: []RawTrendData{
			{
				PeriodStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Spent:        decimal.NewFromInt(300),
				Saved:        decimal.NewFromInt(100),
				ExpenseCount: 4,
			},
			{
				PeriodStart:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Spent:        decimal.NewFromInt(200),
				Saved:        decimal.NewFromInt(50),
				ExpenseCount: 2,
			},
		}}
		uc := NewGetTrendsUseCase(repo)

		out, err := uc.Execute(ctx, GetTrendsInput{
			UserID:      userID,
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			Granularity: GranularityMonthly,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Trends) != 3 {
			t.Fatalf("expected 3 monthly points, got %d", len(out.Trends))
		}
		// February has no data but still appears
		feb := out.Trends[1]
		if feb.PeriodLabel != "Feb 2024" {
			t.Errorf("expected label Feb 2024, got %s", feb.PeriodLabel)
		}
		if !feb.Spent.IsZero() || !feb.Saved.IsZero() || feb.ExpenseCount != 0 {
			t.Errorf("expected zero February point, got %+v", feb)
		}
		jan := out.Trends[0]
		if !jan.Net.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected January net -200, got %s", jan.Net)
		}
	})

	t.Run("weekly periods start on Sunday", func(t *testing.T) {
		uc := NewGetTrendsUseCase(&fakeDashboardRepo{})

		out, err := uc.Execute(ctx, GetTrendsInput{
			UserID:      userID,
			StartDate:   time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), // Tuesday
			EndDate:     time.Date(2024, 3, 23, 0, 0, 0, 0, time.UTC),
			Granularity: GranularityWeekly,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Trends) != 2 {
			t.Fatalf("expected 2 weekly points, got %d", len(out.Trends))
		}
		first := out.Trends[0].Date
		if first.Weekday() != time.Sunday {
			t.Errorf("expected week to start on Sunday, got %s", first.Weekday())
		}
		if !first.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected first week start 2024-03-10, got %s", first)
		}
	})

	t.Run("rejects unsupported granularity", func(t *testing.T) {
		uc := NewGetTrendsUseCase(&fakeDashboardRepo{})

		_, err := uc.Execute(ctx, GetTrendsInput{
			UserID:      userID,
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Granularity: "daily",
		})
		if !errors.Is(err, domainerror.ErrInvalidGranularity) {
			t.Errorf("expected ErrInvalidGranularity, got %v", err)
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		uc := NewGetTrendsUseCase(&fakeDashboardRepo{})

		_, err := uc.Execute(ctx, GetTrendsInput{
			UserID:      userID,
			StartDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Granularity: GranularityMonthly,
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}
