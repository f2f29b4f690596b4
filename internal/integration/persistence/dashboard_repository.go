// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
// Aggregation happens in Go after fetching the raw rows, so the same code
// path works on postgres and the sqlite test database, and amounts stay in
// decimal arithmetic end to end.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetDateRange returns the date range of the user's expense history.
func (r *dashboardRepository) GetDateRange(ctx context.Context, userID uuid.UUID) (*dashboard.DateRange, error) {
	var result struct {
		OldestDate *time.Time
		NewestDate *time.Time
		Total      int64
	}

	err := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).
		Select("MIN(date) AS oldest_date, MAX(date) AS newest_date, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &dashboard.DateRange{
		OldestDate:    result.OldestDate,
		NewestDate:    result.NewestDate,
		TotalExpenses: int(result.Total),
	}, nil
}

// GetAggregatedTrends returns spend/saved trends aggregated by granularity.
func (r *dashboardRepository) GetAggregatedTrends(
	ctx context.Context,
	userID uuid.UUID,
	startDate, endDate time.Time,
	granularity dashboard.Granularity,
) ([]dashboard.RawTrendData, error) {
	var expenseModels []model.ExpenseModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}

	var savingModels []model.SavingModel
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Find(&savingModels).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*dashboard.RawTrendData)

	bucketFor := func(date time.Time) *dashboard.RawTrendData {
		key := dashboard.GetPeriodKeyForDate(date, granularity)
		bucket, ok := buckets[key]
		if !ok {
			periodStart, _ := time.Parse("2006-01-02", key)
			bucket = &dashboard.RawTrendData{
				PeriodStart: periodStart,
				Spent:       decimal.Zero,
				Saved:       decimal.Zero,
			}
			buckets[key] = bucket
		}
		return bucket
	}

	for _, expense := range expenseModels {
		bucket := bucketFor(expense.Date)
		bucket.Spent = bucket.Spent.Add(expense.Amount)
		bucket.ExpenseCount++
	}
	for _, saving := range savingModels {
		bucket := bucketFor(saving.Date)
		bucket.Saved = bucket.Saved.Add(saving.Amount)
	}

	trends := make([]dashboard.RawTrendData, 0, len(buckets))
	for _, bucket := range buckets {
		trends = append(trends, *bucket)
	}
	sort.Slice(trends, func(i, j int) bool {
		return trends[i].PeriodStart.Before(trends[j].PeriodStart)
	})

	return trends, nil
}
