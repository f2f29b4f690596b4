// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetDataRangeInput represents the input for getting the data range.
type GetDataRangeInput struct {
	UserID uuid.UUID
}

// GetDataRangeOutput represents the output of getting the data range.
type GetDataRangeOutput struct {
	OldestDate    *time.Time
	NewestDate    *time.Time
	TotalExpenses int
	HasData       bool
}

// GetDataRangeUseCase handles getting the date range of the user's expenses.
type GetDataRangeUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(dashboardRepo DashboardRepository) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute retrieves the date range of the user's expense history. The
// frontend uses it to bound the trends date picker.
func (uc *GetDataRangeUseCase) Execute(ctx context.Context, input GetDataRangeInput) (*GetDataRangeOutput, error) {
	dateRange, err := uc.dashboardRepo.GetDateRange(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	hasData := dateRange.OldestDate != nil && dateRange.NewestDate != nil

	return &GetDataRangeOutput{
		OldestDate:    dateRange.OldestDate,
		NewestDate:    dateRange.NewestDate,
		TotalExpenses: dateRange.TotalExpenses,
		HasData:       hasData,
	}, nil
}
