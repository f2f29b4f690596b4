// Package insight contains AI spending insight use cases.
package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetMonthlyInsightInput represents the input for the monthly insight.
type GetMonthlyInsightInput struct {
	UserID uuid.UUID
	// AsOf injects the reference clock; zero means now.
	AsOf time.Time
}

// GetMonthlyInsightOutput represents the generated monthly insight.
type GetMonthlyInsightOutput struct {
	Month       string
	Summary     string
	Suggestions []string
	// Generated is false when the insight service is not configured; the
	// caller gets the month label and empty content instead of an error.
	Generated bool
}

// GetMonthlyInsightUseCase generates a natural-language summary of the
// current month's metrics report.
type GetMonthlyInsightUseCase struct {
	overview       *dashboard.GetOverviewUseCase
	userRepo       adapter.UserRepository
	insightService adapter.InsightService
}

// NewGetMonthlyInsightUseCase creates a new GetMonthlyInsightUseCase instance.
func NewGetMonthlyInsightUseCase(
	overview *dashboard.GetOverviewUseCase,
	userRepo adapter.UserRepository,
	insightService adapter.InsightService,
) *GetMonthlyInsightUseCase {
	return &GetMonthlyInsightUseCase{
		overview:       overview,
		userRepo:       userRepo,
		insightService: insightService,
	}
}

// Execute computes the metrics report and asks the insight service for a
// summary of it.
func (uc *GetMonthlyInsightUseCase) Execute(ctx context.Context, input GetMonthlyInsightInput) (*GetMonthlyInsightOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	month := asOf.Format("January 2006")

	if uc.insightService == nil || !uc.insightService.IsAvailable() {
		return &GetMonthlyInsightOutput{Month: month}, nil
	}

	overview, err := uc.overview.Execute(ctx, dashboard.GetOverviewInput{
		UserID: input.UserID,
		AsOf:   asOf,
	})
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	result, err := uc.insightService.GenerateMonthlyInsight(ctx, &adapter.InsightRequest{
		UserName:       user.Name,
		CurrencySymbol: user.CurrencySymbol,
		Month:          month,
		Report:         overview.Report,
	})
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightGeneration,
			"insight generation failed",
			err,
		)
	}

	return &GetMonthlyInsightOutput{
		Month:       month,
		Summary:     result.Summary,
		Suggestions: result.Suggestions,
		Generated:   true,
	}, nil
}
