// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/domain/metrics"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
	// AsOf injects the reference clock; zero means now. Responses are
	// deterministic for a fixed AsOf and data set.
	AsOf time.Time
}

// GetOverviewOutput represents the dashboard overview.
type GetOverviewOutput struct {
	AsOf           time.Time
	CurrencySymbol string
	Report         *metrics.Report
	Points         int
	Level          int
	EarnedBadges   []string
}

// GetOverviewUseCase runs the metrics engine over the user's full snapshot.
type GetOverviewUseCase struct {
	userRepo    adapter.UserRepository
	expenseRepo adapter.ExpenseRepository
	savingRepo  adapter.SavingRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	userRepo adapter.UserRepository,
	expenseRepo adapter.ExpenseRepository,
	savingRepo adapter.SavingRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		savingRepo:  savingRepo,
	}
}

// Execute fetches the user, expenses and savings concurrently, computes the
// metrics report, and persists newly earned badges.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	// The engine filters by window itself; fetch everything from the start
	// of last week's month backward-most window. Savings need full history
	// for the longest streak.
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastWeekStart := asOf.AddDate(0, 0, -int(asOf.Weekday())-7)
	expenseFrom := monthStart
	if lastWeekStart.Before(expenseFrom) {
		expenseFrom = lastWeekStart
	}

	var (
		user     *entity.User
		expenses []*entity.Expense
		savings  []*entity.Saving
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = uc.userRepo.FindByID(gctx, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrUserNotFound) {
				return domainerror.NewProfileError(
					domainerror.ErrCodeProfileNotFound,
					"profile not found",
					domainerror.ErrProfileNotFound,
				)
			}
			return fmt.Errorf("failed to find user: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = uc.expenseRepo.FindByDateRange(gctx, input.UserID, expenseFrom, asOf)
		if err != nil {
			return fmt.Errorf("failed to fetch expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		savings, err = uc.savingRepo.FindByUser(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to fetch savings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report, err := metrics.Compute(
		toMetricsExpenses(expenses),
		toMetricsSavings(savings),
		metrics.Config{
			MonthlyBudget:   user.MonthlyBudget,
			CategoryBudgets: user.CategoryBudgets,
		},
		asOf,
	)
	if err != nil {
		return nil, err
	}

	uc.awardBadges(ctx, user, report, asOf)

	return &GetOverviewOutput{
		AsOf:           asOf,
		CurrencySymbol: user.CurrencySymbol,
		Report:         report,
		Points:         user.Points,
		Level:          user.Level(),
		EarnedBadges:   user.EarnedBadges,
	}, nil
}

// awardBadges persists achievement badges derived from the report: each tier
// reached on a budgeted category, plus a month-stamped challenge badge when
// every budgeted category held its budget. Failures only log; the overview
// itself is read-only from the caller's point of view.
func (uc *GetOverviewUseCase) awardBadges(ctx context.Context, user *entity.User, report *metrics.Report, asOf time.Time) {
	seen := map[string]struct{}{}
	var earned []string
	for _, entry := range report.CategoryBreakdown {
		if !entry.Budgeted || entry.Tier == metrics.BadgeNone {
			continue
		}
		name := string(entry.Tier)
		if _, dup := seen[name]; dup || user.HasBadge(name) {
			continue
		}
		seen[name] = struct{}{}
		earned = append(earned, name)
	}

	// ChallengeComplete is only ever true when at least one budgeted
	// category exists, so no further guard is needed here.
	if report.ChallengeComplete {
		name := "challenge-" + asOf.Format("2006-01")
		if !user.HasBadge(name) {
			earned = append(earned, name)
		}
	}

	if len(earned) == 0 {
		return
	}
	sort.Strings(earned)

	if err := uc.userRepo.AddBadges(ctx, user.ID, earned); err != nil {
		slog.Error("Failed to persist earned badges", "error", err, "userID", user.ID)
		return
	}
	user.EarnedBadges = append(user.EarnedBadges, earned...)
}

func toMetricsExpenses(expenses []*entity.Expense) []metrics.Expense {
	out := make([]metrics.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = metrics.Expense{
			ID:       e.ID,
			Category: e.Category,
			Amount:   e.Amount,
			Date:     e.Date,
		}
	}
	return out
}

func toMetricsSavings(savings []*entity.Saving) []metrics.Saving {
	out := make([]metrics.Saving, len(savings))
	for i, s := range savings {
		out[i] = metrics.Saving{
			ID:     s.ID,
			Amount: s.Amount,
			Date:   s.Date,
		}
	}
	return out
}
