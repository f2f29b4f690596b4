// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type fakeUserRepo struct {
	user   *entity.User
	badges [][]string
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}

func (r *fakeUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (r *fakeUserRepo) Update(context.Context, *entity.User) error          { return nil }
func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error             { return nil }
func (r *fakeUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (r *fakeUserRepo) AddPoints(context.Context, uuid.UUID, int) error     { return nil }

func (r *fakeUserRepo) AddBadges(_ context.Context, _ uuid.UUID, badges []string) error {
	r.badges = append(r.badges, badges)
	return nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(context.Context, *entity.Expense) error { return nil }
func (r *fakeExpenseRepo) FindByID(context.Context, uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}
func (r *fakeExpenseRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Expense, error) {
	return r.expenses, nil
}
func (r *fakeExpenseRepo) FindByFilter(context.Context, adapter.ExpenseFilter, adapter.Pagination) (*adapter.ExpenseListResult, error) {
	return &adapter.ExpenseListResult{Expenses: r.expenses}, nil
}
func (r *fakeExpenseRepo) FindByDateRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.Expense, error) {
	return r.expenses, nil
}
func (r *fakeExpenseRepo) Update(context.Context, *entity.Expense) error { return nil }
func (r *fakeExpenseRepo) Delete(context.Context, uuid.UUID) error       { return nil }

type fakeSavingRepo struct {
	savings []*entity.Saving
}

func (r *fakeSavingRepo) Create(context.Context, *entity.Saving) error { return nil }
func (r *fakeSavingRepo) FindByID(context.Context, uuid.UUID) (*entity.Saving, error) {
	return nil, domainerror.ErrSavingNotFound
}
func (r *fakeSavingRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Saving, error) {
	return r.savings, nil
}
func (r *fakeSavingRepo) FindByGoal(context.Context, uuid.UUID) ([]*entity.Saving, error) {
	return nil, nil
}
func (r *fakeSavingRepo) FindByDateRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.Saving, error) {
	return r.savings, nil
}
func (r *fakeSavingRepo) Update(context.Context, *entity.Saving) error { return nil }
func (r *fakeSavingRepo) Delete(context.Context, uuid.UUID) error      { return nil }

func TestGetOverview(t *testing.T) {
	ctx := context.Background()
	// Friday March 15, 2024; March has 31 days
	asOf := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	user := entity.NewUser("leo@example.com", "Leo", "hash", asOf)
	user.MonthlyBudget = decimal.NewFromInt(1000)
	user.CategoryBudgets = map[string]decimal.Decimal{
		"Groceries": decimal.NewFromInt(400),
	}

	expenses := []*entity.Expense{
		entity.NewExpense(user.ID, decimal.NewFromInt(100), "Groceries", "", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		entity.NewExpense(user.ID, decimal.NewFromInt(50), "Transport", "", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)),
	}
	savings := []*entity.Saving{
		entity.NewSaving(user.ID, decimal.NewFromInt(20), "", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), nil),
		entity.NewSaving(user.ID, decimal.NewFromInt(20), "", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), nil),
	}

	t.Run("computes report for fixed as_of", func(t *testing.T) {
		userRepo := &fakeUserRepo{user: user}
		uc := NewGetOverviewUseCase(userRepo, &fakeExpenseRepo{expenses: expenses}, &fakeSavingRepo{savings: savings})

		out, err := uc.Execute(ctx, GetOverviewInput{UserID: user.ID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Report.MonthlyTotal.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected monthly total 150, got %s", out.Report.MonthlyTotal)
		}
		if !out.Report.Remaining.Equal(decimal.NewFromInt(850)) {
			t.Errorf("expected remaining 850, got %s", out.Report.Remaining)
		}
		if out.Report.CurrentStreak != 2 {
			t.Errorf("expected streak 2, got %d", out.Report.CurrentStreak)
		}
		if out.CurrencySymbol != "$" {
			t.Errorf("unexpected currency symbol %q", out.CurrencySymbol)
		}

		// Same inputs, same report
		again, err := uc.Execute(ctx, GetOverviewInput{UserID: user.ID, AsOf: asOf})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Report.HealthScore != out.Report.HealthScore {
			t.Errorf("expected deterministic health score, got %d then %d",
				out.Report.HealthScore, again.Report.HealthScore)
		}
	})

	t.Run("persists earned badges once", func(t *testing.T) {
		fresh := entity.NewUser("mia@example.com", "Mia", "hash", asOf)
		fresh.MonthlyBudget = decimal.NewFromInt(1000)
		fresh.CategoryBudgets = map[string]decimal.Decimal{
			"Groceries": decimal.NewFromInt(400),
		}
		userRepo := &fakeUserRepo{user: fresh}
		uc := NewGetOverviewUseCase(userRepo, &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(fresh.ID, decimal.NewFromInt(100), "Groceries", "", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		}}, &fakeSavingRepo{})

		if _, err := uc.Execute(ctx, GetOverviewInput{UserID: fresh.ID, AsOf: asOf}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(userRepo.badges) != 1 {
			t.Fatalf("expected one badge grant, got %d", len(userRepo.badges))
		}
		// 100/400 is gold, and the only budgeted category held its budget
		got := userRepo.badges[0]
		want := []string{"challenge-2024-03", "gold"}
		if len(got) != len(want) {
			t.Fatalf("expected badges %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected badges %v, got %v", want, got)
			}
		}

		// Second run finds the badges already earned
		if _, err := uc.Execute(ctx, GetOverviewInput{UserID: fresh.ID, AsOf: asOf}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(userRepo.badges) != 1 {
			t.Errorf("expected no duplicate badge grant, got %d grants", len(userRepo.badges))
		}
	})

	t.Run("no challenge badge without budgeted categories", func(t *testing.T) {
		fresh := entity.NewUser("noa@example.com", "Noa", "hash", asOf)
		fresh.MonthlyBudget = decimal.NewFromInt(1000)
		userRepo := &fakeUserRepo{user: fresh}
		uc := NewGetOverviewUseCase(userRepo, &fakeExpenseRepo{expenses: []*entity.Expense{
			entity.NewExpense(fresh.ID, decimal.NewFromInt(10), "Misc", "", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		}}, &fakeSavingRepo{})

		if _, err := uc.Execute(ctx, GetOverviewInput{UserID: fresh.ID, AsOf: asOf}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(userRepo.badges) != 0 {
			t.Errorf("expected no badge grants, got %v", userRepo.badges)
		}
	})

	t.Run("invalid budget surfaces metrics error", func(t *testing.T) {
		broken := entity.NewUser("liz@example.com", "Liz", "hash", asOf)
		broken.MonthlyBudget = decimal.Zero
		userRepo := &fakeUserRepo{user: broken}
		uc := NewGetOverviewUseCase(userRepo, &fakeExpenseRepo{}, &fakeSavingRepo{})

		_, err := uc.Execute(ctx, GetOverviewInput{UserID: broken.ID, AsOf: asOf})
		if err == nil {
			t.Fatal("expected error for zero monthly budget")
		}
	})
}
