// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// fakeExpenseRepo is an in-memory ExpenseRepository for use case tests.
type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[uuid.UUID]*entity.Expense{}}
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return e, nil
}

func (r *fakeExpenseRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.Pagination) (*adapter.ExpenseListResult, error) {
	expenses, err := r.FindByUser(ctx, filter.UserID)
	if err != nil {
		return nil, err
	}
	return &adapter.ExpenseListResult{
		Expenses:   expenses,
		Total:      int64(len(expenses)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (r *fakeExpenseRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, _, _ time.Time) ([]*entity.Expense, error) {
	return r.FindByUser(ctx, userID)
}

func (r *fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	if _, ok := r.expenses[e.ID]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

// fakeUserRepo records point awards.
type fakeUserRepo struct {
	points map[uuid.UUID]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{points: map[uuid.UUID]int{}}
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (r *fakeUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (r *fakeUserRepo) Update(context.Context, *entity.User) error          { return nil }
func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error             { return nil }
func (r *fakeUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (r *fakeUserRepo) AddPoints(_ context.Context, id uuid.UUID, points int) error {
	r.points[id] += points
	return nil
}

func (r *fakeUserRepo) AddBadges(context.Context, uuid.UUID, []string) error { return nil }

func TestCreateExpense(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates expense and awards points", func(t *testing.T) {
		expenseRepo := newFakeExpenseRepo()
		userRepo := newFakeUserRepo()
		uc := NewCreateExpenseUseCase(expenseRepo, userRepo)

		out, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:      userID,
			Amount:      decimal.NewFromFloat(42.50),
			Category:    "Groceries",
			Description: "weekly shop",
			Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Expense.ID == uuid.Nil {
			t.Error("expected a generated expense ID")
		}
		if len(expenseRepo.expenses) != 1 {
			t.Errorf("expected 1 stored expense, got %d", len(expenseRepo.expenses))
		}
		if got := userRepo.points[userID]; got != entity.PointsExpenseLogged {
			t.Errorf("expected %d points awarded, got %d", entity.PointsExpenseLogged, got)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), newFakeUserRepo())

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:   userID,
			Amount:   decimal.Zero,
			Category: "Groceries",
			Date:     time.Now(),
		})

		var expErr *domainerror.ExpenseError
		if !errors.As(err, &expErr) {
			t.Fatalf("expected ExpenseError, got %v", err)
		}
		if expErr.Code != domainerror.ErrCodeInvalidExpenseAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidExpenseAmount, expErr.Code)
		}
	})

	t.Run("rejects missing category", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepo(), newFakeUserRepo())

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID: userID,
			Amount: decimal.NewFromInt(10),
			Date:   time.Now(),
		})

		if !errors.Is(err, domainerror.ErrMissingExpenseCategory) {
			t.Errorf("expected ErrMissingExpenseCategory, got %v", err)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	setup := func() (*fakeExpenseRepo, *entity.Expense) {
		repo := newFakeExpenseRepo()
		e := entity.NewExpense(userID, decimal.NewFromInt(20), "Transport", "bus pass", time.Now().UTC())
		repo.expenses[e.ID] = e
		return repo, e
	}

	t.Run("updates provided fields only", func(t *testing.T) {
		repo, e := setup()
		uc := NewUpdateExpenseUseCase(repo)

		amount := decimal.NewFromInt(35)
		out, err := uc.Execute(ctx, UpdateExpenseInput{
			ExpenseID: e.ID,
			UserID:    userID,
			Amount:    &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Expense.Amount.Equal(amount) {
			t.Errorf("expected amount %s, got %s", amount, out.Expense.Amount)
		}
		if out.Expense.Category != "Transport" {
			t.Errorf("category changed unexpectedly: %s", out.Expense.Category)
		}
	})

	t.Run("rejects another user's expense", func(t *testing.T) {
		repo, e := setup()
		uc := NewUpdateExpenseUseCase(repo)

		_, err := uc.Execute(ctx, UpdateExpenseInput{
			ExpenseID: e.ID,
			UserID:    uuid.New(),
		})

		if !errors.Is(err, domainerror.ErrUnauthorizedExpenseAccess) {
			t.Errorf("expected ErrUnauthorizedExpenseAccess, got %v", err)
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		repo, _ := setup()
		uc := NewUpdateExpenseUseCase(repo)

		_, err := uc.Execute(ctx, UpdateExpenseInput{
			ExpenseID: uuid.New(),
			UserID:    userID,
		})

		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeExpenseRepo()
	e := entity.NewExpense(userID, decimal.NewFromInt(12), "Fun", "", time.Now().UTC())
	repo.expenses[e.ID] = e

	uc := NewDeleteExpenseUseCase(repo)

	t.Run("rejects another user's expense", func(t *testing.T) {
		_, err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: e.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUnauthorizedExpenseAccess) {
			t.Errorf("expected ErrUnauthorizedExpenseAccess, got %v", err)
		}
	})

	t.Run("deletes own expense", func(t *testing.T) {
		out, err := uc.Execute(ctx, DeleteExpenseInput{ExpenseID: e.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected Success true")
		}
		if len(repo.expenses) != 0 {
			t.Error("expected expense removed from store")
		}
	})
}
