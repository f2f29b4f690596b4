// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for expense descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryLength is the maximum allowed length for category names.
	MaxCategoryLength = 100
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	userRepo    adapter.UserRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	userRepo adapter.UserRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
	}
}

// Execute performs the expense creation and awards logging points.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.Amount, input.Category, input.Description, input.Date); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Amount,
		input.Category,
		input.Description,
		input.Date,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	// Points are a side effect; a failed award never fails the creation
	if err := uc.userRepo.AddPoints(ctx, input.UserID, entity.PointsExpenseLogged); err != nil {
		slog.Error("Failed to award expense points", "error", err, "userID", input.UserID)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

// validateExpenseFields validates the user-supplied expense fields.
func validateExpenseFields(amount decimal.Decimal, category, description string, date time.Time) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if category == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseCategory,
			"category is required",
			domainerror.ErrMissingExpenseCategory,
		)
	}

	if len(category) > MaxCategoryLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseCategory,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrMissingExpenseCategory,
		)
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}

	if date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	return nil
}
