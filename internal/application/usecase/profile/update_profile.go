// Package profile contains user profile-related use cases.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// MaxCurrencySymbolLength is the maximum rune length for currency symbols.
const MaxCurrencySymbolLength = 5

// UpdateProfileInput represents the input for profile update.
// Nil fields are left unchanged. A non-nil CategoryBudgets replaces the
// stored map wholesale.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	Name            *string
	CurrencySymbol  *string
	MonthlyBudget   *decimal.Decimal
	CategoryBudgets map[string]decimal.Decimal
	EmailReminders  *bool
	WeeklySummary   *bool
}

// UpdateProfileOutput represents the output of profile update.
type UpdateProfileOutput struct {
	Profile *GetProfileOutput
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the profile update. Budgets must be strictly positive;
// the derived metrics refuse to score against zero or negative budgets, so
// bad values are rejected at the door.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeProfileNotFound,
				"profile not found",
				domainerror.ErrProfileNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}

	if input.CurrencySymbol != nil {
		symbol := *input.CurrencySymbol
		if symbol == "" || utf8.RuneCountInString(symbol) > MaxCurrencySymbolLength {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeInvalidCurrencySymbol,
				"invalid currency symbol",
				domainerror.ErrInvalidCurrencySymbol,
			)
		}
		user.CurrencySymbol = symbol
	}

	if input.MonthlyBudget != nil {
		if !input.MonthlyBudget.IsPositive() {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeInvalidMonthlyBudget,
				"monthly budget must be greater than zero",
				domainerror.ErrInvalidMonthlyBudget,
			)
		}
		user.MonthlyBudget = *input.MonthlyBudget
	}

	if input.CategoryBudgets != nil {
		for category, budget := range input.CategoryBudgets {
			if category == "" || !budget.IsPositive() {
				return nil, domainerror.NewProfileError(
					domainerror.ErrCodeInvalidCategoryBudget,
					fmt.Sprintf("category budget for %q must be greater than zero", category),
					domainerror.ErrInvalidCategoryBudget,
				)
			}
		}
		user.CategoryBudgets = input.CategoryBudgets
	}

	if input.EmailReminders != nil {
		user.EmailReminders = *input.EmailReminders
	}

	if input.WeeklySummary != nil {
		user.WeeklySummary = *input.WeeklySummary
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{
		Profile: &GetProfileOutput{
			Email:           user.Email,
			Name:            user.Name,
			CurrencySymbol:  user.CurrencySymbol,
			MonthlyBudget:   user.MonthlyBudget,
			CategoryBudgets: user.CategoryBudgets,
			EmailReminders:  user.EmailReminders,
			WeeklySummary:   user.WeeklySummary,
			Points:          user.Points,
			Level:           user.Level(),
			EarnedBadges:    user.EarnedBadges,
		},
	}, nil
}
