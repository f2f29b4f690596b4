// Package profile contains user profile-related use cases.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetProfileInput represents the input for fetching the user's profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the user's profile and gamification state.
type GetProfileOutput struct {
	Email           string
	Name            string
	CurrencySymbol  string
	MonthlyBudget   decimal.Decimal
	CategoryBudgets map[string]decimal.Decimal
	EmailReminders  bool
	WeeklySummary   bool
	Points          int
	Level           int
	EarnedBadges    []string
}

// GetProfileUseCase handles fetching the user's profile.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute fetches the profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
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

	return &GetProfileOutput{
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
	}, nil
}
