// Package savinggoal contains saving goal-related use cases.
package savinggoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// MaxGoalNameLength is the maximum allowed length for goal names.
const MaxGoalNameLength = 100

// CreateGoalInput represents the input for saving goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Color        string
}

// CreateGoalOutput represents the output of saving goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingGoal
}

// CreateGoalUseCase handles saving goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.SavingGoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.SavingGoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the saving goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.Name == "" || len(input.Name) > MaxGoalNameLength {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeMissingGoalName,
			"goal name is required",
			domainerror.ErrMissingGoalName,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	goal := entity.NewSavingGoal(input.UserID, input.Name, input.TargetAmount, input.Color)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create saving goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
