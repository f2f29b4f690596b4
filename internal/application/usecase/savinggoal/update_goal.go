// Package savinggoal contains saving goal-related use cases.
package savinggoal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for saving goal update.
// Nil fields are left unchanged. CurrentAmount is never updatable here; it
// only moves with saving mutations.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Name         *string
	TargetAmount *decimal.Decimal
	Color        *string
}

// UpdateGoalOutput represents the output of saving goal update.
type UpdateGoalOutput struct {
	Goal *GoalOutput
}

// UpdateGoalUseCase handles saving goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.SavingGoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.SavingGoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the saving goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > MaxGoalNameLength {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeMissingGoalName,
				"goal name is required",
				domainerror.ErrMissingGoalName,
			)
		}
		goal.Name = *input.Name
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.Color != nil {
		goal.Color = *input.Color
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update saving goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: &GoalOutput{
			Goal:     goal,
			Progress: goal.Progress(),
		},
	}, nil
}
