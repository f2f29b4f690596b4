// Package savinggoal contains saving goal-related use cases.
package savinggoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for saving goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalOutput represents the output of saving goal deletion.
type DeleteGoalOutput struct {
	Success bool
	// UnlinkedSavings is the number of savings that lost their goal link.
	// The savings themselves are kept.
	UnlinkedSavings int64
}

// DeleteGoalUseCase handles saving goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.SavingGoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.SavingGoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the saving goal deletion. Linked savings survive with
// their goal reference cleared.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	linked, err := uc.goalRepo.CountLinkedSavings(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count linked savings: %w", err)
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return nil, fmt.Errorf("failed to delete saving goal: %w", err)
	}

	return &DeleteGoalOutput{
		Success:         true,
		UnlinkedSavings: linked,
	}, nil
}
