// Package savinggoal contains saving goal-related use cases.
package savinggoal

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// GoalOutput represents a single saving goal with its derived progress.
type GoalOutput struct {
	Goal     *entity.SavingGoal
	Progress decimal.Decimal // Fraction of the target reached, in [0, 1]
}

// ListGoalsInput represents the input for listing saving goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing saving goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing saving goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.SavingGoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.SavingGoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the saving goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListGoalsOutput{Goals: make([]*GoalOutput, len(goals))}
	for i, goal := range goals {
		output.Goals[i] = &GoalOutput{
			Goal:     goal,
			Progress: goal.Progress(),
		}
	}

	return output, nil
}
