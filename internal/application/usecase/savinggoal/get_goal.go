// Package savinggoal contains saving goal-related use cases.
package savinggoal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single saving goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// GetGoalOutput represents the output of fetching a single saving goal.
type GetGoalOutput struct {
	Goal    *GoalOutput
	Savings []*entity.Saving
}

// GetGoalUseCase handles fetching a single saving goal with its savings.
type GetGoalUseCase struct {
	goalRepo   adapter.SavingGoalRepository
	savingRepo adapter.SavingRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(
	goalRepo adapter.SavingGoalRepository,
	savingRepo adapter.SavingRepository,
) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:   goalRepo,
		savingRepo: savingRepo,
	}
}

// Execute fetches the goal together with its linked savings.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	savings, err := uc.savingRepo.FindByGoal(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goal savings: %w", err)
	}

	return &GetGoalOutput{
		Goal: &GoalOutput{
			Goal:     goal,
			Progress: goal.Progress(),
		},
		Savings: savings,
	}, nil
}

// findOwnedGoal fetches a goal and enforces ownership.
func findOwnedGoal(ctx context.Context, repo adapter.SavingGoalRepository, goalID, userID uuid.UUID) (*entity.SavingGoal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingGoalNotFound) {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeSavingGoalNotFound,
				"saving goal not found",
				domainerror.ErrSavingGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find saving goal: %w", err)
	}
	if goal.UserID != userID {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this saving goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return goal, nil
}
