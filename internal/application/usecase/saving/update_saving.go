// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateSavingInput represents the input for saving update.
// Nil fields are left unchanged; ClearGoal unlinks the saving from its goal.
type UpdateSavingInput struct {
	SavingID  uuid.UUID
	UserID    uuid.UUID
	Amount    *decimal.Decimal
	Note      *string
	Date      *time.Time
	GoalID    *uuid.UUID
	ClearGoal bool
}

// UpdateSavingOutput represents the output of saving update.
type UpdateSavingOutput struct {
	Saving *entity.Saving
}

// UpdateSavingUseCase handles saving update logic.
type UpdateSavingUseCase struct {
	savingRepo adapter.SavingRepository
	goalRepo   adapter.SavingGoalRepository
}

// NewUpdateSavingUseCase creates a new UpdateSavingUseCase instance.
func NewUpdateSavingUseCase(
	savingRepo adapter.SavingRepository,
	goalRepo adapter.SavingGoalRepository,
) *UpdateSavingUseCase {
	return &UpdateSavingUseCase{
		savingRepo: savingRepo,
		goalRepo:   goalRepo,
	}
}

// Execute performs the saving update. Amount and goal changes settle the
// affected goals' current amounts inside the repository transaction.
func (uc *UpdateSavingUseCase) Execute(ctx context.Context, input UpdateSavingInput) (*UpdateSavingOutput, error) {
	saving, err := uc.savingRepo.FindByID(ctx, input.SavingID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingNotFound) {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeSavingNotFound,
				"saving not found",
				domainerror.ErrSavingNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find saving: %w", err)
	}

	if saving.UserID != input.UserID {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeUnauthorizedSavingAccess,
			"not authorized to update this saving",
			domainerror.ErrUnauthorizedSavingAccess,
		)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeInvalidSavingAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidSavingAmount,
			)
		}
		saving.Amount = *input.Amount
	}

	if input.Note != nil {
		if len(*input.Note) > MaxNoteLength {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeMissingSavingFields,
				fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
				nil,
			)
		}
		saving.Note = *input.Note
	}

	if input.Date != nil {
		saving.Date = *input.Date
	}

	if input.ClearGoal {
		saving.GoalID = nil
	} else if input.GoalID != nil {
		goal, err := uc.goalRepo.FindByID(ctx, *input.GoalID)
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
		if goal.UserID != input.UserID {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeUnauthorizedGoalAccess,
				"saving goal does not belong to user",
				domainerror.ErrUnauthorizedGoalAccess,
			)
		}
		saving.GoalID = input.GoalID
	}

	saving.UpdatedAt = time.Now().UTC()

	if err := uc.savingRepo.Update(ctx, saving); err != nil {
		return nil, fmt.Errorf("failed to update saving: %w", err)
	}

	return &UpdateSavingOutput{Saving: saving}, nil
}
