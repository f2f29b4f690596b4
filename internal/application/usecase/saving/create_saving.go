// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// MaxNoteLength is the maximum allowed length for saving notes.
const MaxNoteLength = 255

// CreateSavingInput represents the input for saving creation.
type CreateSavingInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
	Note   string
	Date   time.Time
	GoalID *uuid.UUID
}

// CreateSavingOutput represents the output of saving creation.
type CreateSavingOutput struct {
	Saving *entity.Saving
}

// CreateSavingUseCase handles saving creation logic.
type CreateSavingUseCase struct {
	savingRepo adapter.SavingRepository
	goalRepo   adapter.SavingGoalRepository
	userRepo   adapter.UserRepository
}

// NewCreateSavingUseCase creates a new CreateSavingUseCase instance.
func NewCreateSavingUseCase(
	savingRepo adapter.SavingRepository,
	goalRepo adapter.SavingGoalRepository,
	userRepo adapter.UserRepository,
) *CreateSavingUseCase {
	return &CreateSavingUseCase{
		savingRepo: savingRepo,
		goalRepo:   goalRepo,
		userRepo:   userRepo,
	}
}

// Execute performs the saving creation, credits the linked goal and awards
// logging points.
func (uc *CreateSavingUseCase) Execute(ctx context.Context, input CreateSavingInput) (*CreateSavingOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeInvalidSavingAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidSavingAmount,
		)
	}

	if len(input.Note) > MaxNoteLength {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeMissingSavingFields,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			nil,
		)
	}

	// Verify goal existence and ownership before linking
	if input.GoalID != nil {
		if err := uc.checkGoal(ctx, *input.GoalID, input.UserID); err != nil {
			return nil, err
		}
	}

	saving := entity.NewSaving(input.UserID, input.Amount, input.Note, input.Date, input.GoalID)

	if err := uc.savingRepo.Create(ctx, saving); err != nil {
		return nil, fmt.Errorf("failed to create saving: %w", err)
	}

	// Points are a side effect; a failed award never fails the creation
	if err := uc.userRepo.AddPoints(ctx, input.UserID, entity.PointsSavingLogged); err != nil {
		slog.Error("Failed to award saving points", "error", err, "userID", input.UserID)
	}

	return &CreateSavingOutput{Saving: saving}, nil
}

func (uc *CreateSavingUseCase) checkGoal(ctx context.Context, goalID, userID uuid.UUID) error {
	goal, err := uc.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingGoalNotFound) {
			return domainerror.NewSavingError(
				domainerror.ErrCodeSavingGoalNotFound,
				"saving goal not found",
				domainerror.ErrSavingGoalNotFound,
			)
		}
		return fmt.Errorf("failed to find saving goal: %w", err)
	}
	if goal.UserID != userID {
		return domainerror.NewSavingError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"saving goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return nil
}
