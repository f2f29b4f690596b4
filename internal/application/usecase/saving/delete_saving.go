// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteSavingInput represents the input for saving deletion.
type DeleteSavingInput struct {
	SavingID uuid.UUID
	UserID   uuid.UUID
}

// DeleteSavingOutput represents the output of saving deletion.
type DeleteSavingOutput struct {
	Success bool
}

// DeleteSavingUseCase handles saving deletion logic.
type DeleteSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewDeleteSavingUseCase creates a new DeleteSavingUseCase instance.
func NewDeleteSavingUseCase(savingRepo adapter.SavingRepository) *DeleteSavingUseCase {
	return &DeleteSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute performs the saving deletion. A goal-linked saving debits its goal
// inside the repository transaction.
func (uc *DeleteSavingUseCase) Execute(ctx context.Context, input DeleteSavingInput) (*DeleteSavingOutput, error) {
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
			"not authorized to delete this saving",
			domainerror.ErrUnauthorizedSavingAccess,
		)
	}

	if err := uc.savingRepo.Delete(ctx, input.SavingID); err != nil {
		return nil, fmt.Errorf("failed to delete saving: %w", err)
	}

	return &DeleteSavingOutput{
		Success: true,
	}, nil
}
