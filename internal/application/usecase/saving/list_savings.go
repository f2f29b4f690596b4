// Package saving contains saving-related use cases.
package saving

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListSavingsInput represents the input for listing savings.
type ListSavingsInput struct {
	UserID    uuid.UUID
	GoalID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListSavingsOutput represents the output of listing savings.
type ListSavingsOutput struct {
	Savings []*entity.Saving
}

// ListSavingsUseCase handles listing savings logic.
type ListSavingsUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewListSavingsUseCase creates a new ListSavingsUseCase instance.
func NewListSavingsUseCase(savingRepo adapter.SavingRepository) *ListSavingsUseCase {
	return &ListSavingsUseCase{
		savingRepo: savingRepo,
	}
}

// Execute performs the saving listing, newest first.
func (uc *ListSavingsUseCase) Execute(ctx context.Context, input ListSavingsInput) (*ListSavingsOutput, error) {
	var (
		savings []*entity.Saving
		err     error
	)

	switch {
	case input.GoalID != nil:
		savings, err = uc.savingRepo.FindByGoal(ctx, *input.GoalID)
	case input.StartDate != nil && input.EndDate != nil:
		savings, err = uc.savingRepo.FindByDateRange(ctx, input.UserID, *input.StartDate, *input.EndDate)
	default:
		savings, err = uc.savingRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	// Goal listings can surface other users' rows; drop them
	filtered := savings[:0]
	for _, s := range savings {
		if s.UserID == input.UserID {
			filtered = append(filtered, s)
		}
	}

	return &ListSavingsOutput{Savings: filtered}, nil
}
