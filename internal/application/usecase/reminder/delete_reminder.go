// Package reminder contains bill reminder-related use cases.
package reminder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// DeleteReminderInput represents the input for reminder deletion.
type DeleteReminderInput struct {
	ReminderID uuid.UUID
	UserID     uuid.UUID
}

// DeleteReminderOutput represents the output of reminder deletion.
type DeleteReminderOutput struct {
	Success bool
}

// DeleteReminderUseCase handles reminder deletion logic.
type DeleteReminderUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewDeleteReminderUseCase creates a new DeleteReminderUseCase instance.
func NewDeleteReminderUseCase(reminderRepo adapter.ReminderRepository) *DeleteReminderUseCase {
	return &DeleteReminderUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute performs the reminder deletion. Deleting a recurring reminder
// only removes this occurrence; chaining happens on completion, so there
// is no series to cancel.
func (uc *DeleteReminderUseCase) Execute(ctx context.Context, input DeleteReminderInput) (*DeleteReminderOutput, error) {
	reminder, err := findOwnedReminder(ctx, uc.reminderRepo, input.ReminderID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.reminderRepo.Delete(ctx, reminder.ID); err != nil {
		return nil, fmt.Errorf("failed to delete reminder: %w", err)
	}

	return &DeleteReminderOutput{
		Success: true,
	}, nil
}
