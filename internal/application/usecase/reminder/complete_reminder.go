// Package reminder contains bill reminder-related use cases.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CompleteReminderInput represents the input for completing a reminder.
type CompleteReminderInput struct {
	ReminderID uuid.UUID
	UserID     uuid.UUID
}

// CompleteReminderOutput represents the output of completing a reminder.
type CompleteReminderOutput struct {
	Reminder *entity.Reminder
	// Successor is the next occurrence; nil for non-recurring reminders.
	Successor *entity.Reminder
}

// CompleteReminderUseCase handles reminder completion and recurrence chaining.
type CompleteReminderUseCase struct {
	reminderRepo adapter.ReminderRepository
	userRepo     adapter.UserRepository
}

// NewCompleteReminderUseCase creates a new CompleteReminderUseCase instance.
func NewCompleteReminderUseCase(
	reminderRepo adapter.ReminderRepository,
	userRepo adapter.UserRepository,
) *CompleteReminderUseCase {
	return &CompleteReminderUseCase{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
	}
}

// Execute marks the reminder completed. A recurring reminder spawns its next
// occurrence in the same transaction, due one interval later; the original
// stays completed, so the chain leaves a paid-bill history behind.
func (uc *CompleteReminderUseCase) Execute(ctx context.Context, input CompleteReminderInput) (*CompleteReminderOutput, error) {
	reminder, err := findOwnedReminder(ctx, uc.reminderRepo, input.ReminderID, input.UserID)
	if err != nil {
		return nil, err
	}

	if reminder.IsCompleted {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeReminderAlreadyCompleted,
			"reminder is already completed",
			domainerror.ErrReminderAlreadyCompleted,
		)
	}

	now := time.Now().UTC()
	reminder.IsCompleted = true
	reminder.CompletedAt = &now
	reminder.UpdatedAt = now

	var successor *entity.Reminder
	if reminder.IsRecurring && reminder.RecurringFrequency.IsValid() {
		successor = reminder.Successor()
	}

	if successor != nil {
		if err := uc.reminderRepo.CreateWithSuccessor(ctx, reminder, successor); err != nil {
			return nil, fmt.Errorf("failed to complete recurring reminder: %w", err)
		}
	} else {
		if err := uc.reminderRepo.Update(ctx, reminder); err != nil {
			return nil, fmt.Errorf("failed to complete reminder: %w", err)
		}
	}

	// Points are a side effect; a failed award never fails the completion
	if err := uc.userRepo.AddPoints(ctx, input.UserID, entity.PointsReminderCompleted); err != nil {
		slog.Error("Failed to award reminder points", "error", err, "userID", input.UserID)
	}

	return &CompleteReminderOutput{
		Reminder:  reminder,
		Successor: successor,
	}, nil
}
