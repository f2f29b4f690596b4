// Package reminder contains bill reminder-related use cases.
package reminder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListRemindersInput represents the input for listing reminders.
type ListRemindersInput struct {
	UserID    uuid.UUID
	Completed *bool
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

// ListRemindersOutput represents the output of listing reminders.
type ListRemindersOutput struct {
	Reminders []*entity.Reminder
}

// ListRemindersUseCase handles listing reminders logic.
type ListRemindersUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewListRemindersUseCase creates a new ListRemindersUseCase instance.
func NewListRemindersUseCase(reminderRepo adapter.ReminderRepository) *ListRemindersUseCase {
	return &ListRemindersUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute performs the reminder listing, soonest due first.
func (uc *ListRemindersUseCase) Execute(ctx context.Context, input ListRemindersInput) (*ListRemindersOutput, error) {
	reminders, err := uc.reminderRepo.FindByFilter(ctx, adapter.ReminderFilter{
		UserID:    input.UserID,
		Completed: input.Completed,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
	})
	if err != nil {
		return nil, err
	}

	return &ListRemindersOutput{Reminders: reminders}, nil
}
