// Package reminder contains bill reminder-related use cases.
package reminder

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

// UpdateReminderInput represents the input for reminder update.
// Nil fields are left unchanged.
type UpdateReminderInput struct {
	ReminderID         uuid.UUID
	UserID             uuid.UUID
	Title              *string
	Amount             *decimal.Decimal
	DueDate            *time.Time
	DueTime            *string
	Category           *string
	IsRecurring        *bool
	RecurringFrequency *entity.RecurringFrequency
}

// UpdateReminderOutput represents the output of reminder update.
type UpdateReminderOutput struct {
	Reminder *entity.Reminder
}

// UpdateReminderUseCase handles reminder update logic.
type UpdateReminderUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewUpdateReminderUseCase creates a new UpdateReminderUseCase instance.
func NewUpdateReminderUseCase(reminderRepo adapter.ReminderRepository) *UpdateReminderUseCase {
	return &UpdateReminderUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute performs the reminder update.
func (uc *UpdateReminderUseCase) Execute(ctx context.Context, input UpdateReminderInput) (*UpdateReminderOutput, error) {
	reminder, err := findOwnedReminder(ctx, uc.reminderRepo, input.ReminderID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" || len(*input.Title) > MaxTitleLength {
			return nil, domainerror.NewReminderError(
				domainerror.ErrCodeMissingReminderTitle,
				"title is required",
				domainerror.ErrMissingReminderTitle,
			)
		}
		reminder.Title = *input.Title
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewReminderError(
				domainerror.ErrCodeInvalidReminderAmount,
				"amount must not be negative",
				domainerror.ErrInvalidReminderAmount,
			)
		}
		reminder.Amount = *input.Amount
	}

	if input.DueDate != nil {
		// Moving the due date re-arms the due-soon notification
		reminder.DueDate = *input.DueDate
		reminder.NotifiedAt = nil
	}

	if input.DueTime != nil {
		if *input.DueTime != "" && !dueTimePattern.MatchString(*input.DueTime) {
			return nil, domainerror.NewReminderError(
				domainerror.ErrCodeMissingReminderFields,
				"due time must be in HH:MM format",
				nil,
			)
		}
		reminder.DueTime = *input.DueTime
	}

	if input.Category != nil {
		reminder.Category = *input.Category
	}

	if input.IsRecurring != nil {
		reminder.IsRecurring = *input.IsRecurring
	}

	if input.RecurringFrequency != nil {
		if !input.RecurringFrequency.IsValid() {
			return nil, domainerror.NewReminderError(
				domainerror.ErrCodeInvalidRecurringFrequency,
				"recurring frequency must be daily, weekly, monthly or yearly",
				domainerror.ErrInvalidRecurringFrequency,
			)
		}
		reminder.RecurringFrequency = *input.RecurringFrequency
	}

	if reminder.IsRecurring && !reminder.RecurringFrequency.IsValid() {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeInvalidRecurringFrequency,
			"recurring frequency must be daily, weekly, monthly or yearly",
			domainerror.ErrInvalidRecurringFrequency,
		)
	}

	reminder.UpdatedAt = time.Now().UTC()

	if err := uc.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return &UpdateReminderOutput{Reminder: reminder}, nil
}

// findOwnedReminder fetches a reminder and enforces ownership.
func findOwnedReminder(ctx context.Context, repo adapter.ReminderRepository, reminderID, userID uuid.UUID) (*entity.Reminder, error) {
	reminder, err := repo.FindByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, domainerror.ErrReminderNotFound) {
			return nil, domainerror.NewReminderError(
				domainerror.ErrCodeReminderNotFound,
				"reminder not found",
				domainerror.ErrReminderNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find reminder: %w", err)
	}
	if reminder.UserID != userID {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeUnauthorizedReminderAccess,
			"not authorized to access this reminder",
			domainerror.ErrUnauthorizedReminderAccess,
		)
	}
	return reminder, nil
}
