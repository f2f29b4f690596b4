// Package reminder contains bill reminder-related use cases.
package reminder

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// MaxTitleLength is the maximum allowed length for reminder titles.
const MaxTitleLength = 255

// dueTimePattern matches "HH:MM" wall-clock times.
var dueTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// CreateReminderInput represents the input for reminder creation.
type CreateReminderInput struct {
	UserID             uuid.UUID
	Title              string
	Amount             decimal.Decimal
	DueDate            time.Time
	DueTime            string
	Category           string
	IsRecurring        bool
	RecurringFrequency entity.RecurringFrequency
}

// CreateReminderOutput represents the output of reminder creation.
type CreateReminderOutput struct {
	Reminder *entity.Reminder
}

// CreateReminderUseCase handles reminder creation logic.
type CreateReminderUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewCreateReminderUseCase creates a new CreateReminderUseCase instance.
func NewCreateReminderUseCase(reminderRepo adapter.ReminderRepository) *CreateReminderUseCase {
	return &CreateReminderUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute performs the reminder creation.
func (uc *CreateReminderUseCase) Execute(ctx context.Context, input CreateReminderInput) (*CreateReminderOutput, error) {
	if input.Title == "" || len(input.Title) > MaxTitleLength {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeMissingReminderTitle,
			"title is required",
			domainerror.ErrMissingReminderTitle,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeInvalidReminderAmount,
			"amount must not be negative",
			domainerror.ErrInvalidReminderAmount,
		)
	}

	if input.DueDate.IsZero() {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeMissingReminderFields,
			"due date is required",
			nil,
		)
	}

	if input.DueTime != "" && !dueTimePattern.MatchString(input.DueTime) {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeMissingReminderFields,
			"due time must be in HH:MM format",
			nil,
		)
	}

	if input.IsRecurring && !input.RecurringFrequency.IsValid() {
		return nil, domainerror.NewReminderError(
			domainerror.ErrCodeInvalidRecurringFrequency,
			"recurring frequency must be daily, weekly, monthly or yearly",
			domainerror.ErrInvalidRecurringFrequency,
		)
	}

	reminder := entity.NewReminder(
		input.UserID,
		input.Title,
		input.Amount,
		input.DueDate,
		input.DueTime,
		input.Category,
		input.IsRecurring,
		input.RecurringFrequency,
	)

	if err := uc.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return &CreateReminderOutput{Reminder: reminder}, nil
}
