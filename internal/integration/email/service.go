// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueuePasswordReset queues a password reset email.
func (s *Service) QueuePasswordReset(ctx context.Context, input adapter.QueuePasswordResetInput) (*entity.EmailJob, error) {
	subject := "Reset your password - BudgetWise"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetLink,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return job, nil
}

// QueueReminderDue queues a reminder-due notification email.
func (s *Service) QueueReminderDue(ctx context.Context, input adapter.QueueReminderDueInput) (*entity.EmailJob, error) {
	subject := fmt.Sprintf("Reminder due: %s - BudgetWise", input.ReminderTitle)

	templateData := map[string]interface{}{
		"user_name":      input.UserName,
		"reminder_title": input.ReminderTitle,
		"amount":         input.Amount,
		"due_date":       input.DueDate,
		"due_time":       input.DueTime,
	}

	job := entity.NewEmailJob(
		entity.TemplateReminderDue,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue reminder due email",
			err,
		)
	}

	return job, nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
