package adapter

import (
	"context"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// SendEmailInput contains the data needed to send an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult contains the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails through an external provider.
type EmailSender interface {
	// Send sends an email and returns the provider message id.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueuePasswordResetInput contains the data needed to queue a password reset email.
type QueuePasswordResetInput struct {
	UserEmail string
	UserName  string
	ResetLink string
	ExpiresIn string
}

// QueueReminderDueInput contains the data needed to queue a reminder-due email.
type QueueReminderDueInput struct {
	UserEmail     string
	UserName      string
	ReminderTitle string
	Amount        string
	DueDate       string
	DueTime       string
}

// EmailService defines the interface for queueing transactional emails.
// Emails are persisted to a queue and delivered asynchronously by a worker.
type EmailService interface {
	// QueuePasswordReset queues a password reset email for delivery.
	QueuePasswordReset(ctx context.Context, input QueuePasswordResetInput) (*entity.EmailJob, error)

	// QueueReminderDue queues a reminder-due notification email for delivery.
	QueueReminderDue(ctx context.Context, input QueueReminderDueInput) (*entity.EmailJob, error)
}
