// Package email provides email sending functionality.
package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// Notifier scans for reminders coming due and queues notification emails.
// A reminder is notified at most once: NotifiedAt is set after queueing and
// only cleared when the due date changes.
type Notifier struct {
	reminders    adapter.ReminderRepository
	users        adapter.UserRepository
	emailService adapter.EmailService
	pollInterval time.Duration
	lookahead    time.Duration
}

// NotifierConfig holds configuration for the reminder notifier.
type NotifierConfig struct {
	PollInterval time.Duration
	Lookahead    time.Duration
}

// DefaultNotifierConfig returns the default notifier configuration.
func DefaultNotifierConfig() NotifierConfig {
	return NotifierConfig{
		PollInterval: 15 * time.Minute,
		Lookahead:    24 * time.Hour,
	}
}

// NewNotifier creates a new reminder notifier.
func NewNotifier(reminders adapter.ReminderRepository, users adapter.UserRepository, emailService adapter.EmailService, config NotifierConfig) *Notifier {
	return &Notifier{
		reminders:    reminders,
		users:        users,
		emailService: emailService,
		pollInterval: config.PollInterval,
		lookahead:    config.Lookahead,
	}
}

// Start begins the notifier loop. It blocks until the context is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	slog.Info("Reminder notifier started",
		"poll_interval", n.pollInterval,
		"lookahead", n.lookahead,
	)

	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	n.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder notifier shutting down")
			return
		case <-ticker.C:
			n.scan(ctx)
		}
	}
}

// scan queues notification emails for reminders due within the lookahead.
func (n *Notifier) scan(ctx context.Context) {
	deadline := time.Now().UTC().Add(n.lookahead)

	due, err := n.reminders.FindDueForNotification(ctx, deadline)
	if err != nil {
		slog.Error("Failed to find due reminders", "error", err)
		return
	}

	for _, reminder := range due {
		select {
		case <-ctx.Done():
			return
		default:
		}

		logger := slog.With(
			"reminder_id", reminder.ID,
			"user_id", reminder.UserID,
		)

		user, err := n.users.FindByID(ctx, reminder.UserID)
		if err != nil {
			logger.Error("Failed to load reminder owner", "error", err)
			continue
		}

		if !user.EmailReminders {
			// The user opted out; mark as notified so the scan stops
			// picking this reminder up.
			n.markNotified(ctx, reminder, logger)
			continue
		}

		amount := ""
		if !reminder.Amount.IsZero() {
			amount = user.CurrencySymbol + reminder.Amount.StringFixed(2)
		}

		_, err = n.emailService.QueueReminderDue(ctx, adapter.QueueReminderDueInput{
			UserEmail:     user.Email,
			UserName:      user.Name,
			ReminderTitle: reminder.Title,
			Amount:        amount,
			DueDate:       reminder.DueDate.Format("2006-01-02"),
			DueTime:       reminder.DueTime,
		})
		if err != nil {
			logger.Error("Failed to queue reminder due email", "error", err)
			continue
		}

		n.markNotified(ctx, reminder, logger)
		logger.Info("Reminder due email queued", "due_date", reminder.DueDate.Format("2006-01-02"))
	}
}

func (n *Notifier) markNotified(ctx context.Context, reminder *entity.Reminder, logger *slog.Logger) {
	now := time.Now().UTC()
	reminder.NotifiedAt = &now
	if err := n.reminders.Update(ctx, reminder); err != nil {
		logger.Error("Failed to mark reminder as notified", "error", err)
	}
}

// ScanNow runs one scan immediately (useful for testing).
func (n *Notifier) ScanNow(ctx context.Context) {
	n.scan(ctx)
}
