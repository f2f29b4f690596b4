// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ReminderFilter defines filter options for listing reminders.
type ReminderFilter struct {
	UserID    uuid.UUID
	Completed *bool
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

// ReminderRepository defines the interface for reminder persistence operations.
type ReminderRepository interface {
	// Create creates a new reminder in the database.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// CreateWithSuccessor persists the completion of a reminder together
	// with its recurrence successor in a single transaction.
	CreateWithSuccessor(ctx context.Context, completed, successor *entity.Reminder) error

	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error)

	// FindByFilter retrieves reminders matching the filter, soonest due first.
	FindByFilter(ctx context.Context, filter ReminderFilter) ([]*entity.Reminder, error)

	// FindDueForNotification retrieves incomplete reminders due on or before
	// the deadline that have not been notified yet.
	FindDueForNotification(ctx context.Context, deadline time.Time) ([]*entity.Reminder, error)

	// Update updates an existing reminder in the database.
	Update(ctx context.Context, reminder *entity.Reminder) error

	// Delete removes a reminder from the database. Hard delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
