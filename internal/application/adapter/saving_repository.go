// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// SavingRepository defines the interface for saving persistence operations.
//
// Mutations of goal-linked savings adjust the goal's CurrentAmount by the
// delta inside the same database transaction, so the invariant "a goal's
// CurrentAmount equals the sum of its linked savings" survives concurrent
// requests. CurrentAmount clamps at zero.
type SavingRepository interface {
	// Create creates a saving and, when goal-linked, credits the goal.
	Create(ctx context.Context, saving *entity.Saving) error

	// FindByID retrieves a saving by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Saving, error)

	// FindByUser retrieves all savings for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error)

	// FindByGoal retrieves all savings linked to a goal.
	FindByGoal(ctx context.Context, goalID uuid.UUID) ([]*entity.Saving, error)

	// FindByDateRange retrieves all savings for a user within [start, end].
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Saving, error)

	// Update replaces a saving and settles the goal deltas, including moves
	// between goals (debit the old goal, credit the new one).
	Update(ctx context.Context, saving *entity.Saving) error

	// Delete removes a saving and, when goal-linked, debits the goal.
	// Hard delete.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SavingGoalRepository defines the interface for saving goal persistence operations.
type SavingGoalRepository interface {
	// Create creates a new saving goal in the database.
	Create(ctx context.Context, goal *entity.SavingGoal) error

	// FindByID retrieves a saving goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingGoal, error)

	// FindByUser retrieves all saving goals for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error)

	// Update updates an existing saving goal in the database.
	Update(ctx context.Context, goal *entity.SavingGoal) error

	// Delete removes a saving goal and unlinks its savings. Hard delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountLinkedSavings returns how many savings reference the goal.
	CountLinkedSavings(ctx context.Context, goalID uuid.UUID) (int64, error)
}
