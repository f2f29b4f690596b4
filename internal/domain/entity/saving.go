// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Saving represents a single savings deposit in the BudgetWise system.
// A saving may optionally be linked to a SavingGoal; the linked goal's
// CurrentAmount always equals the sum of its linked savings.
type Saving struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Note      string
	Date      time.Time
	GoalID    *uuid.UUID // Optional link to a SavingGoal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSaving creates a new Saving entity.
func NewSaving(userID uuid.UUID, amount decimal.Decimal, note string, date time.Time, goalID *uuid.UUID) *Saving {
	now := time.Now().UTC()

	return &Saving{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Note:      note,
		Date:      date,
		GoalID:    goalID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
