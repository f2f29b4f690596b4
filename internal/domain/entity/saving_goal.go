// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingGoal represents a savings target in the BudgetWise system.
// CurrentAmount is maintained incrementally by saving mutations and is never
// recomputed from scratch; it clamps at zero on out-of-order deletions.
type SavingGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Color         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingGoal creates a new SavingGoal entity with a zero current amount.
func NewSavingGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, color string) *SavingGoal {
	now := time.Now().UTC()

	return &SavingGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Color:         color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Progress returns the fraction of the target reached, in [0, 1].
func (g *SavingGoal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	progress := g.CurrentAmount.Div(g.TargetAmount)
	if progress.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return progress
}
