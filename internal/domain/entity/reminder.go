// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringFrequency represents how often a recurring reminder repeats.
type RecurringFrequency string

const (
	FrequencyDaily   RecurringFrequency = "daily"
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
	FrequencyYearly  RecurringFrequency = "yearly"
)

// IsValid reports whether the frequency is one of the supported values.
func (f RecurringFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Reminder represents a bill reminder in the BudgetWise system.
type Reminder struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Title              string
	Amount             decimal.Decimal
	DueDate            time.Time
	DueTime            string // "HH:MM", local wall-clock time
	Category           string
	IsCompleted        bool
	CompletedAt        *time.Time
	IsRecurring        bool
	RecurringFrequency RecurringFrequency
	NotifiedAt         *time.Time // Set once a due-soon email has been queued
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewReminder creates a new Reminder entity.
func NewReminder(
	userID uuid.UUID,
	title string,
	amount decimal.Decimal,
	dueDate time.Time,
	dueTime string,
	category string,
	isRecurring bool,
	frequency RecurringFrequency,
) *Reminder {
	now := time.Now().UTC()

	return &Reminder{
		ID:                 uuid.New(),
		UserID:             userID,
		Title:              title,
		Amount:             amount,
		DueDate:            dueDate,
		DueTime:            dueTime,
		Category:           category,
		IsRecurring:        isRecurring,
		RecurringFrequency: frequency,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NextDueDate returns the due date advanced by one recurrence interval.
// Month and year steps use calendar arithmetic, not fixed-day offsets.
func (r *Reminder) NextDueDate() time.Time {
	switch r.RecurringFrequency {
	case FrequencyDaily:
		return r.DueDate.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return r.DueDate.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return r.DueDate.AddDate(0, 1, 0)
	case FrequencyYearly:
		return r.DueDate.AddDate(1, 0, 0)
	}
	return r.DueDate
}

// Successor builds the follow-up reminder created when a recurring reminder
// is completed. The successor keeps every field of the original except the
// due date, which advances by one recurrence interval.
func (r *Reminder) Successor() *Reminder {
	return NewReminder(
		r.UserID,
		r.Title,
		r.Amount,
		r.NextDueDate(),
		r.DueTime,
		r.Category,
		r.IsRecurring,
		r.RecurringFrequency,
	)
}
