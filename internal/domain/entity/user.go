// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMonthlyBudget is assigned to new users until they configure one.
	DefaultMonthlyBudget = 2000

	// PointsPerLevel is the number of gamification points per level.
	PointsPerLevel = 100
)

// Points awarded per user action.
const (
	PointsExpenseLogged     = 10
	PointsReminderCompleted = 15
	PointsSavingLogged      = 20
)

// User represents a user account with its budget profile and gamification
// state in the BudgetWise system.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	CurrencySymbol  string
	MonthlyBudget   decimal.Decimal
	CategoryBudgets map[string]decimal.Decimal
	EmailReminders  bool // Email notifications for upcoming bill reminders
	WeeklySummary   bool // Weekly summary email preference
	Points          int
	EarnedBadges    []string
	TermsAcceptedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new User with default profile values.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		PasswordHash:    passwordHash,
		CurrencySymbol:  "$",
		MonthlyBudget:   decimal.NewFromInt(DefaultMonthlyBudget),
		CategoryBudgets: map[string]decimal.Decimal{},
		EmailReminders:  true,
		WeeklySummary:   true,
		TermsAcceptedAt: termsAcceptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Level returns the gamification level derived from accumulated points.
func (u *User) Level() int {
	return u.Points/PointsPerLevel + 1
}

// HasBadge reports whether the user already earned the named badge.
func (u *User) HasBadge(name string) bool {
	for _, b := range u.EarnedBadges {
		if b == name {
			return true
		}
	}
	return false
}
