// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name            string          `gorm:"type:varchar(100);not null"`
	PasswordHash    string          `gorm:"type:varchar(255);not null"`
	CurrencySymbol  string          `gorm:"type:varchar(10);default:'$'"`
	MonthlyBudget   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryBudgets string          `gorm:"type:jsonb;not null;default:'{}'"`
	EmailReminders  bool            `gorm:"default:true"`
	WeeklySummary   bool            `gorm:"default:true"`
	Points          int             `gorm:"not null;default:0"`
	EarnedBadges    pq.StringArray  `gorm:"type:text[]"`
	TermsAcceptedAt time.Time       `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	budgets := map[string]decimal.Decimal{}
	if m.CategoryBudgets != "" {
		if err := json.Unmarshal([]byte(m.CategoryBudgets), &budgets); err != nil {
			slog.Warn("Failed to unmarshal category budgets", "error", err, "userID", m.ID)
			budgets = map[string]decimal.Decimal{}
		}
	}

	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		PasswordHash:    m.PasswordHash,
		CurrencySymbol:  m.CurrencySymbol,
		MonthlyBudget:   m.MonthlyBudget,
		CategoryBudgets: budgets,
		EmailReminders:  m.EmailReminders,
		WeeklySummary:   m.WeeklySummary,
		Points:          m.Points,
		EarnedBadges:    []string(m.EarnedBadges),
		TermsAcceptedAt: m.TermsAcceptedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	budgets, err := json.Marshal(user.CategoryBudgets)
	if err != nil {
		slog.Warn("Failed to marshal category budgets", "error", err, "userID", user.ID)
		budgets = []byte("{}")
	}

	return &UserModel{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PasswordHash:    user.PasswordHash,
		CurrencySymbol:  user.CurrencySymbol,
		MonthlyBudget:   user.MonthlyBudget,
		CategoryBudgets: string(budgets),
		EmailReminders:  user.EmailReminders,
		WeeklySummary:   user.WeeklySummary,
		Points:          user.Points,
		EarnedBadges:    pq.StringArray(user.EarnedBadges),
		TermsAcceptedAt: user.TermsAcceptedAt,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// RefreshTokenModel represents the refresh_tokens table for token invalidation tracking.
type RefreshTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token       string    `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Invalidated bool      `gorm:"default:false"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the RefreshTokenModel.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PasswordResetTokenModel represents the password_reset_tokens table.
type PasswordResetTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Token     string     `gorm:"type:varchar(500);uniqueIndex;not null"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Used      bool       `gorm:"default:false"`
	UsedAt    *time.Time `gorm:"type:timestamptz"`
	ExpiresAt time.Time  `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PasswordResetTokenModel.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
