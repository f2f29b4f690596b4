// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ReminderModel represents the reminders table in the database.
type ReminderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DueDate            time.Time       `gorm:"type:date;not null;index"`
	DueTime            string          `gorm:"type:varchar(5)"`
	Category           string          `gorm:"type:varchar(100)"`
	IsCompleted        bool            `gorm:"default:false;index"`
	CompletedAt        *time.Time      `gorm:"type:timestamptz"`
	IsRecurring        bool            `gorm:"default:false"`
	RecurringFrequency string          `gorm:"type:varchar(10)"`
	NotifiedAt         *time.Time      `gorm:"type:timestamptz"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ReminderModel.
func (ReminderModel) TableName() string {
	return "reminders"
}

// ToEntity converts a ReminderModel to a domain Reminder entity.
func (m *ReminderModel) ToEntity() *entity.Reminder {
	return &entity.Reminder{
		ID:                 m.ID,
		UserID:             m.UserID,
		Title:              m.Title,
		Amount:             m.Amount,
		DueDate:            m.DueDate,
		DueTime:            m.DueTime,
		Category:           m.Category,
		IsCompleted:        m.IsCompleted,
		CompletedAt:        m.CompletedAt,
		IsRecurring:        m.IsRecurring,
		RecurringFrequency: entity.RecurringFrequency(m.RecurringFrequency),
		NotifiedAt:         m.NotifiedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ReminderFromEntity creates a ReminderModel from a domain Reminder entity.
func ReminderFromEntity(reminder *entity.Reminder) *ReminderModel {
	return &ReminderModel{
		ID:                 reminder.ID,
		UserID:             reminder.UserID,
		Title:              reminder.Title,
		Amount:             reminder.Amount,
		DueDate:            reminder.DueDate,
		DueTime:            reminder.DueTime,
		Category:           reminder.Category,
		IsCompleted:        reminder.IsCompleted,
		CompletedAt:        reminder.CompletedAt,
		IsRecurring:        reminder.IsRecurring,
		RecurringFrequency: string(reminder.RecurringFrequency),
		NotifiedAt:         reminder.NotifiedAt,
		CreatedAt:          reminder.CreatedAt,
		UpdatedAt:          reminder.UpdatedAt,
	}
}
