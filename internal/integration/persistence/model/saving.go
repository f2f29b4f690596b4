// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// SavingModel represents the savings table in the database.
type SavingModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Note      string          `gorm:"type:varchar(255)"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	GoalID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *UserModel       `gorm:"foreignKey:UserID;references:ID"`
	Goal *SavingGoalModel `gorm:"foreignKey:GoalID;references:ID"`
}

// TableName returns the table name for the SavingModel.
func (SavingModel) TableName() string {
	return "savings"
}

// ToEntity converts a SavingModel to a domain Saving entity.
func (m *SavingModel) ToEntity() *entity.Saving {
	return &entity.Saving{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Note:      m.Note,
		Date:      m.Date,
		GoalID:    m.GoalID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SavingFromEntity creates a SavingModel from a domain Saving entity.
func SavingFromEntity(saving *entity.Saving) *SavingModel {
	return &SavingModel{
		ID:        saving.ID,
		UserID:    saving.UserID,
		Amount:    saving.Amount,
		Note:      saving.Note,
		Date:      saving.Date,
		GoalID:    saving.GoalID,
		CreatedAt: saving.CreatedAt,
		UpdatedAt: saving.UpdatedAt,
	}
}

// SavingGoalModel represents the saving_goals table in the database.
type SavingGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Color         string          `gorm:"type:varchar(20)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the SavingGoalModel.
func (SavingGoalModel) TableName() string {
	return "saving_goals"
}

// ToEntity converts a SavingGoalModel to a domain SavingGoal entity.
func (m *SavingGoalModel) ToEntity() *entity.SavingGoal {
	return &entity.SavingGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Color:         m.Color,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SavingGoalFromEntity creates a SavingGoalModel from a domain SavingGoal entity.
func SavingGoalFromEntity(goal *entity.SavingGoal) *SavingGoalModel {
	return &SavingGoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Color:         goal.Color,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
