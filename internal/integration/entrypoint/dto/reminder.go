// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateReminderRequest represents the request body for reminder creation.
type CreateReminderRequest struct {
	Title              string `json:"title" binding:"required,max=255"`
	Amount             string `json:"amount,omitempty"`
	DueDate            string `json:"due_date" binding:"required"`
	DueTime            string `json:"due_time,omitempty"`
	Category           string `json:"category,omitempty" binding:"omitempty,max=100"`
	IsRecurring        bool   `json:"is_recurring"`
	RecurringFrequency string `json:"recurring_frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
}

// UpdateReminderRequest represents the request body for reminder update.
// Absent fields stay unchanged.
type UpdateReminderRequest struct {
	Title              *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Amount             *string `json:"amount,omitempty"`
	DueDate            *string `json:"due_date,omitempty"`
	DueTime            *string `json:"due_time,omitempty"`
	Category           *string `json:"category,omitempty" binding:"omitempty,max=100"`
	IsRecurring        *bool   `json:"is_recurring,omitempty"`
	RecurringFrequency *string `json:"recurring_frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
}

// ReminderResponse represents a single reminder in API responses.
type ReminderResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	Title              string     `json:"title"`
	Amount             string     `json:"amount"`
	DueDate            string     `json:"due_date"`
	DueTime            string     `json:"due_time,omitempty"`
	Category           string     `json:"category,omitempty"`
	IsCompleted        bool       `json:"is_completed"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	IsRecurring        bool       `json:"is_recurring"`
	RecurringFrequency string     `json:"recurring_frequency,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ReminderListResponse represents the response for listing reminders.
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// CompleteReminderResponse represents the response for completing a reminder.
// Successor is the next occurrence; absent for non-recurring reminders.
type CompleteReminderResponse struct {
	Reminder  ReminderResponse  `json:"reminder"`
	Successor *ReminderResponse `json:"successor,omitempty"`
}

// ToReminderResponse converts a domain Reminder entity to a ReminderResponse DTO.
func ToReminderResponse(reminder *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:                 reminder.ID.String(),
		UserID:             reminder.UserID.String(),
		Title:              reminder.Title,
		Amount:             reminder.Amount.StringFixed(2),
		DueDate:            reminder.DueDate.Format("2006-01-02"),
		DueTime:            reminder.DueTime,
		Category:           reminder.Category,
		IsCompleted:        reminder.IsCompleted,
		CompletedAt:        reminder.CompletedAt,
		IsRecurring:        reminder.IsRecurring,
		RecurringFrequency: string(reminder.RecurringFrequency),
		CreatedAt:          reminder.CreatedAt,
		UpdatedAt:          reminder.UpdatedAt,
	}
}

// ToReminderListResponse converts a list of reminders to a ReminderListResponse.
func ToReminderListResponse(reminders []*entity.Reminder) ReminderListResponse {
	items := make([]ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		items[i] = ToReminderResponse(reminder)
	}
	return ReminderListResponse{
		Reminders: items,
	}
}
