// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
// Amounts travel as fixed-point decimal strings to avoid float drift.
type CreateExpenseRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
	Date        string `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for expense update.
// Absent fields stay unchanged.
type UpdateExpenseRequest struct {
	Amount      *string `json:"amount,omitempty"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        *string `json:"date,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PaginationResponse represents pagination metadata in list responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse  `json:"expenses"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		UserID:      expense.UserID.String(),
		Amount:      expense.Amount.StringFixed(2),
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date.Format("2006-01-02"),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToExpenseListResponse converts expenses plus pagination to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense, pagination PaginationResponse) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		items[i] = ToExpenseResponse(expense)
	}
	return ExpenseListResponse{
		Expenses:   items,
		Pagination: pagination,
	}
}
