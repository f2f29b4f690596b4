// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrUnauthorizedExpenseAccess is returned when a user accesses someone else's expense.
	ErrUnauthorizedExpenseAccess = errors.New("unauthorized access to expense")

	// ErrInvalidExpenseAmount is returned when the expense amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrMissingExpenseCategory is returned when the expense category is empty.
	ErrMissingExpenseCategory = errors.New("expense category is required")

	// ErrInvalidExpenseDate is returned when the expense date is missing or unparseable.
	ErrInvalidExpenseDate = errors.New("invalid expense date")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeMissingExpenseCategory ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate     ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010004"

	// Access errors (02XXXX)
	ErrCodeExpenseNotFound           ExpenseErrorCode = "EXP-020001"
	ErrCodeUnauthorizedExpenseAccess ExpenseErrorCode = "EXP-020002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
