// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Profile domain errors.
var (
	// ErrProfileNotFound is returned when the user's profile is not found.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidMonthlyBudget is returned when the monthly budget is zero or negative.
	ErrInvalidMonthlyBudget = errors.New("monthly budget must be positive")

	// ErrInvalidCategoryBudget is returned when a category budget is zero or negative.
	ErrInvalidCategoryBudget = errors.New("category budgets must be positive")

	// ErrInvalidCurrencySymbol is returned when the currency symbol is empty or too long.
	ErrInvalidCurrencySymbol = errors.New("invalid currency symbol")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthlyBudget  ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidCategoryBudget ProfileErrorCode = "PRF-010002"
	ErrCodeInvalidCurrencySymbol ProfileErrorCode = "PRF-010003"

	// Access errors (02XXXX)
	ErrCodeProfileNotFound ProfileErrorCode = "PRF-020001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
