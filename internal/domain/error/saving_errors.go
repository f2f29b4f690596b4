// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Saving and saving goal domain errors.
var (
	// ErrSavingNotFound is returned when a saving entry is not found in the system.
	ErrSavingNotFound = errors.New("saving not found")

	// ErrSavingGoalNotFound is returned when a saving goal is not found in the system.
	ErrSavingGoalNotFound = errors.New("saving goal not found")

	// ErrUnauthorizedSavingAccess is returned when a user accesses someone else's saving.
	ErrUnauthorizedSavingAccess = errors.New("unauthorized access to saving")

	// ErrUnauthorizedGoalAccess is returned when a user accesses someone else's goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to saving goal")

	// ErrInvalidSavingAmount is returned when the saving amount is zero or negative.
	ErrInvalidSavingAmount = errors.New("saving amount must be positive")

	// ErrInvalidTargetAmount is returned when the goal target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be positive")

	// ErrMissingGoalName is returned when the goal name is empty.
	ErrMissingGoalName = errors.New("goal name is required")
)

// SavingErrorCode defines error codes for saving errors.
// Format: SAV-XXYYYY where XX is category and YYYY is specific error.
type SavingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSavingAmount SavingErrorCode = "SAV-010001"
	ErrCodeInvalidTargetAmount SavingErrorCode = "SAV-010002"
	ErrCodeMissingGoalName     SavingErrorCode = "SAV-010003"
	ErrCodeMissingSavingFields SavingErrorCode = "SAV-010004"

	// Access errors (02XXXX)
	ErrCodeSavingNotFound           SavingErrorCode = "SAV-020001"
	ErrCodeSavingGoalNotFound       SavingErrorCode = "SAV-020002"
	ErrCodeUnauthorizedSavingAccess SavingErrorCode = "SAV-020003"
	ErrCodeUnauthorizedGoalAccess   SavingErrorCode = "SAV-020004"
)

// SavingError represents a saving error with code and message.
type SavingError struct {
	Code    SavingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingError) Unwrap() error {
	return e.Err
}

// NewSavingError creates a new SavingError with the given code and message.
func NewSavingError(code SavingErrorCode, message string, err error) *SavingError {
	return &SavingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
