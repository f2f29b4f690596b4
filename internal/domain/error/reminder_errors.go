// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Reminder domain errors.
var (
	// ErrReminderNotFound is returned when a reminder is not found in the system.
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrUnauthorizedReminderAccess is returned when a user accesses someone else's reminder.
	ErrUnauthorizedReminderAccess = errors.New("unauthorized access to reminder")

	// ErrReminderAlreadyCompleted is returned when completing an already completed reminder.
	ErrReminderAlreadyCompleted = errors.New("reminder is already completed")

	// ErrInvalidReminderAmount is returned when the reminder amount is negative.
	ErrInvalidReminderAmount = errors.New("reminder amount must not be negative")

	// ErrMissingReminderTitle is returned when the reminder title is empty.
	ErrMissingReminderTitle = errors.New("reminder title is required")

	// ErrInvalidRecurringFrequency is returned for an unsupported recurrence frequency.
	ErrInvalidRecurringFrequency = errors.New("recurring frequency must be daily, weekly, monthly or yearly")
)

// ReminderErrorCode defines error codes for reminder errors.
// Format: REM-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReminderAmount     ReminderErrorCode = "REM-010001"
	ErrCodeMissingReminderTitle      ReminderErrorCode = "REM-010002"
	ErrCodeInvalidRecurringFrequency ReminderErrorCode = "REM-010003"
	ErrCodeMissingReminderFields     ReminderErrorCode = "REM-010004"

	// Access errors (02XXXX)
	ErrCodeReminderNotFound           ReminderErrorCode = "REM-020001"
	ErrCodeUnauthorizedReminderAccess ReminderErrorCode = "REM-020002"

	// State errors (03XXXX)
	ErrCodeReminderAlreadyCompleted ReminderErrorCode = "REM-030001"
)

// ReminderError represents a reminder error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
