// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Metrics domain errors.
var (
	// ErrInvalidBudgetConfig is returned when the budget configuration cannot
	// be used for metric computation (zero or negative budgets).
	ErrInvalidBudgetConfig = errors.New("invalid budget configuration")

	// ErrMalformedRecord is returned when an input record carries values the
	// metrics engine refuses to compute over (negative amounts, zero dates).
	ErrMalformedRecord = errors.New("malformed input record")
)

// MetricsErrorCode defines error codes for metrics errors.
// Format: MET-XXYYYY where XX is category and YYYY is specific error.
type MetricsErrorCode string

const (
	// Configuration errors (01XXXX)
	ErrCodeInvalidBudgetConfig MetricsErrorCode = "MET-010001"

	// Record errors (02XXXX)
	ErrCodeMalformedRecord MetricsErrorCode = "MET-020001"
)

// MetricsError represents a metrics computation error with code and message.
type MetricsError struct {
	Code    MetricsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MetricsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MetricsError) Unwrap() error {
	return e.Err
}

// NewMetricsError creates a new MetricsError with the given code and message.
func NewMetricsError(code MetricsErrorCode, message string, err error) *MetricsError {
	return &MetricsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
