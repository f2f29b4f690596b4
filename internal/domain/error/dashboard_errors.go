// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Sentinel errors for dashboard query validation.
var (
	ErrMissingStartDate   = errors.New("start date is required")
	ErrMissingEndDate     = errors.New("end date is required")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidGranularity = errors.New("invalid granularity")
)

// DashboardErrorCode identifies a dashboard failure on the wire.
// Format: DSH-XXYYYY where XX groups the category and YYYY is the specific error.
type DashboardErrorCode string

const (
	// Validation (01XXXX)
	ErrCodeMissingStartDate   DashboardErrorCode = "DSH-010001"
	ErrCodeMissingEndDate     DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidDateRange   DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidGranularity DashboardErrorCode = "DSH-010004"
)

// DashboardError carries a DashboardErrorCode alongside a human-readable
// message and an optional wrapped cause.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
