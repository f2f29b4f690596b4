// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// parseDate parses a calendar date from its wire format.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseAmount parses a fixed-point decimal amount string.
func parseAmount(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}
