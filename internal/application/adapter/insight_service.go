// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budgetwise/backend/internal/domain/metrics"
)

// InsightRequest carries the material the insight generator works from.
type InsightRequest struct {
	UserName       string
	CurrencySymbol string
	Month          string // e.g. "March 2024"
	Report         *metrics.Report
}

// InsightResult is the generated monthly spending insight.
type InsightResult struct {
	Summary     string
	Suggestions []string
}

// InsightService generates a natural-language summary of a metrics report.
type InsightService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// GenerateMonthlyInsight produces a summary plus actionable suggestions.
	GenerateMonthlyInsight(ctx context.Context, request *InsightRequest) (*InsightResult, error)
}
