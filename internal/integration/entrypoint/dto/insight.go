// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/application/usecase/insight"
)

// InsightResponse represents the generated monthly insight.
// Generated is false when no insight provider is configured.
type InsightResponse struct {
	Month       string   `json:"month"`
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
	Generated   bool     `json:"generated"`
}

// ToInsightResponse converts an insight output to an InsightResponse DTO.
func ToInsightResponse(output *insight.GetMonthlyInsightOutput) InsightResponse {
	suggestions := output.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return InsightResponse{
		Month:       output.Month,
		Summary:     output.Summary,
		Suggestions: suggestions,
		Generated:   output.Generated,
	}
}
