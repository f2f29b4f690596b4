// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/application/usecase/profile"
)

// UpdateProfileRequest represents the request body for profile update.
// Absent fields stay unchanged; category_budgets replaces the whole map.
type UpdateProfileRequest struct {
	Name            *string           `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	CurrencySymbol  *string           `json:"currency_symbol,omitempty"`
	MonthlyBudget   *string           `json:"monthly_budget,omitempty"`
	CategoryBudgets map[string]string `json:"category_budgets,omitempty"`
	EmailReminders  *bool             `json:"email_reminders,omitempty"`
	WeeklySummary   *bool             `json:"weekly_summary,omitempty"`
}

// ProfileResponse represents the user's profile and gamification state.
type ProfileResponse struct {
	Email           string            `json:"email"`
	Name            string            `json:"name"`
	CurrencySymbol  string            `json:"currency_symbol"`
	MonthlyBudget   string            `json:"monthly_budget"`
	CategoryBudgets map[string]string `json:"category_budgets"`
	EmailReminders  bool              `json:"email_reminders"`
	WeeklySummary   bool              `json:"weekly_summary"`
	Points          int               `json:"points"`
	Level           int               `json:"level"`
	EarnedBadges    []string          `json:"earned_badges"`
}

// ToProfileResponse converts a profile output to a ProfileResponse DTO.
func ToProfileResponse(output *profile.GetProfileOutput) ProfileResponse {
	budgets := make(map[string]string, len(output.CategoryBudgets))
	for category, budget := range output.CategoryBudgets {
		budgets[category] = budget.StringFixed(2)
	}

	badges := output.EarnedBadges
	if badges == nil {
		badges = []string{}
	}

	return ProfileResponse{
		Email:           output.Email,
		Name:            output.Name,
		CurrencySymbol:  output.CurrencySymbol,
		MonthlyBudget:   output.MonthlyBudget.StringFixed(2),
		CategoryBudgets: budgets,
		EmailReminders:  output.EmailReminders,
		WeeklySummary:   output.WeeklySummary,
		Points:          output.Points,
		Level:           output.Level,
		EarnedBadges:    badges,
	}
}
