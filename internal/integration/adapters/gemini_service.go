// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// GeminiService implements the InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateMonthlyInsight produces a summary plus actionable suggestions for a
// month's spending report.
func (s *GeminiService) GenerateMonthlyInsight(ctx context.Context, request *adapter.InsightRequest) (*adapter.InsightResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.InsightRequest) string {
	var sb strings.Builder
	report := request.Report
	symbol := request.CurrencySymbol

	sb.WriteString(`You are a friendly personal finance coach. You will receive one month of budgeting metrics for a user and must write a short, encouraging insight about their spending.

RULES:
- Be specific: reference the actual numbers you are given.
- Be encouraging, never judgmental. Celebrate streaks and no-spend days.
- Suggestions must be concrete actions the user can take next month.
- Keep the summary under 80 words. Give 2 to 4 suggestions.

`)

	sb.WriteString(fmt.Sprintf("USER: %s\nMONTH: %s\n\nMETRICS:\n", request.UserName, request.Month))
	sb.WriteString(fmt.Sprintf("- Total spent: %s%s\n", symbol, report.MonthlyTotal.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Budget remaining: %s%s\n", symbol, report.Remaining.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Health score: %d/100\n", report.HealthScore))
	sb.WriteString(fmt.Sprintf("- No-spend days: %d\n", report.NoSpendDays))
	sb.WriteString(fmt.Sprintf("- Savings streak: %d weeks (longest %d)\n", report.CurrentStreak, report.LongestStreak))
	sb.WriteString(fmt.Sprintf("- This week spent: %s%s, saved: %s%s\n",
		symbol, report.WeeklySpent.StringFixed(2), symbol, report.WeeklySaved.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Projected month-end total: %s%s (over/under budget: %s%s)\n",
		symbol, report.PredictedTotal.StringFixed(2), symbol, report.PredictedOverUnder.StringFixed(2)))

	if len(report.CategoryBreakdown) > 0 {
		sb.WriteString("\nCATEGORY BREAKDOWN:\n")
		categories := make([]string, 0, len(report.CategoryBreakdown))
		for name := range report.CategoryBreakdown {
			categories = append(categories, name)
		}
		sort.Strings(categories)
		for _, name := range categories {
			spend := report.CategoryBreakdown[name]
			sb.WriteString(fmt.Sprintf("- %s: spent %s%s of %s%s budget (badge: %s)\n",
				name, symbol, spend.Spent.StringFixed(2), symbol, spend.Budget.StringFixed(2), spend.Tier))
		}
	}

	sb.WriteString(`
Respond with a single JSON object:
{
  "summary": "string, the insight text",
  "suggestions": ["string", "string"]
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiInsight represents the raw response from Gemini.
type geminiInsight struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

// parseResponse parses the Gemini response into an InsightResult.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.InsightResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var insight geminiInsight
	if err := json.Unmarshal([]byte(textContent), &insight); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if insight.Summary == "" {
		return nil, fmt.Errorf("response missing summary")
	}

	return &adapter.InsightResult{
		Summary:     insight.Summary,
		Suggestions: insight.Suggestions,
	}, nil
}
