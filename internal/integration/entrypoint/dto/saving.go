// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/savinggoal"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateSavingRequest represents the request body for saving creation.
type CreateSavingRequest struct {
	Amount string  `json:"amount" binding:"required"`
	Note   string  `json:"note" binding:"max=255"`
	Date   string  `json:"date" binding:"required"`
	GoalID *string `json:"goal_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateSavingRequest represents the request body for saving update.
// Absent fields stay unchanged; clear_goal unlinks the saving from its goal.
type UpdateSavingRequest struct {
	Amount    *string `json:"amount,omitempty"`
	Note      *string `json:"note,omitempty" binding:"omitempty,max=255"`
	Date      *string `json:"date,omitempty"`
	GoalID    *string `json:"goal_id,omitempty" binding:"omitempty,uuid"`
	ClearGoal bool    `json:"clear_goal,omitempty"`
}

// SavingResponse represents a single saving in API responses.
type SavingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note,omitempty"`
	Date      string    `json:"date"`
	GoalID    *string   `json:"goal_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavingListResponse represents the response for listing savings.
type SavingListResponse struct {
	Savings []SavingResponse `json:"savings"`
}

// CreateSavingGoalRequest represents the request body for saving goal creation.
type CreateSavingGoalRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	TargetAmount string `json:"target_amount" binding:"required"`
	Color        string `json:"color,omitempty"`
}

// UpdateSavingGoalRequest represents the request body for saving goal update.
// CurrentAmount is derived from linked savings and cannot be set directly.
type UpdateSavingGoalRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=100"`
	TargetAmount *string `json:"target_amount,omitempty"`
	Color        *string `json:"color,omitempty"`
}

// SavingGoalResponse represents a single saving goal in API responses.
type SavingGoalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Progress      string    `json:"progress"`
	Color         string    `json:"color,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SavingGoalListResponse represents the response for listing saving goals.
type SavingGoalListResponse struct {
	Goals []SavingGoalResponse `json:"goals"`
}

// SavingGoalDetailResponse represents a goal together with its linked savings.
type SavingGoalDetailResponse struct {
	Goal    SavingGoalResponse `json:"goal"`
	Savings []SavingResponse   `json:"savings"`
}

// DeleteSavingGoalResponse represents the response for goal deletion.
type DeleteSavingGoalResponse struct {
	Success         bool  `json:"success"`
	UnlinkedSavings int64 `json:"unlinked_savings"`
}

// ToSavingResponse converts a domain Saving entity to a SavingResponse DTO.
func ToSavingResponse(saving *entity.Saving) SavingResponse {
	response := SavingResponse{
		ID:        saving.ID.String(),
		UserID:    saving.UserID.String(),
		Amount:    saving.Amount.StringFixed(2),
		Note:      saving.Note,
		Date:      saving.Date.Format("2006-01-02"),
		CreatedAt: saving.CreatedAt,
		UpdatedAt: saving.UpdatedAt,
	}

	if saving.GoalID != nil {
		goalID := saving.GoalID.String()
		response.GoalID = &goalID
	}

	return response
}

// ToSavingListResponse converts a list of savings to a SavingListResponse.
func ToSavingListResponse(savings []*entity.Saving) SavingListResponse {
	items := make([]SavingResponse, len(savings))
	for i, saving := range savings {
		items[i] = ToSavingResponse(saving)
	}
	return SavingListResponse{
		Savings: items,
	}
}

// ToSavingGoalResponse converts a GoalOutput to a SavingGoalResponse DTO.
func ToSavingGoalResponse(output *savinggoal.GoalOutput) SavingGoalResponse {
	return SavingGoalResponse{
		ID:            output.Goal.ID.String(),
		UserID:        output.Goal.UserID.String(),
		Name:          output.Goal.Name,
		TargetAmount:  output.Goal.TargetAmount.StringFixed(2),
		CurrentAmount: output.Goal.CurrentAmount.StringFixed(2),
		Progress:      output.Progress.Round(4).String(),
		Color:         output.Goal.Color,
		CreatedAt:     output.Goal.CreatedAt,
		UpdatedAt:     output.Goal.UpdatedAt,
	}
}

// ToNewSavingGoalResponse converts a freshly created goal to a SavingGoalResponse.
func ToNewSavingGoalResponse(goal *entity.SavingGoal) SavingGoalResponse {
	return ToSavingGoalResponse(&savinggoal.GoalOutput{
		Goal:     goal,
		Progress: decimal.Zero,
	})
}

// ToSavingGoalDetailResponse converts a goal and its linked savings to a
// SavingGoalDetailResponse.
func ToSavingGoalDetailResponse(goal *savinggoal.GoalOutput, savings []*entity.Saving) SavingGoalDetailResponse {
	linked := make([]SavingResponse, len(savings))
	for i, saving := range savings {
		linked[i] = ToSavingResponse(saving)
	}
	return SavingGoalDetailResponse{
		Goal:    ToSavingGoalResponse(goal),
		Savings: linked,
	}
}

// ToSavingGoalListResponse converts a list of GoalOutput to SavingGoalListResponse.
func ToSavingGoalListResponse(outputs []*savinggoal.GoalOutput) SavingGoalListResponse {
	goals := make([]SavingGoalResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToSavingGoalResponse(output)
	}
	return SavingGoalListResponse{
		Goals: goals,
	}
}
