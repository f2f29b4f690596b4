// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/usecase/saving"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// SavingController handles saving endpoints.
type SavingController struct {
	createUseCase *saving.CreateSavingUseCase
	listUseCase   *saving.ListSavingsUseCase
	updateUseCase *saving.UpdateSavingUseCase
	deleteUseCase *saving.DeleteSavingUseCase
}

// NewSavingController creates a new saving controller instance.
func NewSavingController(
	createUseCase *saving.CreateSavingUseCase,
	listUseCase *saving.ListSavingsUseCase,
	updateUseCase *saving.UpdateSavingUseCase,
	deleteUseCase *saving.DeleteSavingUseCase,
) *SavingController {
	return &SavingController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /savings requests.
func (c *SavingController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSavingFields),
		})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidSavingAmount),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingSavingFields),
		})
		return
	}

	input := saving.CreateSavingInput{
		UserID: userID,
		Amount: amount,
		Note:   req.Note,
		Date:   date,
	}

	if req.GoalID != nil {
		goalID, err := uuid.Parse(*req.GoalID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid goal ID format",
				Code:  string(domainerror.ErrCodeSavingGoalNotFound),
			})
			return
		}
		input.GoalID = &goalID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingResponse(output.Saving))
}

// List handles GET /savings requests.
func (c *SavingController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := saving.ListSavingsInput{
		UserID: userID,
	}

	if goalIDStr := ctx.Query("goal_id"); goalIDStr != "" {
		goalID, err := uuid.Parse(goalIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid goal ID format",
				Code:  string(domainerror.ErrCodeSavingGoalNotFound),
			})
			return
		}
		input.GoalID = &goalID
	}

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingSavingFields),
			})
			return
		}
		input.StartDate = &start
	}

	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := parseDate(endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingSavingFields),
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingListResponse(output.Savings))
}

// Update handles PATCH /savings/:id requests.
func (c *SavingController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	savingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid saving ID format",
		})
		return
	}

	var req dto.UpdateSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSavingFields),
		})
		return
	}

	input := saving.UpdateSavingInput{
		SavingID:  savingID,
		UserID:    userID,
		Note:      req.Note,
		ClearGoal: req.ClearGoal,
	}

	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidSavingAmount),
			})
			return
		}
		input.Amount = &amount
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingSavingFields),
			})
			return
		}
		input.Date = &date
	}

	if req.GoalID != nil {
		goalID, err := uuid.Parse(*req.GoalID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid goal ID format",
				Code:  string(domainerror.ErrCodeSavingGoalNotFound),
			})
			return
		}
		input.GoalID = &goalID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingResponse(output.Saving))
}

// Delete handles DELETE /savings/:id requests.
func (c *SavingController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	savingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid saving ID format",
		})
		return
	}

	input := saving.DeleteSavingInput{
		SavingID: savingID,
		UserID:   userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSavingError handles saving errors and returns appropriate HTTP
// responses. Shared between the saving and saving goal controllers, which
// report through the same error domain.
func handleSavingError(ctx *gin.Context, err error) {
	var savingErr *domainerror.SavingError
	if errors.As(err, &savingErr) {
		statusCode := getStatusCodeForSavingError(savingErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: savingErr.Message,
			Code:  string(savingErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSavingError maps saving error codes to HTTP status codes.
func getStatusCodeForSavingError(code domainerror.SavingErrorCode) int {
	switch code {
	case domainerror.ErrCodeSavingNotFound, domainerror.ErrCodeSavingGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedSavingAccess, domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidSavingAmount,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeMissingGoalName,
		domainerror.ErrCodeMissingSavingFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
