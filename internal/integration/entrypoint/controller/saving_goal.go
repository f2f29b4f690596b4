package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/usecase/savinggoal"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// SavingGoalController handles saving goal endpoints.
type SavingGoalController struct {
	createUseCase *savinggoal.CreateGoalUseCase
	listUseCase   *savinggoal.ListGoalsUseCase
	getUseCase    *savinggoal.GetGoalUseCase
	updateUseCase *savinggoal.UpdateGoalUseCase
	deleteUseCase *savinggoal.DeleteGoalUseCase
}

// NewSavingGoalController creates a new saving goal controller instance.
func NewSavingGoalController(
	createUseCase *savinggoal.CreateGoalUseCase,
	listUseCase *savinggoal.ListGoalsUseCase,
	getUseCase *savinggoal.GetGoalUseCase,
	updateUseCase *savinggoal.UpdateGoalUseCase,
	deleteUseCase *savinggoal.DeleteGoalUseCase,
) *SavingGoalController {
	return &SavingGoalController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /saving-goals requests.
func (c *SavingGoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateSavingGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalName),
		})
		return
	}

	targetAmount, err := parseAmount(req.TargetAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target amount format",
			Code:  string(domainerror.ErrCodeInvalidTargetAmount),
		})
		return
	}

	input := savinggoal.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: targetAmount,
		Color:        req.Color,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNewSavingGoalResponse(output.Goal))
}

// List handles GET /saving-goals requests.
func (c *SavingGoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), savinggoal.ListGoalsInput{
		UserID: userID,
	})
	if err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingGoalListResponse(output.Goals))
}

// Get handles GET /saving-goals/:id requests.
func (c *SavingGoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeSavingGoalNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), savinggoal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingGoalDetailResponse(output.Goal, output.Savings))
}

// Update handles PATCH /saving-goals/:id requests.
func (c *SavingGoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeSavingGoalNotFound),
		})
		return
	}

	var req dto.UpdateSavingGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalName),
		})
		return
	}

	input := savinggoal.UpdateGoalInput{
		GoalID: goalID,
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	}

	if req.TargetAmount != nil {
		targetAmount, err := parseAmount(*req.TargetAmount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target amount format",
				Code:  string(domainerror.ErrCodeInvalidTargetAmount),
			})
			return
		}
		input.TargetAmount = &targetAmount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingGoalResponse(output.Goal))
}

// Delete handles DELETE /saving-goals/:id requests.
// Linked savings are kept and unlinked from the goal.
func (c *SavingGoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeSavingGoalNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), savinggoal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		handleSavingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteSavingGoalResponse{
		Success:         output.Success,
		UnlinkedSavings: output.UnlinkedSavings,
	})
}
