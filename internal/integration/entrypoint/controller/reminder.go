package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// ReminderController handles reminder endpoints.
type ReminderController struct {
	createUseCase   *reminder.CreateReminderUseCase
	listUseCase     *reminder.ListRemindersUseCase
	updateUseCase   *reminder.UpdateReminderUseCase
	completeUseCase *reminder.CompleteReminderUseCase
	deleteUseCase   *reminder.DeleteReminderUseCase
}

// NewReminderController creates a new reminder controller instance.
func NewReminderController(
	createUseCase *reminder.CreateReminderUseCase,
	listUseCase *reminder.ListRemindersUseCase,
	updateUseCase *reminder.UpdateReminderUseCase,
	completeUseCase *reminder.CompleteReminderUseCase,
	deleteUseCase *reminder.DeleteReminderUseCase,
) *ReminderController {
	return &ReminderController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		completeUseCase: completeUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// Create handles POST /reminders requests.
func (c *ReminderController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingReminderFields),
		})
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingReminderFields),
		})
		return
	}

	amount := decimal.Zero
	if req.Amount != "" {
		amount, err = parseAmount(req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidReminderAmount),
			})
			return
		}
	}

	input := reminder.CreateReminderInput{
		UserID:             userID,
		Title:              req.Title,
		Amount:             amount,
		DueDate:            dueDate,
		DueTime:            req.DueTime,
		Category:           req.Category,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: entity.RecurringFrequency(req.RecurringFrequency),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReminderResponse(output.Reminder))
}

// List handles GET /reminders requests.
func (c *ReminderController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := reminder.ListRemindersInput{
		UserID:   userID,
		Category: ctx.Query("category"),
	}

	if completedStr := ctx.Query("completed"); completedStr != "" {
		completed := completedStr == "true"
		input.Completed = &completed
	}

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingReminderFields),
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
				Code:  string(domainerror.ErrCodeMissingReminderFields),
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderListResponse(output.Reminders))
}

// Update handles PATCH /reminders/:id requests.
func (c *ReminderController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	reminderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reminder ID format",
			Code:  string(domainerror.ErrCodeReminderNotFound),
		})
		return
	}

	var req dto.UpdateReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingReminderFields),
		})
		return
	}

	input := reminder.UpdateReminderInput{
		ReminderID:  reminderID,
		UserID:      userID,
		Title:       req.Title,
		DueTime:     req.DueTime,
		Category:    req.Category,
		IsRecurring: req.IsRecurring,
	}

	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidReminderAmount),
			})
			return
		}
		input.Amount = &amount
	}

	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingReminderFields),
			})
			return
		}
		input.DueDate = &dueDate
	}

	if req.RecurringFrequency != nil {
		frequency := entity.RecurringFrequency(*req.RecurringFrequency)
		input.RecurringFrequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReminderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReminderResponse(output.Reminder))
}

// Complete handles POST /reminders/:id/complete requests. Completing a
// recurring reminder creates its next occurrence.
func (c *ReminderController) Complete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	reminderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reminder ID format",
			Code:  string(domainerror.ErrCodeReminderNotFound),
		})
		return
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), reminder.CompleteReminderInput{
		ReminderID: reminderID,
		UserID:     userID,
	})
	if err != nil {
		handleReminderError(ctx, err)
		return
	}

	response := dto.CompleteReminderResponse{
		Reminder: dto.ToReminderResponse(output.Reminder),
	}
	if output.Successor != nil {
		successor := dto.ToReminderResponse(output.Successor)
		response.Successor = &successor
	}

	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /reminders/:id requests.
func (c *ReminderController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	reminderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reminder ID format",
			Code:  string(domainerror.ErrCodeReminderNotFound),
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), reminder.DeleteReminderInput{
		ReminderID: reminderID,
		UserID:     userID,
	}); err != nil {
		handleReminderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleReminderError handles reminder errors and returns appropriate HTTP responses.
func handleReminderError(ctx *gin.Context, err error) {
	var reminderErr *domainerror.ReminderError
	if errors.As(err, &reminderErr) {
		statusCode := getStatusCodeForReminderError(reminderErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reminderErr.Message,
			Code:  string(reminderErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReminderError maps reminder error codes to HTTP status codes.
func getStatusCodeForReminderError(code domainerror.ReminderErrorCode) int {
	switch code {
	case domainerror.ErrCodeReminderNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedReminderAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeReminderAlreadyCompleted:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidReminderAmount,
		domainerror.ErrCodeMissingReminderTitle,
		domainerror.ErrCodeInvalidRecurringFrequency,
		domainerror.ErrCodeMissingReminderFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
