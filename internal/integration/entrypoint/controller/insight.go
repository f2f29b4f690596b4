package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/insight"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles AI insight endpoints.
type InsightController struct {
	monthlyUseCase *insight.GetMonthlyInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(monthlyUseCase *insight.GetMonthlyInsightUseCase) *InsightController {
	return &InsightController{
		monthlyUseCase: monthlyUseCase,
	}
}

// Monthly handles GET /insights/monthly requests.
func (c *InsightController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := insight.GetMonthlyInsightInput{
		UserID: userID,
	}

	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		asOf, err := parseDate(asOfStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid as_of format, expected YYYY-MM-DD",
			})
			return
		}
		input.AsOf = asOf
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightResponse(output))
}

// handleInsightError handles insight errors and returns appropriate HTTP responses.
func handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := getStatusCodeForInsightError(insightErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInsightError maps insight error codes to HTTP status codes.
func getStatusCodeForInsightError(code domainerror.InsightErrorCode) int {
	switch code {
	case domainerror.ErrCodeInsightUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeInsightGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
