package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/application/usecase/goalprojection"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/middleware"
)

// GoalProjectionController handles savings goal projection endpoints.
type GoalProjectionController struct {
	projectUseCase *goalprojection.ProjectGoalUseCase
	listUseCase    *goalprojection.ListProjectionsUseCase
	getUseCase     *goalprojection.GetProjectionUseCase
}

// NewGoalProjectionController creates a new goal projection controller instance.
func NewGoalProjectionController(
	projectUseCase *goalprojection.ProjectGoalUseCase,
	listUseCase *goalprojection.ListProjectionsUseCase,
	getUseCase *goalprojection.GetProjectionUseCase,
) *GoalProjectionController {
	return &GoalProjectionController{
		projectUseCase: projectUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
	}
}

// Project handles POST /goal-projections requests.
func (c *GoalProjectionController) Project(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ProjectGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	targetDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.TargetDate))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "target_date must use the YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidTargetDate),
		})
		return
	}

	current := decimal.Zero
	if req.CurrentAmount != nil {
		current = *req.CurrentAmount
	}

	output, err := c.projectUseCase.Execute(ctx.Request.Context(), goalprojection.ProjectGoalInput{
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  *req.TargetAmount,
		CurrentAmount: current,
		TargetDate:    targetDate,
		MonthlyBudget: req.MonthlyBudget,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProjectionResponse(output))
}

// List handles GET /goal-projections requests.
func (c *GoalProjectionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goalprojection.ListProjectionsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProjectionListResponse(output))
}

// Get handles GET /goal-projections/:id requests.
func (c *GoalProjectionController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goalprojection.GetProjectionInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProjectionResponse(output))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalProjectionController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error:   goalErr.Message,
			Code:    string(goalErr.Code),
			Details: goalErr.Title,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeGoalInternalError),
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidGoal:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeMissingGoalFields, domainerror.ErrCodeInvalidTargetDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
