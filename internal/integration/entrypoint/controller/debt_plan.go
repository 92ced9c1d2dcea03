package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-dashboard/backend/internal/application/usecase/debtplan"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/dto"
)

// DebtPlanController handles debt payoff plan endpoints.
type DebtPlanController struct {
	buildPlanUseCase *debtplan.BuildPlanUseCase
}

// NewDebtPlanController creates a new debt plan controller instance.
func NewDebtPlanController(buildPlanUseCase *debtplan.BuildPlanUseCase) *DebtPlanController {
	return &DebtPlanController{
		buildPlanUseCase: buildPlanUseCase,
	}
}

// Create handles POST /debt-plans requests.
func (c *DebtPlanController) Create(ctx *gin.Context) {
	var req dto.CreateDebtPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtField),
		})
		return
	}

	output, err := c.buildPlanUseCase.Execute(ctx.Request.Context(), req.ToBuildPlanInput())
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtPlanResponse(output))
}

// handlePlannerError handles planner errors and returns appropriate HTTP responses.
func (c *DebtPlanController) handlePlannerError(ctx *gin.Context, err error) {
	var plannerErr *domainerror.PlannerError
	if errors.As(err, &plannerErr) {
		ctx.JSON(getStatusCodeForPlannerError(plannerErr.Code), dto.ErrorResponse{
			Error:   plannerErr.Message,
			Code:    string(plannerErr.Code),
			Details: plannerErr.Subject,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodePlannerInternalError),
	})
}

// getStatusCodeForPlannerError maps planner error codes to HTTP status codes.
func getStatusCodeForPlannerError(code domainerror.PlannerErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyInput,
		domainerror.ErrCodeTooManyDebts,
		domainerror.ErrCodeDuplicateDebtID,
		domainerror.ErrCodeMissingDebtField:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidPayment, domainerror.ErrCodeInvalidDebt:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
