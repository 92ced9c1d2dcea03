package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-dashboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getBudgetSummaryUseCase *dashboard.GetBudgetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getBudgetSummaryUseCase *dashboard.GetBudgetSummaryUseCase) *DashboardController {
	return &DashboardController{
		getBudgetSummaryUseCase: getBudgetSummaryUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
// The optional as_of query parameter (YYYY-MM-DD) selects the month.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetBudgetSummaryInput{UserID: userID}

	if asOf := ctx.Query("as_of"); asOf != "" {
		date, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidDateFormat.Error(),
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.AsOf = date
	}

	output, err := c.getBudgetSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve dashboard summary",
			Code:  string(domainerror.ErrCodeDashboardInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(output))
}
