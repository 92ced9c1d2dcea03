package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/application/usecase/goalprojection"
	"github.com/budget-dashboard/backend/internal/domain/entity"
)

// ProjectGoalRequest represents the request body for projecting a goal that is not stored.
type ProjectGoalRequest struct {
	Title         string           `json:"title" binding:"required"`
	TargetAmount  *decimal.Decimal `json:"target_amount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	TargetDate    string           `json:"target_date" binding:"required"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget,omitempty"`
}

// ProjectionResponse represents the derived figures of a goal.
type ProjectionResponse struct {
	MonthsRemaining        int    `json:"months_remaining"`
	MonthlySavingsNeeded   string `json:"monthly_savings_needed"`
	MonthlySpendingCeiling string `json:"monthly_spending_ceiling"`
	ProgressPercent        string `json:"progress_percent"`
	BudgetInsufficient     bool   `json:"budget_insufficient"`
}

// GoalProjectionResponse represents a goal with its projection.
type GoalProjectionResponse struct {
	ID            string             `json:"id,omitempty"`
	Title         string             `json:"title"`
	TargetAmount  string             `json:"target_amount"`
	CurrentAmount string             `json:"current_amount"`
	TargetDate    string             `json:"target_date"`
	MonthlyBudget string             `json:"monthly_budget,omitempty"`
	Projection    ProjectionResponse `json:"projection"`
}

// GoalProjectionListResponse represents the projections of all stored goals of a user.
type GoalProjectionListResponse struct {
	Goals         []GoalProjectionResponse `json:"goals"`
	MonthlyBudget string                   `json:"monthly_budget"`
}

func toGoalProjectionResponse(goal *entity.SavingsGoal, projection entity.GoalProjection) GoalProjectionResponse {
	response := GoalProjectionResponse{
		Title:         goal.Title,
		TargetAmount:  money(goal.TargetAmount),
		CurrentAmount: money(goal.CurrentAmount),
		TargetDate:    goal.TargetDate.Format(dateLayout),
		Projection: ProjectionResponse{
			MonthsRemaining:        projection.MonthsRemaining,
			MonthlySavingsNeeded:   money(projection.MonthlySavingsNeeded),
			MonthlySpendingCeiling: money(projection.MonthlySpendingCeiling),
			ProgressPercent:        money(projection.ProgressPercent),
			BudgetInsufficient:     projection.BudgetInsufficient,
		},
	}
	if goal.ID != uuid.Nil {
		response.ID = goal.ID.String()
	}
	return response
}

// ToGoalProjectionResponse converts a ProjectGoalOutput to a GoalProjectionResponse DTO.
func ToGoalProjectionResponse(output *goalprojection.ProjectGoalOutput) GoalProjectionResponse {
	response := toGoalProjectionResponse(output.Goal, output.Projection)
	response.MonthlyBudget = money(output.MonthlyBudget)
	return response
}

// ToGoalProjectionListResponse converts a ListProjectionsOutput to a GoalProjectionListResponse DTO.
func ToGoalProjectionListResponse(output *goalprojection.ListProjectionsOutput) GoalProjectionListResponse {
	goals := make([]GoalProjectionResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = toGoalProjectionResponse(g.Goal, g.Projection)
	}
	return GoalProjectionListResponse{
		Goals:         goals,
		MonthlyBudget: money(output.MonthlyBudget),
	}
}
