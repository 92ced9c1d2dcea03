package dto

import (
	"github.com/budget-dashboard/backend/internal/application/usecase/dashboard"
)

// CategoryTotalResponse represents the spending of one category.
type CategoryTotalResponse struct {
	Category     string  `json:"category"`
	Amount       string  `json:"amount"`
	Percentage   float64 `json:"percentage"`
	ExpenseCount int     `json:"expense_count"`
}

// RecentExpenseResponse represents a recently recorded expense.
type RecentExpenseResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// BudgetSummaryResponse represents the month-to-date dashboard figures.
type BudgetSummaryResponse struct {
	Period         string                  `json:"period"`
	PeriodStart    string                  `json:"period_start"`
	Budget         string                  `json:"budget"`
	TotalExpenses  string                  `json:"total_expenses"`
	BudgetLeft     string                  `json:"budget_left"`
	ExpenseCount   int64                   `json:"expense_count"`
	Categories     []CategoryTotalResponse `json:"categories"`
	RecentExpenses []RecentExpenseResponse `json:"recent_expenses"`
}

// ToBudgetSummaryResponse converts a GetBudgetSummaryOutput to a BudgetSummaryResponse DTO.
func ToBudgetSummaryResponse(output *dashboard.GetBudgetSummaryOutput) BudgetSummaryResponse {
	summary := output.Summary

	categories := make([]CategoryTotalResponse, len(summary.Categories))
	for i, c := range summary.Categories {
		categories[i] = CategoryTotalResponse{
			Category:     c.Category,
			Amount:       money(c.Amount),
			Percentage:   c.Percentage,
			ExpenseCount: c.ExpenseCount,
		}
	}

	recent := make([]RecentExpenseResponse, len(summary.RecentExpenses))
	for i, e := range summary.RecentExpenses {
		recent[i] = RecentExpenseResponse{
			ID:          e.ID.String(),
			Amount:      money(e.Amount),
			Category:    e.Category,
			Description: e.Description,
			Date:        e.Date.Format(dateLayout),
		}
	}

	return BudgetSummaryResponse{
		Period:         output.PeriodLabel,
		PeriodStart:    summary.PeriodStart.Format(dateLayout),
		Budget:         money(summary.Budget),
		TotalExpenses:  money(summary.TotalExpenses),
		BudgetLeft:     money(summary.BudgetLeft),
		ExpenseCount:   summary.ExpenseCount,
		Categories:     categories,
		RecentExpenses: recent,
	}
}
