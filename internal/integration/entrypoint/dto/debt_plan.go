package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/application/usecase/debtplan"
)

// DebtRequest represents one debt in a plan request. Amounts accept JSON numbers or strings.
type DebtRequest struct {
	ID         string           `json:"id,omitempty"`
	Name       string           `json:"name" binding:"required"`
	Balance    *decimal.Decimal `json:"balance" binding:"required"`
	Rate       *decimal.Decimal `json:"rate" binding:"required"`
	MinPayment *decimal.Decimal `json:"min_payment" binding:"required"`
}

// CreateDebtPlanRequest represents the request body for plan computation.
type CreateDebtPlanRequest struct {
	Debts        []DebtRequest    `json:"debts" binding:"dive"`
	ExtraPayment *decimal.Decimal `json:"extra_payment,omitempty"`
}

// PaymentPlanEntryResponse represents one debt of a computed plan.
type PaymentPlanEntryResponse struct {
	DebtID         string `json:"debt_id"`
	DebtName       string `json:"debt_name"`
	MonthlyPayment string `json:"monthly_payment"`
	MonthsToPayoff int    `json:"months_to_payoff"`
	TotalInterest  string `json:"total_interest"`
	TotalPaid      string `json:"total_paid"`
}

// PlanSummaryResponse represents the aggregates of a computed plan.
type PlanSummaryResponse struct {
	TotalDebt            string  `json:"total_debt"`
	TotalMinPayments     string  `json:"total_min_payments"`
	TotalInterest        string  `json:"total_interest"`
	AverageMonths        float64 `json:"average_months"`
	AverageMonthsRounded int     `json:"average_months_rounded"`
}

// DebtPlanResponse represents the response of plan computation.
type DebtPlanResponse struct {
	Entries     []PaymentPlanEntryResponse `json:"entries"`
	Summary     PlanSummaryResponse        `json:"summary"`
	Explanation string                     `json:"explanation"`
	Cached      bool                       `json:"cached"`
}

// ToBuildPlanInput converts the request into use case input.
func (r *CreateDebtPlanRequest) ToBuildPlanInput() debtplan.BuildPlanInput {
	debts := make([]debtplan.DebtInput, len(r.Debts))
	for i, d := range r.Debts {
		debts[i] = debtplan.DebtInput{
			ID:         d.ID,
			Name:       d.Name,
			Balance:    *d.Balance,
			AnnualRate: *d.Rate,
			MinPayment: *d.MinPayment,
		}
	}

	extra := decimal.Zero
	if r.ExtraPayment != nil {
		extra = *r.ExtraPayment
	}

	return debtplan.BuildPlanInput{
		Debts:        debts,
		ExtraPayment: extra,
	}
}

// ToDebtPlanResponse converts a BuildPlanOutput to a DebtPlanResponse DTO.
func ToDebtPlanResponse(output *debtplan.BuildPlanOutput) DebtPlanResponse {
	plan := output.Plan

	entries := make([]PaymentPlanEntryResponse, len(plan.Entries))
	for i, e := range plan.Entries {
		entries[i] = PaymentPlanEntryResponse{
			DebtID:         e.DebtID,
			DebtName:       e.DebtName,
			MonthlyPayment: money(e.MonthlyPayment),
			MonthsToPayoff: e.MonthsToPayoff,
			TotalInterest:  money(e.TotalInterest),
			TotalPaid:      money(e.TotalPaid),
		}
	}

	return DebtPlanResponse{
		Entries: entries,
		Summary: PlanSummaryResponse{
			TotalDebt:            money(plan.Summary.TotalDebt),
			TotalMinPayments:     money(plan.Summary.TotalMinPayments),
			TotalInterest:        money(plan.Summary.TotalInterest),
			AverageMonths:        plan.Summary.AverageMonths,
			AverageMonthsRounded: plan.Summary.AverageMonthsRounded,
		},
		Explanation: plan.Explanation,
		Cached:      output.Cached,
	}
}
