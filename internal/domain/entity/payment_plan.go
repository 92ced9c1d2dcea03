package entity

import "github.com/shopspring/decimal"

// PaymentPlanEntry is the payoff projection of one debt under a fixed monthly payment.
type PaymentPlanEntry struct {
	DebtID         string
	DebtName       string
	MonthlyPayment decimal.Decimal
	MonthsToPayoff int
	TotalInterest  decimal.Decimal
	TotalPaid      decimal.Decimal
}

// PlanSummary aggregates the entries of a plan together with the debts they came from.
type PlanSummary struct {
	TotalDebt            decimal.Decimal
	TotalMinPayments     decimal.Decimal
	TotalInterest        decimal.Decimal
	AverageMonths        float64
	AverageMonthsRounded int
}

// PaymentPlan is the full result handed back to callers of the plan use case.
type PaymentPlan struct {
	Entries     []PaymentPlanEntry
	Summary     PlanSummary
	Explanation string
}
