package planner

import (
	"errors"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/domain/entity"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
)

// BuildPlan orders debts by annual rate, highest first, and projects each one
// under a fixed payment. The highest-rate debt receives its minimum plus the
// extra payment; every other debt pays its minimum. Equal rates keep their
// input order.
//
// Debts are amortized independently: the payment freed by a retired debt is
// not rolled over to the next one.
func BuildPlan(debts []entity.Debt, extraPayment decimal.Decimal) ([]entity.PaymentPlanEntry, error) {
	if len(debts) == 0 {
		return nil, domainerror.NewPlannerError(domainerror.ErrCodeEmptyInput, "at least one debt is required", domainerror.ErrEmptyInput)
	}

	for _, d := range debts {
		if err := validateDebt(d); err != nil {
			return nil, err
		}
	}

	ordered := make([]entity.Debt, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AnnualRate.GreaterThan(ordered[j].AnnualRate)
	})

	if extraPayment.IsNegative() {
		return nil, domainerror.NewDebtError(domainerror.ErrCodeInvalidPayment, ordered[0].Name, "extra payment cannot be negative", domainerror.ErrInvalidPayment)
	}

	entries := make([]entity.PaymentPlanEntry, 0, len(ordered))
	for i, d := range ordered {
		payment := d.MinPayment
		if i == 0 {
			payment = payment.Add(extraPayment)
		}

		result, err := Amortize(d.Balance, d.AnnualRate, payment)
		if err != nil {
			return nil, attributeTo(d.Name, err)
		}

		entries = append(entries, entity.PaymentPlanEntry{
			DebtID:         d.ID,
			DebtName:       d.Name,
			MonthlyPayment: payment,
			MonthsToPayoff: result.Months,
			TotalInterest:  result.TotalInterest,
			TotalPaid:      result.TotalPaid,
		})
	}

	return entries, nil
}

// Summarize aggregates a plan. Totals of balance and minimum payments come
// from the debts; interest and months come from the entries.
func Summarize(debts []entity.Debt, entries []entity.PaymentPlanEntry) entity.PlanSummary {
	summary := entity.PlanSummary{
		TotalDebt:        decimal.Zero,
		TotalMinPayments: decimal.Zero,
		TotalInterest:    decimal.Zero,
	}

	for _, d := range debts {
		summary.TotalDebt = summary.TotalDebt.Add(d.Balance)
		summary.TotalMinPayments = summary.TotalMinPayments.Add(d.MinPayment)
	}

	if len(entries) == 0 {
		return summary
	}

	totalMonths := 0
	for _, e := range entries {
		summary.TotalInterest = summary.TotalInterest.Add(e.TotalInterest)
		totalMonths += e.MonthsToPayoff
	}
	summary.AverageMonths = float64(totalMonths) / float64(len(entries))
	summary.AverageMonthsRounded = int(math.Round(summary.AverageMonths))

	return summary
}

func validateDebt(d entity.Debt) error {
	switch {
	case !d.MinPayment.IsPositive():
		return domainerror.NewDebtError(domainerror.ErrCodeInvalidPayment, d.Name, "minimum payment must be greater than zero", domainerror.ErrInvalidPayment)
	case d.Balance.IsNegative():
		return domainerror.NewDebtError(domainerror.ErrCodeInvalidDebt, d.Name, "balance cannot be negative", domainerror.ErrInvalidDebt)
	case d.AnnualRate.IsNegative():
		return domainerror.NewDebtError(domainerror.ErrCodeInvalidDebt, d.Name, "interest rate cannot be negative", domainerror.ErrInvalidDebt)
	}
	return nil
}

func attributeTo(debtName string, err error) error {
	var plannerErr *domainerror.PlannerError
	if errors.As(err, &plannerErr) {
		return domainerror.NewDebtError(plannerErr.Code, debtName, plannerErr.Message, plannerErr.Err)
	}
	return err
}
