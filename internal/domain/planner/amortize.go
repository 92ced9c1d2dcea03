// Package planner implements the pure calculations behind debt payoff plans and
// savings goal projections. Nothing in this package performs I/O.
package planner

import (
	"math"

	"github.com/shopspring/decimal"

	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
	percentYear  = hundred.Mul(monthsInYear)
)

// Amortization holds the payoff figures of one balance under a fixed monthly payment.
type Amortization struct {
	Months        int
	TotalInterest decimal.Decimal
	TotalPaid     decimal.Decimal
}

// MonthlyRate converts an annual percentage rate into a monthly periodic rate.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(monthsInYear)
}

// Amortize computes how many months a fixed payment needs to retire a balance
// and what is paid in total. Months are always rounded up, so the final month
// is counted as a full payment.
func Amortize(balance, annualRatePercent, payment decimal.Decimal) (Amortization, error) {
	if balance.IsNegative() {
		return Amortization{}, domainerror.NewPlannerError(domainerror.ErrCodeInvalidDebt, "balance cannot be negative", domainerror.ErrInvalidDebt)
	}
	if annualRatePercent.IsNegative() {
		return Amortization{}, domainerror.NewPlannerError(domainerror.ErrCodeInvalidDebt, "interest rate cannot be negative", domainerror.ErrInvalidDebt)
	}
	if !payment.IsPositive() {
		return Amortization{}, domainerror.NewPlannerError(domainerror.ErrCodeInvalidPayment, "monthly payment must be greater than zero", domainerror.ErrInvalidPayment)
	}

	if balance.IsZero() {
		return Amortization{TotalInterest: decimal.Zero, TotalPaid: decimal.Zero}, nil
	}

	rate := MonthlyRate(annualRatePercent)
	if rate.IsZero() {
		quotient, remainder := balance.QuoRem(payment, 0)
		months := quotient.IntPart()
		if remainder.IsPositive() {
			months++
		}
		return Amortization{
			Months:        int(months),
			TotalInterest: decimal.Zero,
			TotalPaid:     balance,
		}, nil
	}

	// Exact form of payment <= balance * monthly rate.
	if payment.Mul(percentYear).LessThanOrEqual(balance.Mul(annualRatePercent)) {
		return Amortization{}, nonAmortizingError()
	}

	b := balance.InexactFloat64()
	r := rate.InexactFloat64()
	p := payment.InexactFloat64()
	remaining := 1 - b*r/p
	if remaining <= 0 {
		return Amortization{}, nonAmortizingError()
	}
	n := math.Ceil(-math.Log(remaining) / math.Log1p(r))
	if math.IsNaN(n) || math.IsInf(n, 0) || n > math.MaxInt32 {
		return Amortization{}, nonAmortizingError()
	}
	months := int(n)

	totalPaid := payment.Mul(decimal.NewFromInt(int64(months)))
	return Amortization{
		Months:        months,
		TotalInterest: totalPaid.Sub(balance),
		TotalPaid:     totalPaid,
	}, nil
}

func nonAmortizingError() error {
	return domainerror.NewPlannerError(domainerror.ErrCodeInvalidPayment, "monthly payment does not cover the monthly interest", domainerror.ErrInvalidPayment)
}
