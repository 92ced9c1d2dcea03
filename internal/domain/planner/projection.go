package planner

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/domain/entity"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
)

// ProjectGoal derives how much must be saved each month to reach a goal by its
// target date and how much of the monthly budget is left to spend once that
// saving is set aside. A target date in the current month or in the past
// leaves the whole remaining amount due now.
func ProjectGoal(goal *entity.SavingsGoal, today time.Time, monthlyBudget decimal.Decimal) (entity.GoalProjection, error) {
	if !goal.TargetAmount.IsPositive() {
		return entity.GoalProjection{}, domainerror.NewInvalidGoalError(goal.Title, "target amount must be greater than zero")
	}
	if goal.CurrentAmount.IsNegative() {
		return entity.GoalProjection{}, domainerror.NewInvalidGoalError(goal.Title, "current amount cannot be negative")
	}

	months := WholeMonthsBetween(today, goal.TargetDate)
	if months < 0 {
		months = 0
	}

	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
	needed := remaining
	if months > 0 {
		needed = remaining.Div(decimal.NewFromInt(int64(months)))
	}

	ceiling := decimal.Max(decimal.Zero, monthlyBudget.Sub(needed))

	progress := decimal.Min(hundred, goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred))

	return entity.GoalProjection{
		MonthsRemaining:        months,
		MonthlySavingsNeeded:   needed,
		MonthlySpendingCeiling: ceiling,
		ProgressPercent:        progress,
		BudgetInsufficient:     ceiling.IsZero(),
	}, nil
}

// WholeMonthsBetween counts the full calendar months from one date to another,
// ignoring the time of day. A month is full once the day of month is reached
// again. A single month also counts as full when to is the last day of a
// shorter month. The result is negative when to is before from.
func WholeMonthsBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()

	fromDay := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	toDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	if toDay.Before(fromDay) {
		return -WholeMonthsBetween(to, from)
	}

	months := (ty-fy)*12 + int(tm-fm)
	if months > 0 && td < fd && !(months == 1 && isLastDayOfMonth(toDay)) {
		months--
	}
	return months
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}
