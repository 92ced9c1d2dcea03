package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is the monthly spending budget stored for a user.
type Budget struct {
	UserID    uuid.UUID
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

// BudgetSummary is the month-to-date view of a user's spending against the stored budget.
type BudgetSummary struct {
	PeriodStart    time.Time
	Budget         decimal.Decimal
	TotalExpenses  decimal.Decimal
	BudgetLeft     decimal.Decimal
	ExpenseCount   int64
	Categories     []CategoryTotal
	RecentExpenses []*Expense
}
