package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a recorded spending entry. Expenses are written by the
// dashboard and only read here for aggregation.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal // Positive
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// ExpenseTotals represents the aggregated expenses of a period.
type ExpenseTotals struct {
	Total decimal.Decimal
	Count int64
}
