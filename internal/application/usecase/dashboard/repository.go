// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/domain/entity"
)

// DashboardRepository defines the read-side aggregation of recorded expenses.
type DashboardRepository interface {
	// GetExpenseTotals returns the sum and count of expenses dated on or after since.
	GetExpenseTotals(ctx context.Context, userID uuid.UUID, since time.Time) (*entity.ExpenseTotals, error)

	// GetCategoryTotals returns expenses dated on or after since grouped by category, largest first.
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]RawCategoryTotal, error)

	// GetRecentExpenses returns the most recently recorded expenses.
	GetRecentExpenses(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Expense, error)
}

// RawCategoryTotal represents one category row from the database.
type RawCategoryTotal struct {
	Category     *string
	Amount       decimal.Decimal
	ExpenseCount int
}
