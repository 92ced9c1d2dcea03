package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/budget-dashboard/backend/internal/domain/entity"
	"github.com/budget-dashboard/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetExpenseTotals returns the sum and count of expenses dated on or after since.
func (r *dashboardRepository) GetExpenseTotals(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) (*entity.ExpenseTotals, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
		Count int64           `gorm:"column:expense_count"`
	}

	query := `
		SELECT
			COALESCE(SUM(amount), 0) as total,
			COUNT(*) as expense_count
		FROM expenses
		WHERE user_id = ?
			AND date >= ?
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID, since).
		Scan(&result).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get expense totals: %w", err)
	}

	return &entity.ExpenseTotals{
		Total: result.Total,
		Count: result.Count,
	}, nil
}

// GetCategoryTotals returns expenses dated on or after since grouped by category.
// Expenses without a category are grouped under a NULL category.
func (r *dashboardRepository) GetCategoryTotals(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]dashboard.RawCategoryTotal, error) {
	var results []struct {
		Category     *string         `gorm:"column:category"`
		Amount       decimal.Decimal `gorm:"column:amount"`
		ExpenseCount int             `gorm:"column:expense_count"`
	}

	query := `
		SELECT
			NULLIF(category, '') as category,
			SUM(amount) as amount,
			COUNT(*) as expense_count
		FROM expenses
		WHERE user_id = ?
			AND date >= ?
		GROUP BY NULLIF(category, '')
		ORDER BY amount DESC
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID, since).
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	totals := make([]dashboard.RawCategoryTotal, len(results))
	for i, res := range results {
		totals[i] = dashboard.RawCategoryTotal{
			Category:     res.Category,
			Amount:       res.Amount,
			ExpenseCount: res.ExpenseCount,
		}
	}

	return totals, nil
}

// GetRecentExpenses returns the most recently recorded expenses of a user.
func (r *dashboardRepository) GetRecentExpenses(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&expenseModels).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get recent expenses: %w", err)
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}

	return expenses, nil
}
