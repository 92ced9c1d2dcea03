package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/domain/entity"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
)

// RecentExpensesLimit is the number of latest expenses included in a summary.
const RecentExpensesLimit = 5

// GetBudgetSummaryInput represents the input for the month-to-date summary.
type GetBudgetSummaryInput struct {
	UserID uuid.UUID
	AsOf   time.Time // Optional, defaults to now
}

// GetBudgetSummaryOutput represents the month-to-date summary.
type GetBudgetSummaryOutput struct {
	Summary     *entity.BudgetSummary
	PeriodLabel string
}

// GetBudgetSummaryUseCase aggregates the current month's spending against the stored budget.
type GetBudgetSummaryUseCase struct {
	dashboardRepo DashboardRepository
	budgetRepo    adapter.BudgetRepository
	now           func() time.Time
}

// NewGetBudgetSummaryUseCase creates a new GetBudgetSummaryUseCase instance.
func NewGetBudgetSummaryUseCase(dashboardRepo DashboardRepository, budgetRepo adapter.BudgetRepository, now func() time.Time) *GetBudgetSummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetBudgetSummaryUseCase{
		dashboardRepo: dashboardRepo,
		budgetRepo:    budgetRepo,
		now:           now,
	}
}

// Execute loads the budget, totals, category breakdown and recent expenses concurrently.
func (uc *GetBudgetSummaryUseCase) Execute(ctx context.Context, input GetBudgetSummaryInput) (*GetBudgetSummaryOutput, error) {
	today := input.AsOf
	if today.IsZero() {
		today = uc.now()
	}
	since := StartOfMonth(today)

	var (
		budget     *entity.Budget
		totals     *entity.ExpenseTotals
		categories []RawCategoryTotal
		recent     []*entity.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budget, err = uc.budgetRepo.FindByUserID(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to get budget: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totals, err = uc.dashboardRepo.GetExpenseTotals(gctx, input.UserID, since)
		if err != nil {
			return fmt.Errorf("failed to get expense totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = uc.dashboardRepo.GetCategoryTotals(gctx, input.UserID, since)
		if err != nil {
			return fmt.Errorf("failed to get category totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = uc.dashboardRepo.GetRecentExpenses(gctx, input.UserID, RecentExpensesLimit)
		if err != nil {
			return fmt.Errorf("failed to get recent expenses: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load dashboard summary",
			err,
		)
	}

	amount := decimal.Zero
	if budget != nil {
		amount = budget.Amount
	}
	if totals == nil {
		totals = &entity.ExpenseTotals{Total: decimal.Zero}
	}

	summary := &entity.BudgetSummary{
		PeriodStart:    since,
		Budget:         amount,
		TotalExpenses:  totals.Total,
		BudgetLeft:     decimal.Max(decimal.Zero, amount.Sub(totals.Total)),
		ExpenseCount:   totals.Count,
		Categories:     categoryTotals(categories, totals.Total),
		RecentExpenses: recent,
	}

	return &GetBudgetSummaryOutput{
		Summary:     summary,
		PeriodLabel: PeriodLabel(today),
	}, nil
}

func categoryTotals(raw []RawCategoryTotal, total decimal.Decimal) []entity.CategoryTotal {
	result := make([]entity.CategoryTotal, 0, len(raw))
	for _, r := range raw {
		var percentage float64
		if !total.IsZero() {
			percentage, _ = r.Amount.Mul(decimal.NewFromInt(100)).Div(total).Round(2).Float64()
		}

		name := entity.UncategorizedLabel
		if r.Category != nil && *r.Category != "" {
			name = *r.Category
		}

		result = append(result, entity.CategoryTotal{
			Category:     name,
			Amount:       r.Amount,
			Percentage:   percentage,
			ExpenseCount: r.ExpenseCount,
		})
	}
	return result
}
