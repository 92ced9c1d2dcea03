package goalprojection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/domain/entity"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
	"github.com/budget-dashboard/backend/internal/domain/planner"
)

// ListProjectionsInput represents the input for projecting stored goals.
type ListProjectionsInput struct {
	UserID uuid.UUID
}

// ListProjectionsOutput represents the projections of every stored goal of a user.
type ListProjectionsOutput struct {
	Goals         []*entity.ProjectedGoal
	MonthlyBudget decimal.Decimal
}

// ListProjectionsUseCase projects all stored savings goals of a user against the stored budget.
type ListProjectionsUseCase struct {
	goalRepo   adapter.SavingsGoalRepository
	budgetRepo adapter.BudgetRepository
	now        func() time.Time
}

// NewListProjectionsUseCase creates a new ListProjectionsUseCase instance.
func NewListProjectionsUseCase(goalRepo adapter.SavingsGoalRepository, budgetRepo adapter.BudgetRepository, now func() time.Time) *ListProjectionsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ListProjectionsUseCase{
		goalRepo:   goalRepo,
		budgetRepo: budgetRepo,
		now:        now,
	}
}

// Execute loads and projects the goals. Goals that cannot be projected are
// logged and left out of the result.
func (uc *ListProjectionsUseCase) Execute(ctx context.Context, input ListProjectionsInput) (*ListProjectionsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalInternalError,
			"failed to list savings goals",
			fmt.Errorf("failed to find goals: %w", err),
		)
	}

	budget, err := storedBudget(ctx, uc.budgetRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	today := uc.now()
	projected := make([]*entity.ProjectedGoal, 0, len(goals))
	for _, goal := range goals {
		projection, err := planner.ProjectGoal(goal, today, budget)
		if err != nil {
			if errors.Is(err, domainerror.ErrInvalidGoal) {
				slog.Warn("Skipping savings goal that cannot be projected",
					"goal_id", goal.ID,
					"error", err,
				)
				continue
			}
			return nil, err
		}
		projected = append(projected, &entity.ProjectedGoal{Goal: goal, Projection: projection})
	}

	return &ListProjectionsOutput{
		Goals:         projected,
		MonthlyBudget: budget,
	}, nil
}
