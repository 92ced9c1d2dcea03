package goalprojection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-dashboard/backend/internal/application/adapter"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
	"github.com/budget-dashboard/backend/internal/domain/planner"
)

// GetProjectionInput represents the input for projecting one stored goal.
type GetProjectionInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetProjectionUseCase projects a single stored savings goal.
type GetProjectionUseCase struct {
	goalRepo   adapter.SavingsGoalRepository
	budgetRepo adapter.BudgetRepository
	now        func() time.Time
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase instance.
func NewGetProjectionUseCase(goalRepo adapter.SavingsGoalRepository, budgetRepo adapter.BudgetRepository, now func() time.Time) *GetProjectionUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetProjectionUseCase{
		goalRepo:   goalRepo,
		budgetRepo: budgetRepo,
		now:        now,
	}
}

// Execute loads and projects the goal. Goals owned by another user are reported as not found.
func (uc *GetProjectionUseCase) Execute(ctx context.Context, input GetProjectionInput) (*ProjectGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "savings goal not found", domainerror.ErrGoalNotFound)
		}
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalInternalError,
			"failed to load savings goal",
			fmt.Errorf("failed to find goal: %w", err),
		)
	}
	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "savings goal not found", domainerror.ErrGoalNotFound)
	}

	budget, err := storedBudget(ctx, uc.budgetRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	projection, err := planner.ProjectGoal(goal, uc.now(), budget)
	if err != nil {
		return nil, err
	}

	return &ProjectGoalOutput{
		Goal:          goal,
		Projection:    projection,
		MonthlyBudget: budget,
	}, nil
}
