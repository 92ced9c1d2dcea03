// Package goalprojection contains savings goal projection use cases.
package goalprojection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/domain/entity"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
	"github.com/budget-dashboard/backend/internal/domain/planner"
)

// ProjectGoalInput represents the input for projecting an unsaved goal.
type ProjectGoalInput struct {
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	MonthlyBudget *decimal.Decimal // Optional, defaults to the stored budget
}

// ProjectGoalOutput represents the output of a goal projection.
type ProjectGoalOutput struct {
	Goal          *entity.SavingsGoal
	Projection    entity.GoalProjection
	MonthlyBudget decimal.Decimal
}

// ProjectGoalUseCase projects a goal supplied in the request.
type ProjectGoalUseCase struct {
	budgetRepo adapter.BudgetRepository
	now        func() time.Time
}

// NewProjectGoalUseCase creates a new ProjectGoalUseCase instance.
func NewProjectGoalUseCase(budgetRepo adapter.BudgetRepository, now func() time.Time) *ProjectGoalUseCase {
	if now == nil {
		now = time.Now
	}
	return &ProjectGoalUseCase{
		budgetRepo: budgetRepo,
		now:        now,
	}
}

// Execute performs the projection.
func (uc *ProjectGoalUseCase) Execute(ctx context.Context, input ProjectGoalInput) (*ProjectGoalOutput, error) {
	goal := &entity.SavingsGoal{
		UserID:        input.UserID,
		Title:         input.Title,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		TargetDate:    input.TargetDate,
	}

	var budget decimal.Decimal
	if input.MonthlyBudget != nil {
		budget = *input.MonthlyBudget
	} else {
		stored, err := storedBudget(ctx, uc.budgetRepo, input.UserID)
		if err != nil {
			return nil, err
		}
		budget = stored
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

// storedBudget returns the user's stored monthly budget, or zero when none exists.
func storedBudget(ctx context.Context, repo adapter.BudgetRepository, userID uuid.UUID) (decimal.Decimal, error) {
	if repo == nil {
		return decimal.Zero, nil
	}

	budget, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, domainerror.NewGoalError(
			domainerror.ErrCodeGoalInternalError,
			"failed to load monthly budget",
			fmt.Errorf("failed to find budget: %w", err),
		)
	}
	if budget == nil {
		return decimal.Zero, nil
	}
	return budget.Amount, nil
}
