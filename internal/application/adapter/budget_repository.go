package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-dashboard/backend/internal/domain/entity"
)

// BudgetRepository defines the read operations on stored monthly budgets.
type BudgetRepository interface {
	// FindByUserID retrieves the budget of a user. It returns nil without an
	// error when the user never stored one.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Budget, error)
}
