// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-dashboard/backend/internal/domain/entity"
)

// SavingsGoalRepository defines the read operations on stored savings goals.
type SavingsGoalRepository interface {
	// FindByID retrieves a savings goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindByUserID retrieves all savings goals of a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)
}
