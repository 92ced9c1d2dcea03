// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/domain/entity"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
	"github.com/budget-dashboard/backend/internal/integration/persistence/model"
)

// savingsGoalRepository implements the adapter.SavingsGoalRepository interface.
type savingsGoalRepository struct {
	db *gorm.DB
}

// NewSavingsGoalRepository creates a new savings goal repository instance.
func NewSavingsGoalRepository(db *gorm.DB) adapter.SavingsGoalRepository {
	return &savingsGoalRepository{
		db: db,
	}
}

// FindByID retrieves a savings goal by its ID.
func (r *savingsGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all savings goals for a given user, newest first.
func (r *savingsGoalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var goalModels []model.SavingsGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}
