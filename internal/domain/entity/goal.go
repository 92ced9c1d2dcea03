package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings target stored for a user.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal // May exceed TargetAmount
	TargetDate    time.Time       // Calendar date, may be in the past
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity with nothing saved yet.
func NewSavingsGoal(userID uuid.UUID, title string, targetAmount decimal.Decimal, targetDate time.Time) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// GoalProjection is derived from a goal, a budget and today's date. It is never stored.
type GoalProjection struct {
	MonthsRemaining        int
	MonthlySavingsNeeded   decimal.Decimal
	MonthlySpendingCeiling decimal.Decimal
	ProgressPercent        decimal.Decimal
	BudgetInsufficient     bool
}

// ProjectedGoal pairs a stored goal with its projection.
type ProjectedGoal struct {
	Goal       *SavingsGoal
	Projection GoalProjection
}
