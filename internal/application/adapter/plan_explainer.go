package adapter

import (
	"context"

	"github.com/budget-dashboard/backend/internal/domain/entity"
)

// PlanExplanationRequest carries a computed plan to be described in plain language.
type PlanExplanationRequest struct {
	Entries      []entity.PaymentPlanEntry
	Summary      entity.PlanSummary
	ExtraPayment string
}

// PlanExplainer defines the interface for describing a payment plan to the user.
type PlanExplainer interface {
	// Explain returns a short plain-language explanation of the plan.
	Explain(ctx context.Context, request *PlanExplanationRequest) (string, error)

	// IsAvailable checks if the explainer is properly configured.
	IsAvailable() bool
}
