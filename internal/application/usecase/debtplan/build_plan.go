// Package debtplan contains debt payoff plan use cases.
package debtplan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/domain/entity"
	domainerror "github.com/budget-dashboard/backend/internal/domain/error"
	"github.com/budget-dashboard/backend/internal/domain/planner"
)

const (
	// DefaultMaxDebts is the number of debts accepted in one plan when no limit is configured.
	DefaultMaxDebts = 50

	cacheKeyPrefix = "debt-plan:"
)

// DebtInput is a single debt as entered by the user. ID is optional.
type DebtInput struct {
	ID         string
	Name       string
	Balance    decimal.Decimal
	AnnualRate decimal.Decimal
	MinPayment decimal.Decimal
}

// BuildPlanInput represents the input for building a payoff plan.
type BuildPlanInput struct {
	Debts        []DebtInput
	ExtraPayment decimal.Decimal
}

// BuildPlanOutput represents the output of building a payoff plan.
type BuildPlanOutput struct {
	Plan   *entity.PaymentPlan
	Cached bool
}

// BuildPlanUseCase handles avalanche payoff plan computation.
type BuildPlanUseCase struct {
	cache     adapter.PlanCache
	explainer adapter.PlanExplainer
	maxDebts  int
	cacheTTL  time.Duration
}

// NewBuildPlanUseCase creates a new BuildPlanUseCase instance.
// cache and explainer may be nil.
func NewBuildPlanUseCase(cache adapter.PlanCache, explainer adapter.PlanExplainer, maxDebts int, cacheTTL time.Duration) *BuildPlanUseCase {
	if maxDebts <= 0 {
		maxDebts = DefaultMaxDebts
	}
	return &BuildPlanUseCase{
		cache:     cache,
		explainer: explainer,
		maxDebts:  maxDebts,
		cacheTTL:  cacheTTL,
	}
}

// Execute builds the plan, serving it from the cache when the same input was seen before.
func (uc *BuildPlanUseCase) Execute(ctx context.Context, input BuildPlanInput) (*BuildPlanOutput, error) {
	if len(input.Debts) > uc.maxDebts {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeTooManyDebts,
			fmt.Sprintf("a plan accepts at most %d debts", uc.maxDebts),
			domainerror.ErrTooManyDebts,
		)
	}

	debts, err := toDebts(input.Debts)
	if err != nil {
		return nil, err
	}

	key := cacheKey(debts, input.ExtraPayment)
	if uc.cache != nil {
		cached, found, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("Failed to read payment plan from cache", "error", err)
		} else if found {
			return &BuildPlanOutput{Plan: cached, Cached: true}, nil
		}
	}

	entries, err := planner.BuildPlan(debts, input.ExtraPayment)
	if err != nil {
		return nil, err
	}

	plan := &entity.PaymentPlan{
		Entries: entries,
		Summary: planner.Summarize(debts, entries),
	}
	plan.Explanation = uc.explain(ctx, plan, input.ExtraPayment)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, plan, uc.cacheTTL); err != nil {
			slog.Warn("Failed to store payment plan in cache", "error", err)
		}
	}

	return &BuildPlanOutput{Plan: plan}, nil
}

func (uc *BuildPlanUseCase) explain(ctx context.Context, plan *entity.PaymentPlan, extra decimal.Decimal) string {
	if uc.explainer == nil || !uc.explainer.IsAvailable() {
		return FallbackExplanation(plan)
	}

	explanation, err := uc.explainer.Explain(ctx, &adapter.PlanExplanationRequest{
		Entries:      plan.Entries,
		Summary:      plan.Summary,
		ExtraPayment: extra.StringFixed(2),
	})
	if err != nil || strings.TrimSpace(explanation) == "" {
		slog.Warn("Plan explainer unavailable, using fallback explanation", "error", err)
		return FallbackExplanation(plan)
	}
	return explanation
}

// FallbackExplanation describes a plan without calling any external service.
func FallbackExplanation(plan *entity.PaymentPlan) string {
	if len(plan.Entries) == 0 {
		return ""
	}

	first := plan.Entries[0]
	return fmt.Sprintf(
		"Using the avalanche method, put $%s a month toward %s first because it has the highest interest rate. "+
			"Across all debts you will pay $%s in interest, and each debt takes %.1f months (%.1f years) on average to pay off.",
		first.MonthlyPayment.StringFixed(2),
		first.DebtName,
		plan.Summary.TotalInterest.StringFixed(2),
		plan.Summary.AverageMonths,
		plan.Summary.AverageMonths/12.0,
	)
}

// toDebts validates identifiers and fills in the ones left blank. A blank ID
// is derived from the debt's position and name so identical requests map to
// identical plans.
func toDebts(inputs []DebtInput) ([]entity.Debt, error) {
	debts := make([]entity.Debt, len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	for i, in := range inputs {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%d:%s", i, in.Name))).String()
		}
		if _, exists := seen[id]; exists {
			return nil, domainerror.NewDebtError(domainerror.ErrCodeDuplicateDebtID, in.Name, "debt id "+id+" is used more than once", domainerror.ErrDuplicateDebtID)
		}
		seen[id] = struct{}{}

		debts[i] = entity.Debt{
			ID:         id,
			Name:       in.Name,
			Balance:    in.Balance,
			AnnualRate: in.AnnualRate,
			MinPayment: in.MinPayment,
		}
	}

	return debts, nil
}

func cacheKey(debts []entity.Debt, extra decimal.Decimal) string {
	h := sha256.New()
	for _, d := range debts {
		fmt.Fprintf(h, "%s|%s|%s|%s|%s\n", d.ID, d.Name, d.Balance.String(), d.AnnualRate.String(), d.MinPayment.String())
	}
	fmt.Fprintf(h, "extra|%s", extra.String())
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}
