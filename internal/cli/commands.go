package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budget-dashboard/backend/config"
	"github.com/budget-dashboard/backend/internal/application/adapter"
	"github.com/budget-dashboard/backend/internal/application/usecase/debtplan"
	"github.com/budget-dashboard/backend/internal/application/usecase/goalprojection"
	"github.com/budget-dashboard/backend/internal/integration/adapters"
	"github.com/budget-dashboard/backend/internal/integration/entrypoint/dto"
)

// GoalReport is the output of the goal command.
type GoalReport struct {
	Today         string                       `json:"today"`
	MonthlyBudget string                       `json:"monthly_budget"`
	Goals         []dto.GoalProjectionResponse `json:"goals"`
}

// Execute runs the planner command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand(os.Stdout, time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the planner command tree writing results to out.
func NewRootCommand(out io.Writer, now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:          "planner",
		Short:        "Debt payoff and savings goal planner",
		Long:         "Compute avalanche debt payoff plans and savings goal projections from a TOML file.",
		SilenceUsage: true,
	}
	root.SetOut(out)

	root.AddCommand(newPlanCommand(out), newGoalCommand(out, now))
	return root
}

func newPlanCommand(out io.Writer) *cobra.Command {
	var (
		file     string
		extra    string
		explain  bool
		maxDebts int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build an avalanche payoff plan for the debts in a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			planFile, err := LoadPlanFile(file)
			if err != nil {
				return err
			}

			input := debtplan.BuildPlanInput{
				Debts:        make([]debtplan.DebtInput, len(planFile.Debts)),
				ExtraPayment: planFile.ExtraPayment.Value,
			}
			for i, d := range planFile.Debts {
				input.Debts[i] = debtplan.DebtInput{
					ID:         d.ID,
					Name:       d.Name,
					Balance:    d.Balance.Value,
					AnnualRate: d.Rate.Value,
					MinPayment: d.MinPayment.Value,
				}
			}
			if cmd.Flags().Changed("extra") {
				override, err := decimal.NewFromString(extra)
				if err != nil {
					return fmt.Errorf("invalid --extra value %q", extra)
				}
				input.ExtraPayment = override
			}

			var explainer adapter.PlanExplainer
			if explain {
				cfg := config.Load()
				explainer = adapters.NewGeminiExplainer(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, cfg.AI.Timeout)
			}

			output, err := debtplan.NewBuildPlanUseCase(nil, explainer, maxDebts, 0).Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			return writeJSON(out, dto.ToDebtPlanResponse(output))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML file with [[debts]]")
	cmd.Flags().StringVar(&extra, "extra", "", "Extra monthly payment, overrides extra_payment from the file")
	cmd.Flags().BoolVar(&explain, "explain", false, "Ask Gemini for the explanation (needs GEMINI_API_KEY)")
	cmd.Flags().IntVar(&maxDebts, "max-debts", debtplan.DefaultMaxDebts, "Maximum number of debts in one plan")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newGoalCommand(out io.Writer, now func() time.Time) *cobra.Command {
	var (
		file   string
		today  string
		budget string
	)

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Project the savings goals in a file against a monthly budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			planFile, err := LoadPlanFile(file)
			if err != nil {
				return err
			}

			asOf := now()
			if today != "" {
				asOf, err = time.Parse(dateLayout, today)
				if err != nil {
					return fmt.Errorf("invalid --today value %q, expected YYYY-MM-DD", today)
				}
			}

			monthlyBudget := planFile.MonthlyBudget.Value
			if budget != "" {
				monthlyBudget, err = decimal.NewFromString(budget)
				if err != nil {
					return fmt.Errorf("invalid --budget value %q", budget)
				}
			}

			report, err := projectGoals(cmd.Context(), planFile.Goals, asOf, monthlyBudget)
			if err != nil {
				return err
			}
			return writeJSON(out, report)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML file with [[goals]]")
	cmd.Flags().StringVar(&today, "today", "", "Date to project from (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&budget, "budget", "", "Monthly budget, overrides monthly_budget from the file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func projectGoals(ctx context.Context, goals []GoalEntry, today time.Time, budget decimal.Decimal) (*GoalReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	useCase := goalprojection.NewProjectGoalUseCase(nil, func() time.Time { return today })

	report := &GoalReport{
		Today:         today.Format(dateLayout),
		MonthlyBudget: budget.StringFixed(2),
		Goals:         make([]dto.GoalProjectionResponse, 0, len(goals)),
	}

	for _, g := range goals {
		output, err := useCase.Execute(ctx, goalprojection.ProjectGoalInput{
			UserID:        uuid.Nil,
			Title:         g.Title,
			TargetAmount:  g.TargetAmount.Value,
			CurrentAmount: g.CurrentAmount.Value,
			TargetDate:    g.TargetDate.Time,
			MonthlyBudget: &budget,
		})
		if err != nil {
			return nil, err
		}
		report.Goals = append(report.Goals, dto.ToGoalProjectionResponse(output))
	}

	return report, nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
