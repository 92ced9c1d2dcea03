// Package cli implements the offline planner command line.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Amount is a money value that accepts TOML strings, integers and floats.
type Amount struct {
	Value decimal.Decimal
	Set   bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (a *Amount) UnmarshalTOML(value interface{}) error {
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid amount %q", v)
		}
		a.Value = d
	case int64:
		a.Value = decimal.NewFromInt(v)
	case float64:
		a.Value = decimal.NewFromFloat(v)
	default:
		return fmt.Errorf("invalid amount of type %T", value)
	}
	a.Set = true
	return nil
}

// Date is a calendar date that accepts TOML local dates and YYYY-MM-DD strings.
type Date struct {
	time.Time
}

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Date) UnmarshalTOML(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
	case string:
		t, err := time.Parse(dateLayout, strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
		}
		d.Time = t
	default:
		return fmt.Errorf("invalid date of type %T", value)
	}
	return nil
}

// DebtEntry is one [[debts]] table.
type DebtEntry struct {
	ID         string `toml:"id"`
	Name       string `toml:"name"`
	Balance    Amount `toml:"balance"`
	Rate       Amount `toml:"rate"`
	MinPayment Amount `toml:"min_payment"`
}

// GoalEntry is one [[goals]] table.
type GoalEntry struct {
	Title         string `toml:"title"`
	TargetAmount  Amount `toml:"target_amount"`
	CurrentAmount Amount `toml:"current_amount"`
	TargetDate    Date   `toml:"target_date"`
}

// PlanFile is the TOML input read by the plan and goal commands.
type PlanFile struct {
	ExtraPayment  Amount      `toml:"extra_payment"`
	MonthlyBudget Amount      `toml:"monthly_budget"`
	Debts         []DebtEntry `toml:"debts"`
	Goals         []GoalEntry `toml:"goals"`
}

// ParsePlanFile decodes TOML content. Unknown keys are rejected.
func ParsePlanFile(data string) (*PlanFile, error) {
	var file PlanFile
	meta, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys in plan file: %s", strings.Join(keys, ", "))
	}

	for i, debt := range file.Debts {
		if strings.TrimSpace(debt.Name) == "" {
			return nil, fmt.Errorf("debts[%d]: name is required", i)
		}
		if !debt.Balance.Set || !debt.Rate.Set || !debt.MinPayment.Set {
			return nil, fmt.Errorf("debt %q: balance, rate and min_payment are required", debt.Name)
		}
	}
	for i, goal := range file.Goals {
		if strings.TrimSpace(goal.Title) == "" {
			return nil, fmt.Errorf("goals[%d]: title is required", i)
		}
		if !goal.TargetAmount.Set || goal.TargetDate.IsZero() {
			return nil, fmt.Errorf("goal %q: target_amount and target_date are required", goal.Title)
		}
	}

	return &file, nil
}

// LoadPlanFile reads and decodes the TOML file at path.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return ParsePlanFile(string(data))
}
