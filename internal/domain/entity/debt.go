// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt represents a single obligation entered for a payoff calculation.
// Debts live only for the duration of one plan computation and are never stored.
type Debt struct {
	ID         string
	Name       string
	Balance    decimal.Decimal
	AnnualRate decimal.Decimal // Percent, e.g. 18.99
	MinPayment decimal.Decimal
}

// NewDebt creates a new Debt with a generated identifier.
func NewDebt(name string, balance, annualRate, minPayment decimal.Decimal) *Debt {
	return &Debt{
		ID:         uuid.NewString(),
		Name:       name,
		Balance:    balance,
		AnnualRate: annualRate,
		MinPayment: minPayment,
	}
}
