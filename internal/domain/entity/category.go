package entity

import "github.com/shopspring/decimal"

// UncategorizedLabel is used for expenses stored without a category.
const UncategorizedLabel = "Uncategorized"

// CategoryTotal is the amount spent in one category over a period.
type CategoryTotal struct {
	Category     string
	Amount       decimal.Decimal
	Percentage   float64
	ExpenseCount int
}
