package models

import "fmt"

// Budget is a spending limit for one (category, period) pair. The id
// encodes the pair, which makes it the natural composite key: setting a
// budget for an existing pair overwrites it.
type Budget struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Amount   float64  `json:"amount"`
	Period   Period   `json:"period"`
}

// BudgetID returns the storage key for a (category, period) pair.
func BudgetID(category Category, period Period) string {
	return fmt.Sprintf("budget_%s_%s", category, period)
}

// NewBudget builds a budget keyed by its category and period.
func NewBudget(category Category, amount float64, period Period) *Budget {
	return &Budget{
		ID:       BudgetID(category, period),
		Category: category,
		Amount:   amount,
		Period:   period,
	}
}

// BudgetStatus reports how a budget stands against spending inside its
// current period window.
type BudgetStatus struct {
	HasBudget    bool
	BudgetAmount float64
	Spent        float64
	Remaining    float64
	PercentUsed  float64
	OverBudget   bool
	Period       Period
}
