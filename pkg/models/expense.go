package models

import (
	"crypto/rand"
	"encoding/hex"
)

// Expense is a single spending record owned by one user's ledger.
type Expense struct {
	ID          string   `json:"id"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

// NewExpense builds an expense with a fresh id. The id embeds the
// expense date followed by a random hex suffix, so ids stay unique
// within a ledger and sort roughly by date.
func NewExpense(amount float64, category Category, description, date string) *Expense {
	return &Expense{
		ID:          date + "_" + randomHex(8),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
}

// ExpensePatch carries optional field overrides for an update. Nil
// fields are left unchanged, so "leave as is" and "set to zero value"
// stay distinguishable.
type ExpensePatch struct {
	Amount      *float64
	Category    *Category
	Description *string
	Date        *string
}

func randomHex(n int) string {
	b := make([]byte, n)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
