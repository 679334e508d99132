package report

import (
	"math"

	"spendwise/pkg/ledger"
	"spendwise/pkg/models"
)

// Stats summarizes a user's whole ledger, unfiltered.
type Stats struct {
	TotalExpenses     int
	TotalSpent        float64
	AverageExpense    float64
	MostUsedCategory  string
	MostSpentCategory string
	ActiveBudgets     int
	FirstExpenseDate  string
	LastExpenseDate   string
}

// Statistics computes whole-ledger statistics. Category ties resolve to
// the category first seen in expense order. Date extremes compare the
// YYYY-MM-DD strings directly, which orders chronologically.
func (e *Engine) Statistics() Stats {
	expenses := e.ledger.Expenses()

	stats := Stats{
		TotalExpenses:     len(expenses),
		TotalSpent:        round2(e.ledger.TotalSpent(ledger.Filter{})),
		MostUsedCategory:  "None",
		MostSpentCategory: "None",
		ActiveBudgets:     e.ledger.BudgetCount(),
		FirstExpenseDate:  NoExpenses,
		LastExpenseDate:   NoExpenses,
	}
	if len(expenses) == 0 {
		return stats
	}
	stats.AverageExpense = round2(stats.TotalSpent / float64(len(expenses)))

	counts := make(map[models.Category]int)
	amounts := make(map[models.Category]float64)
	var seen []models.Category
	first, last := expenses[0].Date, expenses[0].Date
	for _, exp := range expenses {
		if _, ok := counts[exp.Category]; !ok {
			seen = append(seen, exp.Category)
		}
		counts[exp.Category]++
		amounts[exp.Category] += exp.Amount
		if exp.Date < first {
			first = exp.Date
		}
		if exp.Date > last {
			last = exp.Date
		}
	}

	mostUsed, mostSpent := seen[0], seen[0]
	for _, cat := range seen[1:] {
		if counts[cat] > counts[mostUsed] {
			mostUsed = cat
		}
		if amounts[cat] > amounts[mostSpent] {
			mostSpent = cat
		}
	}
	stats.MostUsedCategory = mostUsed.String()
	stats.MostSpentCategory = mostSpent.String()
	stats.FirstExpenseDate = first
	stats.LastExpenseDate = last
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
