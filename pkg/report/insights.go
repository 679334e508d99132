package report

import (
	"fmt"

	"spendwise/pkg/models"
)

// NoExpenses is the sentinel reported when there is nothing to rank.
const NoExpenses = "No expenses"

// savingsTips is appended to every insights result as-is.
var savingsTips = []string{
	"Track every expense, no matter how small",
	"Review your budgets monthly and adjust as needed",
	"Set aside 10-20% of income for savings",
	"Use the 50/30/20 rule: 50% needs, 30% wants, 20% savings",
}

// Insights bundles spending highlights and recommendations for the
// trailing 30 days.
type Insights struct {
	TotalSpending   float64
	TopCategory     string
	BudgetAlerts    []string
	Recommendations []string
	SavingsTips     []string
}

// Insights builds on the default 30-day summary: the top spending
// category, an alert per over-limit budget (each evaluated under its
// own period window), threshold-based recommendations, and the static
// savings tips.
func (e *Engine) Insights() Insights {
	summary := e.Summary("", "")
	now := e.now()

	top := NoExpenses
	var topAmount float64
	for _, cat := range models.Categories {
		if spent := summary.Categories[cat].Spent; spent > topAmount {
			top = cat.String()
			topAmount = spent
		}
	}

	out := Insights{
		TotalSpending: summary.TotalSpent,
		TopCategory:   top,
		SavingsTips:   savingsTips,
	}

	for _, b := range e.ledger.Budgets() {
		status := e.ledger.BudgetStatusAt(b.Category, b.Period, now)
		if status.HasBudget && status.OverBudget {
			out.BudgetAlerts = append(out.BudgetAlerts, fmt.Sprintf(
				"Over %s budget in %s: $%.2f / $%.2f",
				b.Period, b.Category, status.Spent, status.BudgetAmount))
		}
	}

	if summary.TotalSpent > 0 {
		if food := summary.Categories[models.Food].Spent; food > summary.TotalSpent*0.3 {
			out.Recommendations = append(out.Recommendations, fmt.Sprintf(
				"Consider meal planning to reduce food expenses (currently %.1f%% of total spending)",
				food/summary.TotalSpent*100))
		}
		if ent := summary.Categories[models.Entertainment].Spent; ent > summary.TotalSpent*0.2 {
			out.Recommendations = append(out.Recommendations, fmt.Sprintf(
				"Look for free entertainment options to reduce costs (%.1f%% of total spending)",
				ent/summary.TotalSpent*100))
		}
		if e.ledger.BudgetCount() == 0 {
			out.Recommendations = append(out.Recommendations,
				"Set up budgets for your main spending categories to better track your expenses")
		}
	}

	return out
}
