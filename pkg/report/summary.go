// Package report is the read-only aggregation layer: summaries,
// insights, and statistics computed from a ledger. It holds no state of
// its own beyond a clock.
package report

import (
	"time"

	"spendwise/pkg/ledger"
	"spendwise/pkg/models"
)

// Engine computes aggregates over one user's ledger.
type Engine struct {
	ledger *ledger.Ledger
	now    func() time.Time
}

// NewEngine returns an engine over the given ledger.
func NewEngine(l *ledger.Ledger) *Engine {
	return &Engine{ledger: l, now: time.Now}
}

// CategorySummary is one category's slice of a spending summary.
type CategorySummary struct {
	Spent          float64
	PercentOfTotal float64
	Budget         models.BudgetStatus
}

// Summary is a per-category spending breakdown over a date range.
type Summary struct {
	TotalSpent float64
	Start      string
	End        string
	Categories map[models.Category]CategorySummary
}

// Summary computes spending per category over [start, end], defaulting
// to the trailing 30 days ending today. Each category carries a budget
// status; when a category has budgets for several periods the monthly
// one wins, otherwise the first stored one is used. That tie-break is
// arbitrary but deliberate: it matches observable behavior users
// already rely on.
func (e *Engine) Summary(start, end string) Summary {
	now := e.now()
	if start == "" {
		start = now.AddDate(0, 0, -30).Format(models.DateLayout)
	}
	if end == "" {
		end = now.Format(models.DateLayout)
	}

	totals := e.ledger.TotalsByCategory(start, end)
	var total float64
	for _, v := range totals {
		total += v
	}

	budgets := e.ledger.Budgets()
	summary := Summary{
		TotalSpent: total,
		Start:      start,
		End:        end,
		Categories: make(map[models.Category]CategorySummary, len(models.Categories)),
	}
	for _, cat := range models.Categories {
		spent := totals[cat]

		var status models.BudgetStatus
		if preferred := preferredBudget(budgets, cat); preferred != nil {
			status = e.ledger.BudgetStatusAt(cat, preferred.Period, now)
		}

		var pct float64
		if total > 0 {
			pct = spent / total * 100
		}
		summary.Categories[cat] = CategorySummary{
			Spent:          spent,
			PercentOfTotal: pct,
			Budget:         status,
		}
	}
	return summary
}

// preferredBudget picks the monthly budget for a category when one
// exists, else the first stored budget for that category.
func preferredBudget(budgets []*models.Budget, cat models.Category) *models.Budget {
	var first *models.Budget
	for _, b := range budgets {
		if b.Category != cat {
			continue
		}
		if b.Period == models.Monthly {
			return b
		}
		if first == nil {
			first = b
		}
	}
	return first
}
