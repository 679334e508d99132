package ledger

import (
	"math"
	"time"

	"spendwise/pkg/models"
)

// SetBudget creates or overwrites the budget for a (category, period)
// pair. An overwrite keeps the budget's position in the set.
func (l *Ledger) SetBudget(category models.Category, amount float64, period models.Period) error {
	if amount < 0 {
		return ErrNegativeBudget
	}
	b := models.NewBudget(category, amount, period)
	replaced := false
	for i, existing := range l.budgets {
		if existing.ID == b.ID {
			l.budgets[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		l.budgets = append(l.budgets, b)
	}
	if err := l.save(); err != nil {
		return err
	}
	l.logger.Debug("set budget", "category", category, "period", period, "amount", amount)
	return nil
}

// DeleteBudget removes the budget for one (category, period) pair, or
// every period for the category when period is empty.
func (l *Ledger) DeleteBudget(category models.Category, period models.Period) error {
	kept := l.budgets[:0]
	removed := 0
	for _, b := range l.budgets {
		match := b.Category == category && (period == "" || b.Period == period)
		if match {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	if removed == 0 {
		return ErrBudgetNotFound
	}
	l.budgets = kept
	return l.save()
}

// Budgets returns a copy of the budget set in insertion order.
func (l *Ledger) Budgets() []*models.Budget {
	out := make([]*models.Budget, len(l.budgets))
	copy(out, l.budgets)
	return out
}

// BudgetCount returns the number of stored budgets.
func (l *Ledger) BudgetCount() int {
	return len(l.budgets)
}

// BudgetStatus evaluates the budget for a pair against spending in the
// period's current window.
func (l *Ledger) BudgetStatus(category models.Category, period models.Period) models.BudgetStatus {
	return l.BudgetStatusAt(category, period, l.now())
}

// BudgetStatusAt is BudgetStatus with an explicit reference time, so
// window math stays checkable.
func (l *Ledger) BudgetStatusAt(category models.Category, period models.Period, now time.Time) models.BudgetStatus {
	var budget *models.Budget
	id := models.BudgetID(category, period)
	for _, b := range l.budgets {
		if b.ID == id {
			budget = b
			break
		}
	}
	if budget == nil {
		return models.BudgetStatus{}
	}

	start, end := period.Window(now)
	spent := l.TotalSpent(Filter{Category: &category, Start: start, End: end})

	var pct float64
	if budget.Amount > 0 {
		pct = math.Round(spent/budget.Amount*100*100) / 100
	}
	return models.BudgetStatus{
		HasBudget:    true,
		BudgetAmount: budget.Amount,
		Spent:        spent,
		Remaining:    budget.Amount - spent,
		PercentUsed:  pct,
		OverBudget:   spent > budget.Amount,
		Period:       period,
	}
}

// BudgetWithStatus pairs a stored budget with its current status.
type BudgetWithStatus struct {
	Category models.Category
	Period   models.Period
	Status   models.BudgetStatus
}

// AllBudgetStatuses evaluates every stored budget under its own period
// window.
func (l *Ledger) AllBudgetStatuses() []BudgetWithStatus {
	now := l.now()
	out := make([]BudgetWithStatus, 0, len(l.budgets))
	for _, b := range l.budgets {
		out = append(out, BudgetWithStatus{
			Category: b.Category,
			Period:   b.Period,
			Status:   l.BudgetStatusAt(b.Category, b.Period, now),
		})
	}
	return out
}
