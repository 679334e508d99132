// Package ledger owns one user's expenses and budgets. Both collections
// live in a single JSON document on disk that is rewritten after every
// mutation.
package ledger

import (
	"errors"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"spendwise/pkg/models"
)

var (
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrNegativeBudget = errors.New("budget amount cannot be negative")
	ErrNotFound       = errors.New("expense not found")
	ErrBudgetNotFound = errors.New("budget not found")
)

// SortKey selects the ordering for All.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"
)

// Ledger is the in-memory working copy of one user's data file.
// Budgets are kept as a slice so insertion order survives, which the
// summary tie-break depends on.
type Ledger struct {
	username string
	path     string
	expenses []*models.Expense
	budgets  []*models.Budget
	logger   *log.Logger
	now      func() time.Time
}

// New creates the user's data directory if needed and loads the data
// file. A corrupt file resets both collections to empty in memory; the
// on-disk file is left alone until the next mutation.
func New(username, dataDir string, logger *log.Logger) (*Ledger, error) {
	l := &Ledger{
		username: username,
		logger:   logger,
		now:      time.Now,
	}
	if err := l.load(username, dataDir); err != nil {
		return nil, err
	}
	return l, nil
}

// Username returns the owner of this ledger.
func (l *Ledger) Username() string {
	return l.username
}

// Add appends a new expense and persists. An empty date defaults to
// today. Returns the generated expense id.
func (l *Ledger) Add(amount float64, category models.Category, description, date string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if date == "" {
		date = l.now().Format(models.DateLayout)
	}
	exp := models.NewExpense(amount, category, description, date)
	l.expenses = append(l.expenses, exp)
	if err := l.save(); err != nil {
		return "", err
	}
	l.logger.Debug("added expense", "id", exp.ID, "category", category, "amount", amount)
	return exp.ID, nil
}

// Update applies a patch to an existing expense. Nil patch fields leave
// the current value in place.
func (l *Ledger) Update(id string, patch models.ExpensePatch) error {
	exp := l.find(id)
	if exp == nil {
		return ErrNotFound
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return ErrInvalidAmount
	}
	if patch.Amount != nil {
		exp.Amount = *patch.Amount
	}
	if patch.Category != nil {
		exp.Category = *patch.Category
	}
	if patch.Description != nil {
		exp.Description = *patch.Description
	}
	if patch.Date != nil {
		exp.Date = *patch.Date
	}
	return l.save()
}

// Remove deletes an expense by id.
func (l *Ledger) Remove(id string) error {
	for i, exp := range l.expenses {
		if exp.ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return l.save()
		}
	}
	return ErrNotFound
}

// Get looks up an expense by id.
func (l *Ledger) Get(id string) (*models.Expense, bool) {
	exp := l.find(id)
	return exp, exp != nil
}

// ByCategory returns every expense in the given category.
func (l *Ledger) ByCategory(category models.Category) []*models.Expense {
	var out []*models.Expense
	for _, exp := range l.expenses {
		if exp.Category == category {
			out = append(out, exp)
		}
	}
	return out
}

// ByDateRange returns expenses with start <= date <= end. Unparsable
// bounds or record dates fail open: the result is simply empty or the
// record is skipped, never an error.
func (l *Ledger) ByDateRange(start, end string) []*models.Expense {
	startT, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return nil
	}
	endT, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return nil
	}
	var out []*models.Expense
	for _, exp := range l.expenses {
		d, err := time.Parse(models.DateLayout, exp.Date)
		if err != nil {
			continue
		}
		if !d.Before(startT) && !d.After(endT) {
			out = append(out, exp)
		}
	}
	return out
}

// All returns a sorted copy of every expense.
func (l *Ledger) All(key SortKey, descending bool) []*models.Expense {
	out := make([]*models.Expense, len(l.expenses))
	copy(out, l.expenses)

	var less func(i, j int) bool
	switch key {
	case SortByAmount:
		less = func(i, j int) bool { return out[i].Amount < out[j].Amount }
	case SortByCategory:
		less = func(i, j int) bool { return out[i].Category < out[j].Category }
	default:
		less = func(i, j int) bool { return out[i].Date < out[j].Date }
	}
	if descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(out, less)
	return out
}

// Expenses returns a copy of the raw expense slice in insertion order.
func (l *Ledger) Expenses() []*models.Expense {
	out := make([]*models.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Filter narrows a spending query. Category and date bounds apply
// conjunctively: both filters narrow the same base set.
type Filter struct {
	Category *models.Category
	Start    string
	End      string
}

func (f Filter) matches(exp *models.Expense, startT, endT *time.Time) bool {
	if f.Category != nil && exp.Category != *f.Category {
		return false
	}
	if startT != nil && endT != nil {
		d, err := time.Parse(models.DateLayout, exp.Date)
		if err != nil {
			return false
		}
		if d.Before(*startT) || d.After(*endT) {
			return false
		}
	}
	return true
}

// TotalSpent sums amounts over expenses matching the filter. A date
// range with unparsable bounds is skipped rather than erroring, so a
// category filter is never silently discarded.
func (l *Ledger) TotalSpent(f Filter) float64 {
	var startT, endT *time.Time
	if f.Start != "" && f.End != "" {
		s, errS := time.Parse(models.DateLayout, f.Start)
		e, errE := time.Parse(models.DateLayout, f.End)
		if errS == nil && errE == nil {
			startT, endT = &s, &e
		}
	}
	var total float64
	for _, exp := range l.expenses {
		if f.matches(exp, startT, endT) {
			total += exp.Amount
		}
	}
	return total
}

// TotalsByCategory sums spending per category, optionally restricted to
// a date range. Every category appears in the result, at zero if
// unused.
func (l *Ledger) TotalsByCategory(start, end string) map[models.Category]float64 {
	totals := make(map[models.Category]float64, len(models.Categories))
	for _, c := range models.Categories {
		totals[c] = 0
	}
	expenses := l.expenses
	if start != "" && end != "" {
		expenses = l.ByDateRange(start, end)
	}
	for _, exp := range expenses {
		totals[exp.Category] += exp.Amount
	}
	return totals
}

// ClearAll empties both the ledger and the budget set and persists.
func (l *Ledger) ClearAll() error {
	l.expenses = nil
	l.budgets = nil
	if err := l.save(); err != nil {
		return err
	}
	l.logger.Info("cleared all data", "username", l.username)
	return nil
}

func (l *Ledger) find(id string) *models.Expense {
	for _, exp := range l.expenses {
		if exp.ID == id {
			return exp
		}
	}
	return nil
}
