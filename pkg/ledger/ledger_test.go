package ledger

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/pkg/models"
)

func newTestLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	dir := t.TempDir()
	l, err := New("alice", dir, log.New(io.Discard))
	require.NoError(t, err)
	return l, dir
}

func TestAddGetRoundTrip(t *testing.T) {
	l, _ := newTestLedger(t)

	id, err := l.Add(42.50, models.Food, "groceries", "2024-01-15")
	require.NoError(t, err)

	exp, ok := l.Get(id)
	require.True(t, ok)
	assert.Equal(t, 42.50, exp.Amount)
	assert.Equal(t, models.Food, exp.Category)
	assert.Equal(t, "groceries", exp.Description)
	assert.Equal(t, "2024-01-15", exp.Date)
}

func TestAddRejectsNonPositiveAmount(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.Add(0, models.Food, "free lunch", "2024-01-15")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = l.Add(-5, models.Food, "refund", "2024-01-15")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, l.Expenses())
}

func TestAddDefaultsDateToToday(t *testing.T) {
	l, _ := newTestLedger(t)
	l.now = func() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) }

	id, err := l.Add(10, models.Bills, "power", "")
	require.NoError(t, err)
	exp, _ := l.Get(id)
	assert.Equal(t, "2024-03-05", exp.Date)
}

func TestRemove(t *testing.T) {
	l, _ := newTestLedger(t)
	id, err := l.Add(10, models.Food, "snack", "2024-01-15")
	require.NoError(t, err)

	require.NoError(t, l.Remove(id))
	_, ok := l.Get(id)
	assert.False(t, ok)

	assert.ErrorIs(t, l.Remove(id), ErrNotFound)
}

func TestUpdatePartial(t *testing.T) {
	l, _ := newTestLedger(t)
	id, err := l.Add(10, models.Food, "snack", "2024-01-15")
	require.NoError(t, err)

	amount := 12.0
	cat := models.Shopping
	require.NoError(t, l.Update(id, models.ExpensePatch{Amount: &amount, Category: &cat}))

	exp, _ := l.Get(id)
	assert.Equal(t, 12.0, exp.Amount)
	assert.Equal(t, models.Shopping, exp.Category)
	// Unspecified fields keep their values.
	assert.Equal(t, "snack", exp.Description)
	assert.Equal(t, "2024-01-15", exp.Date)
}

func TestUpdateErrors(t *testing.T) {
	l, _ := newTestLedger(t)
	id, err := l.Add(10, models.Food, "snack", "2024-01-15")
	require.NoError(t, err)

	bad := -1.0
	assert.ErrorIs(t, l.Update(id, models.ExpensePatch{Amount: &bad}), ErrInvalidAmount)
	exp, _ := l.Get(id)
	assert.Equal(t, 10.0, exp.Amount, "failed update must not mutate")

	good := 5.0
	assert.ErrorIs(t, l.Update("missing", models.ExpensePatch{Amount: &good}), ErrNotFound)
}

func TestByCategoryAndDateRange(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, 10, models.Food, "2024-01-10")
	mustAdd(t, l, 20, models.Food, "2024-01-20")
	mustAdd(t, l, 30, models.Bills, "2024-01-15")

	assert.Len(t, l.ByCategory(models.Food), 2)
	assert.Len(t, l.ByCategory(models.Healthcare), 0)

	inRange := l.ByDateRange("2024-01-10", "2024-01-15")
	assert.Len(t, inRange, 2)

	// Inclusive bounds.
	assert.Len(t, l.ByDateRange("2024-01-15", "2024-01-15"), 1)

	// Fails open on bad dates.
	assert.Empty(t, l.ByDateRange("not-a-date", "2024-01-15"))
}

func TestTotalSpentConjunctiveFilters(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, 10, models.Food, "2024-01-10")
	mustAdd(t, l, 20, models.Food, "2024-02-10")
	mustAdd(t, l, 40, models.Bills, "2024-01-10")

	food := models.Food
	assert.Equal(t, 70.0, l.TotalSpent(Filter{}))
	assert.Equal(t, 30.0, l.TotalSpent(Filter{Category: &food}))
	assert.Equal(t, 50.0, l.TotalSpent(Filter{Start: "2024-01-01", End: "2024-01-31"}))

	// Both filters narrow the same base set.
	both := l.TotalSpent(Filter{Category: &food, Start: "2024-01-01", End: "2024-01-31"})
	assert.Equal(t, 10.0, both)
	assert.LessOrEqual(t, both, l.TotalSpent(Filter{Start: "2024-01-01", End: "2024-01-31"}))

	// A broken date range is skipped, the category filter survives.
	assert.Equal(t, 30.0, l.TotalSpent(Filter{Category: &food, Start: "bad", End: "2024-01-31"}))
}

func TestTotalsByCategory(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, 10, models.Food, "2024-01-10")
	mustAdd(t, l, 25, models.Entertainment, "2024-01-12")

	totals := l.TotalsByCategory("", "")
	assert.Len(t, totals, 8, "every category is present")
	assert.Equal(t, 10.0, totals[models.Food])
	assert.Equal(t, 25.0, totals[models.Entertainment])
	assert.Equal(t, 0.0, totals[models.Healthcare])

	var sum float64
	for _, v := range totals {
		sum += v
	}
	assert.Equal(t, l.TotalSpent(Filter{}), sum)

	ranged := l.TotalsByCategory("2024-01-11", "2024-01-31")
	assert.Equal(t, 0.0, ranged[models.Food])
	assert.Equal(t, 25.0, ranged[models.Entertainment])
}

func TestAllSorting(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, 30, models.Bills, "2024-01-20")
	mustAdd(t, l, 10, models.Food, "2024-01-10")
	mustAdd(t, l, 20, models.Entertainment, "2024-01-15")

	byDate := l.All(SortByDate, true)
	assert.Equal(t, "2024-01-20", byDate[0].Date)
	assert.Equal(t, "2024-01-10", byDate[2].Date)

	byAmount := l.All(SortByAmount, false)
	assert.Equal(t, 10.0, byAmount[0].Amount)
	assert.Equal(t, 30.0, byAmount[2].Amount)

	byCategory := l.All(SortByCategory, false)
	assert.Equal(t, models.Bills, byCategory[0].Category)
}

func TestClearAll(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, 10, models.Food, "2024-01-10")
	require.NoError(t, l.SetBudget(models.Food, 100, models.Monthly))

	require.NoError(t, l.ClearAll())
	assert.Empty(t, l.Expenses())
	assert.Zero(t, l.BudgetCount())
}

func TestStorageRoundTrip(t *testing.T) {
	l, dir := newTestLedger(t)
	id, err := l.Add(42.50, models.Food, "groceries", "2024-01-15")
	require.NoError(t, err)
	require.NoError(t, l.SetBudget(models.Food, 100, models.Monthly))
	require.NoError(t, l.SetBudget(models.Entertainment, 50, models.Weekly))

	reloaded, err := New("alice", dir, log.New(io.Discard))
	require.NoError(t, err)

	exp, ok := reloaded.Get(id)
	require.True(t, ok)
	assert.Equal(t, 42.50, exp.Amount)
	assert.Equal(t, models.Food, exp.Category)
	assert.Equal(t, "groceries", exp.Description)
	assert.Equal(t, "2024-01-15", exp.Date)

	budgets := reloaded.Budgets()
	require.Len(t, budgets, 2)
	assert.Equal(t, "budget_Food_monthly", budgets[0].ID)
	assert.Equal(t, models.Weekly, budgets[1].Period)
}

func TestLoadCorruptFileResetsInMemory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alice", dataFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

	l, err := New("alice", dir, log.New(io.Discard))
	require.NoError(t, err)
	assert.Empty(t, l.Expenses())
	assert.Zero(t, l.BudgetCount())

	// Still usable; the next mutation rewrites the file.
	_, err = l.Add(5, models.Other, "misc", "2024-01-01")
	require.NoError(t, err)
	reloaded, err := New("alice", dir, log.New(io.Discard))
	require.NoError(t, err)
	assert.Len(t, reloaded.Expenses(), 1)
}

func mustAdd(t *testing.T, l *Ledger, amount float64, cat models.Category, date string) string {
	t.Helper()
	id, err := l.Add(amount, cat, "test", date)
	require.NoError(t, err)
	return id
}
