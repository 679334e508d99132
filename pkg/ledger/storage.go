package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"spendwise/pkg/models"
)

const dataFileName = "expenses.json"

// document is the on-disk shape of one user's data file.
type document struct {
	Username    string            `json:"username"`
	LastUpdated string            `json:"last_updated"`
	Expenses    []*models.Expense `json:"expenses"`
	Budgets     []*models.Budget  `json:"budgets"`
}

func (l *Ledger) load(username, dataDir string) error {
	dir := filepath.Join(dataDir, username)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	l.path = filepath.Join(dir, dataFileName)

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		l.logger.Warn("could not read data file, starting empty", "path", l.path, "error", err)
		return nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		// Availability over durability: a corrupt file resets the
		// in-memory collections and the session continues. The file on
		// disk keeps its contents until the next mutation.
		l.logger.Warn("data file is corrupt, starting empty", "path", l.path, "error", err)
		return nil
	}
	l.expenses = doc.Expenses
	l.budgets = doc.Budgets
	return nil
}

func (l *Ledger) save() error {
	doc := document{
		Username:    l.username,
		LastUpdated: l.now().Format("2006-01-02 15:04:05"),
		Expenses:    l.expenses,
		Budgets:     l.budgets,
	}
	if doc.Expenses == nil {
		doc.Expenses = []*models.Expense{}
	}
	if doc.Budgets == nil {
		doc.Budgets = []*models.Budget{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}
