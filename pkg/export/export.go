// Package export renders a user's ledger in interchange formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"spendwise/pkg/models"
)

// FilterFunc decides whether an expense is included in an export.
type FilterFunc func(*models.Expense) bool

// Document is the exportable view of one user's data.
type Document struct {
	Username string            `json:"username" yaml:"username"`
	Expenses []*models.Expense `json:"expenses" yaml:"expenses"`
	Budgets  []*models.Budget  `json:"budgets" yaml:"budgets"`
}

// CSV renders expenses as Date,Category,Description,Amount rows. A nil
// filter includes everything.
func CSV(expenses []*models.Expense, filter FilterFunc) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Date", "Category", "Description", "Amount"}); err != nil {
		return nil, err
	}
	for _, exp := range expenses {
		if filter != nil && !filter(exp) {
			continue
		}
		row := []string{exp.Date, exp.Category.String(), exp.Description, fmt.Sprintf("%.2f", exp.Amount)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// JSON renders the full document with indentation.
func JSON(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// YAML renders the full document.
func YAML(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
