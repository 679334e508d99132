package main

import (
	"spendwise/pkg/export"
	"spendwise/pkg/models"
)

type filters struct {
	category  string
	startDate string
	endDate   string
	minAmount float64
	maxAmount float64
}

// toFilterFunc converts the flag values into an export predicate. Date
// bounds compare the YYYY-MM-DD strings directly, which orders
// chronologically.
func (f *filters) toFilterFunc() (export.FilterFunc, error) {
	var category *models.Category
	if f.category != "" {
		c, err := models.ParseCategory(f.category)
		if err != nil {
			return nil, err
		}
		category = &c
	}
	return func(e *models.Expense) bool {
		if category != nil && e.Category != *category {
			return false
		}
		if f.startDate != "" && e.Date < f.startDate {
			return false
		}
		if f.endDate != "" && e.Date > f.endDate {
			return false
		}
		if f.minAmount != 0 && e.Amount < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && e.Amount > f.maxAmount {
			return false
		}
		return true
	}, nil
}
