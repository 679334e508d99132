package models

import (
	"fmt"
	"strings"
)

// Category is a fixed expense category. The set is closed; anything the
// user types is resolved through ParseCategory.
type Category string

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Bills          Category = "Bills"
	Education      Category = "Education"
	Healthcare     Category = "Healthcare"
	Other          Category = "Other"
)

// Categories lists every category in declaration order. This order is
// also the tie-break order for summaries and statistics.
var Categories = []Category{
	Food,
	Transportation,
	Entertainment,
	Shopping,
	Bills,
	Education,
	Healthcare,
	Other,
}

// ParseCategory resolves a user-supplied name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) String() string {
	return string(c)
}
