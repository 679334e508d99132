package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the storage form for all expense dates. The layout
// sorts lexically in chronological order, which the statistics code
// relies on.
const DateLayout = "2006-01-02"

// Period is a recurring budget window.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

// Periods lists every period.
var Periods = []Period{Daily, Weekly, Monthly}

// ParsePeriod resolves a user-supplied period name, case-insensitively.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q", s)
}

func (p Period) String() string {
	return string(p)
}

// Window resolves the period to its current inclusive date range as of
// now: daily is just today, weekly starts on the most recent Monday,
// monthly starts on the first of the current month.
func (p Period) Window(now time.Time) (start, end string) {
	end = now.Format(DateLayout)
	switch p {
	case Daily:
		start = end
	case Weekly:
		// time.Weekday has Sunday == 0; Monday-based offset.
		offset := (int(now.Weekday()) + 6) % 7
		start = now.AddDate(0, 0, -offset).Format(DateLayout)
	default:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(DateLayout)
	}
	return start, end
}
