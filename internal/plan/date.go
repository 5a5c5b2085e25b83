package plan

import (
	"strings"
	"time"
)

var dateLayouts = []string{"Jan 2", "January 2"}

// ParseDate resolves a month/day token such as "Jan 10" against year. It returns
// nil when the token is not a real calendar date in that year.
func ParseDate(token string, year int) *time.Time {
	token = strings.Join(strings.Fields(strings.ReplaceAll(token, ".", " ")), " ")
	if token == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		// time.Parse checks days against year 0, which is a leap year.
		if d.Month() != t.Month() || d.Day() != t.Day() {
			return nil
		}
		return &d
	}
	return nil
}

// WeekEnd returns the last day of the seven-day week starting at start.
func WeekEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 6)
}
