package plan

import (
	"fmt"
	"time"
)

// Dialect selects how plan lines are classified.
type Dialect string

const (
	// DialectWeekly groups readings under "WEEK n" headings, each with one
	// "Memory Verse:" line.
	DialectWeekly Dialect = "weekly"
	// DialectFlat treats every line as "<date>,<verses>" with no grouping.
	DialectFlat Dialect = "flat"
)

// ParseDialect validates a dialect name. An empty name selects DialectWeekly.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case "", DialectWeekly:
		return DialectWeekly, nil
	case DialectFlat:
		return DialectFlat, nil
	default:
		return "", fmt.Errorf("unknown dialect %q (must be weekly or flat)", s)
	}
}

// Reading is one passage assigned to one day.
type Reading struct {
	Label string
	Date  *time.Time // nil when the date token did not parse
	URL   string     // empty when book or chapter is unknown
}

// MemoryVerse is the single verse to memorize for a week.
type MemoryVerse struct {
	Label string
	URL   string
	API   *ESVRequest // set only when an access token is configured
	Text  string      // filled by enrichment
}

// Week is one block of the plan.
type Week struct {
	Label       string
	StartDate   *time.Time
	EndDate     *time.Time
	Readings    []Reading
	MemoryVerse MemoryVerse
}

// Empty reports whether the week collected nothing worth emitting.
func (w *Week) Empty() bool {
	return w.Label == "" && len(w.Readings) == 0 && w.MemoryVerse.Label == ""
}

// setDates records the week's range from its first dated reading. Later calls
// are no-ops.
func (w *Week) setDates(d *time.Time) {
	if w.StartDate != nil || d == nil {
		return
	}
	start := *d
	end := WeekEnd(start)
	w.StartDate = &start
	w.EndDate = &end
}

// Plan is the result of parsing a plan file. Weeks is populated for the weekly
// dialect, Readings for the flat one.
type Plan struct {
	Dialect  Dialect
	Weeks    []Week
	Readings []Reading
}

// ReadingCount returns the number of readings across the whole plan.
func (p *Plan) ReadingCount() int {
	n := len(p.Readings)
	for _, w := range p.Weeks {
		n += len(w.Readings)
	}
	return n
}
