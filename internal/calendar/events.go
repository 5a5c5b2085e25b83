package calendar

import (
	"time"

	"github.com/google/uuid"
	"github.com/jorge-barreto/plancal/internal/plan"
)

// Mode selects which plan records become events.
type Mode int

const (
	// ModeAll exports every dated reading plus one event per memory verse.
	ModeAll Mode = iota
	// ModeMemoryVerse exports only the memory verses.
	ModeMemoryVerse
)

// Event is an all-day calendar entry. End is exclusive.
type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Title       string
	Description string
	URL         string
}

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jorge-barreto/plancal"))

// eventUID is stable across runs so re-importing a plan updates events in place.
func eventUID(title string, start time.Time) string {
	return uuid.NewSHA1(uidNamespace, []byte(title+"|"+start.Format(time.DateOnly))).String()
}

// FromPlan maps a parsed plan to events, honoring mode for weekly plans.
func FromPlan(p *plan.Plan, mode Mode) []Event {
	if p.Dialect == plan.DialectFlat {
		if mode == ModeMemoryVerse {
			return nil
		}
		return FromReadings(p.Readings)
	}
	return FromWeeks(p.Weeks, mode)
}

// FromWeeks returns reading events in week order followed by memory-verse events
// in week order. Readings without a date and weeks without a start date or memory
// verse are skipped.
func FromWeeks(weeks []plan.Week, mode Mode) []Event {
	var events []Event
	if mode == ModeAll {
		for _, w := range weeks {
			events = append(events, FromReadings(w.Readings)...)
		}
	}
	for _, w := range weeks {
		if ev, ok := memoryVerseEvent(w); ok {
			events = append(events, ev)
		}
	}
	return events
}

// FromReadings returns one single-day event per dated reading.
func FromReadings(readings []plan.Reading) []Event {
	events := make([]Event, 0, len(readings))
	for _, r := range readings {
		if r.Date == nil {
			continue
		}
		events = append(events, Event{
			UID:         eventUID(r.Label, *r.Date),
			Start:       *r.Date,
			End:         r.Date.AddDate(0, 0, 1),
			Title:       r.Label,
			Description: r.Label,
			URL:         r.URL,
		})
	}
	return events
}

func memoryVerseEvent(w plan.Week) (Event, bool) {
	mv := w.MemoryVerse
	if w.StartDate == nil || w.EndDate == nil || mv.Label == "" {
		return Event{}, false
	}
	title := "Memory Verse: " + mv.Label
	desc := mv.Label
	if mv.Text != "" {
		desc = mv.Text
	}
	return Event{
		UID:         eventUID(title, *w.StartDate),
		Start:       *w.StartDate,
		End:         w.EndDate.AddDate(0, 0, 1),
		Title:       title,
		Description: desc,
		URL:         mv.URL,
	}, true
}
