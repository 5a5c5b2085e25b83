package calendar

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const productID = "plancal"

// Encode serializes events as an iCalendar document stamped with now.
func Encode(events []Event, now time.Time) ([]byte, error) {
	cal := ics.NewCalendarFor(productID)
	cal.SetMethod(ics.MethodPublish)

	for i, ev := range events {
		if err := validate(ev); err != nil {
			return nil, fmt.Errorf("event %d (%q): %w", i+1, ev.Title, err)
		}
		uid := ev.UID
		if uid == "" {
			uid = eventUID(ev.Title, ev.Start)
		}
		e := cal.AddEvent(uid)
		e.SetDtStampTime(now.UTC())
		e.SetAllDayStartAt(ev.Start)
		e.SetAllDayEndAt(ev.End)
		e.SetSummary(ev.Title)
		if ev.Description != "" {
			e.SetDescription(ev.Description)
		}
		if ev.URL != "" {
			e.SetURL(ev.URL)
		}
	}
	return []byte(cal.Serialize()), nil
}

func validate(ev Event) error {
	if strings.TrimSpace(ev.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if ev.Start.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if !ev.End.After(ev.Start) {
		return fmt.Errorf("end %s is not after start %s",
			ev.End.Format(time.DateOnly), ev.Start.Format(time.DateOnly))
	}
	return nil
}

// CheckOutputPath rejects output paths without an .ics extension.
func CheckOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path is required")
	}
	if !strings.EqualFold(filepath.Ext(path), ".ics") {
		return fmt.Errorf("output file %q should have a \".ics\" extension", path)
	}
	return nil
}
