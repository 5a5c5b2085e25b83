package calendar

import (
	"testing"
	"time"

	"github.com/jorge-barreto/plancal/internal/plan"
)

func day(m time.Month, d int) *time.Time {
	t := time.Date(2022, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleWeeks() []plan.Week {
	return []plan.Week{
		{
			Label:     "WEEK 1",
			StartDate: day(time.January, 3),
			EndDate:   day(time.January, 9),
			Readings: []plan.Reading{
				{Label: "Genesis 1", Date: day(time.January, 3), URL: "u1"},
				{Label: "Genesis 2", Date: nil},
				{Label: "Genesis 3", Date: day(time.January, 4)},
			},
			MemoryVerse: plan.MemoryVerse{Label: "John 1:1", URL: "mv1", Text: "In the beginning"},
		},
		{
			Label:     "WEEK 2",
			StartDate: day(time.January, 10),
			EndDate:   day(time.January, 16),
			Readings: []plan.Reading{
				{Label: "Genesis 18", Date: day(time.January, 10)},
			},
		},
		{Label: "WEEK 3", MemoryVerse: plan.MemoryVerse{Label: "John 3:16"}},
	}
}

func TestFromWeeks_All(t *testing.T) {
	events := FromWeeks(sampleWeeks(), ModeAll)
	// 3 dated readings + 1 memory verse (week 2 has none, week 3 has no dates)
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	titles := []string{"Genesis 1", "Genesis 3", "Genesis 18", "Memory Verse: John 1:1"}
	for i, want := range titles {
		if events[i].Title != want {
			t.Fatalf("event %d: Title = %q, want %q", i, events[i].Title, want)
		}
	}

	r := events[0]
	if !r.Start.Equal(*day(time.January, 3)) || !r.End.Equal(*day(time.January, 4)) {
		t.Fatalf("reading span = %v..%v", r.Start, r.End)
	}
	if r.URL != "u1" || r.Description != "Genesis 1" {
		t.Fatalf("reading = %+v", r)
	}

	mv := events[3]
	if !mv.Start.Equal(*day(time.January, 3)) || !mv.End.Equal(*day(time.January, 10)) {
		t.Fatalf("memory verse span = %v..%v", mv.Start, mv.End)
	}
	if mv.Description != "In the beginning" {
		t.Fatalf("Description = %q", mv.Description)
	}
	if mv.URL != "mv1" {
		t.Fatalf("URL = %q", mv.URL)
	}
}

func TestFromWeeks_MemoryVerseOnly(t *testing.T) {
	events := FromWeeks(sampleWeeks(), ModeMemoryVerse)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "Memory Verse: John 1:1" {
		t.Fatalf("Title = %q", events[0].Title)
	}
}

func TestMemoryVerseDescriptionFallsBackToLabel(t *testing.T) {
	w := sampleWeeks()[0]
	w.MemoryVerse.Text = ""
	ev, ok := memoryVerseEvent(w)
	if !ok {
		t.Fatal("expected event")
	}
	if ev.Description != "John 1:1" {
		t.Fatalf("Description = %q", ev.Description)
	}
}

func TestFromPlan_Flat(t *testing.T) {
	p := &plan.Plan{
		Dialect:  plan.DialectFlat,
		Readings: []plan.Reading{{Label: "Genesis 1", Date: day(time.January, 1)}},
	}
	if got := FromPlan(p, ModeAll); len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got := FromPlan(p, ModeMemoryVerse); len(got) != 0 {
		t.Fatalf("flat plan has no memory verses, got %d", len(got))
	}
}

func TestEventUID_Stable(t *testing.T) {
	a := eventUID("Genesis 1", *day(time.January, 1))
	b := eventUID("Genesis 1", *day(time.January, 1))
	c := eventUID("Genesis 1", *day(time.January, 2))
	if a != b {
		t.Fatalf("UID not stable: %q vs %q", a, b)
	}
	if a == c {
		t.Fatal("UIDs for different days should differ")
	}
}
