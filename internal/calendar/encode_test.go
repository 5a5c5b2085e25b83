package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var stamp = time.Date(2022, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestEncode(t *testing.T) {
	events := []Event{{
		Start: *day(time.January, 3),
		End:   *day(time.January, 4),
		Title: "Genesis 1",
		URL:   "https://example.org/g1",
	}}
	data, err := Encode(events, stamp)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"SUMMARY:Genesis 1",
		"DTSTART;VALUE=DATE:20220103",
		"DTEND;VALUE=DATE:20220104",
		"URL:https://example.org/g1",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "DESCRIPTION") {
		t.Fatal("empty description should be omitted")
	}
}

func TestEncode_EventCount(t *testing.T) {
	events := FromWeeks(sampleWeeks(), ModeAll)
	data, err := Encode(events, stamp)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "BEGIN:VEVENT"); n != len(events) {
		t.Fatalf("got %d VEVENTs, want %d", n, len(events))
	}
}

func TestEncode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"no title", Event{Start: *day(time.January, 1), End: *day(time.January, 2)}, "title"},
		{"no start", Event{Title: "x", End: *day(time.January, 2)}, "start"},
		{"end before start", Event{Title: "x", Start: *day(time.January, 2), End: *day(time.January, 2)}, "not after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode([]Event{tt.ev}, stamp)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q error, got %v", tt.want, err)
			}
		})
	}
}

func TestCheckOutputPath(t *testing.T) {
	if err := CheckOutputPath("plan.ics"); err != nil {
		t.Fatal(err)
	}
	if err := CheckOutputPath("out/PLAN.ICS"); err != nil {
		t.Fatal(err)
	}
	if err := CheckOutputPath("plan.txt"); err == nil || !strings.Contains(err.Error(), ".ics") {
		t.Fatalf("got %v", err)
	}
	if err := CheckOutputPath(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.ics")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("BEGIN:VCALENDAR")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "BEGIN:VCALENDAR" {
		t.Fatalf("got %q", string(data))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "plan.ics")
	if err := WriteFile(path, []byte("x")); err == nil {
		t.Fatal("expected error")
	}
}
