package calimport

import (
	"testing"
	"time"
)

func TestParseICalWellFormed(t *testing.T) {
	data := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:ev-1
SUMMARY:Dentist
DTSTART:20231225T143000Z
DTEND:20231225T153000Z
LOCATION:Main Street 4
END:VEVENT
BEGIN:VEVENT
UID:ev-2
SUMMARY:Soccer practice
DTSTART:20231226T170000Z
END:VEVENT
END:VCALENDAR`

	events := Parse(data, FormatICal)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.Title != "Dentist" {
		t.Errorf("title = %q, want %q", first.Title, "Dentist")
	}
	if first.Start != "2023-12-25T14:30:00.000Z" {
		t.Errorf("start = %q, want %q", first.Start, "2023-12-25T14:30:00.000Z")
	}
	if first.End != "2023-12-25T15:30:00.000Z" {
		t.Errorf("end = %q, want %q", first.End, "2023-12-25T15:30:00.000Z")
	}
	if first.Location != "Main Street 4" {
		t.Errorf("location = %q, want %q", first.Location, "Main Street 4")
	}

	// Source order is preserved.
	if events[1].Title != "Soccer practice" {
		t.Errorf("second title = %q, want %q", events[1].Title, "Soccer practice")
	}
}

func TestParseICalEndDefaultsToStart(t *testing.T) {
	data := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:ev-1
SUMMARY:No end
DTSTART:20240115T100000Z
END:VEVENT
END:VCALENDAR`

	events := Parse(data, FormatICal)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].End != events[0].Start {
		t.Errorf("end = %q, want start %q", events[0].End, events[0].Start)
	}
}

func TestParseICalDropsIncompleteEvents(t *testing.T) {
	data := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:no-summary
DTSTART:20240115T100000Z
END:VEVENT
BEGIN:VEVENT
UID:no-start
SUMMARY:Missing start
END:VEVENT
BEGIN:VEVENT
UID:complete
SUMMARY:Keeper
DTSTART:20240116T100000Z
END:VEVENT
END:VCALENDAR`

	events := Parse(data, FormatICal)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "Keeper" {
		t.Errorf("title = %q, want %q", events[0].Title, "Keeper")
	}
}

func TestParseICalBareDate(t *testing.T) {
	data := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:ev-1
SUMMARY:Christmas
DTSTART:20231225
END:VEVENT
END:VCALENDAR`

	events := Parse(data, FormatICal)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	// Bare dates are local midnight rendered in UTC.
	want := time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local).UTC().Format(isoLayout)
	if events[0].Start != want {
		t.Errorf("start = %q, want %q", events[0].Start, want)
	}

	parsed, err := time.Parse(isoLayout, events[0].Start)
	if err != nil {
		t.Fatalf("start is not ISO-8601: %v", err)
	}
	if got := parsed.In(time.Local).Format("2006-01-02"); got != "2023-12-25" {
		t.Errorf("local date component = %q, want 2023-12-25", got)
	}
}

func TestParseICalTZID(t *testing.T) {
	data := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:ev-1
SUMMARY:Morning call
DTSTART;TZID=America/Chicago:20231225T090000
END:VEVENT
END:VCALENDAR`

	events := Parse(data, FormatICal)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	// 09:00 in Chicago is 15:00 UTC in winter.
	if events[0].Start != "2023-12-25T15:00:00.000Z" {
		t.Errorf("start = %q, want %q", events[0].Start, "2023-12-25T15:00:00.000Z")
	}
}

func TestParseICalUnescapesDescription(t *testing.T) {
	data := `BEGIN:VCALENDAR
VERSION:2.0
BEGIN:VEVENT
UID:ev-1
SUMMARY:Notes
DTSTART:20240115T100000Z
DESCRIPTION:line one\nline two\, with comma
END:VEVENT
END:VCALENDAR`

	events := Parse(data, FormatICal)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	want := "line one\nline two, with comma"
	if events[0].Description != want {
		t.Errorf("description = %q, want %q", events[0].Description, want)
	}
}

func TestParseICalGarbageYieldsEmpty(t *testing.T) {
	for _, data := range []string{"", "not a calendar at all", "BEGIN:VCALENDAR"} {
		events := Parse(data, FormatICal)
		if len(events) != 0 {
			t.Errorf("Parse(%q) = %d events, want 0", data, len(events))
		}
	}
}

func TestParseCSVHeaderSynonyms(t *testing.T) {
	data := "Subject,Start Date,Notes\n\"Team Sync\",\"2025-01-10T09:00:00Z\",\"Kickoff\"\n"

	events := Parse(data, FormatCSV)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.Title != "Team Sync" {
		t.Errorf("title = %q, want %q", ev.Title, "Team Sync")
	}
	if ev.Start != "2025-01-10T09:00:00.000Z" {
		t.Errorf("start = %q, want %q", ev.Start, "2025-01-10T09:00:00.000Z")
	}
	if ev.End != ev.Start {
		t.Errorf("end = %q, want start %q", ev.End, ev.Start)
	}
	if ev.Description != "Kickoff" {
		t.Errorf("description = %q, want %q", ev.Description, "Kickoff")
	}
}

func TestParseCSVSkipsShortRows(t *testing.T) {
	data := "title,start,end\nGood row,2025-01-10T09:00:00Z,2025-01-10T10:00:00Z\nshort row\n"

	events := Parse(data, FormatCSV)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Title != "Good row" {
		t.Errorf("title = %q, want %q", events[0].Title, "Good row")
	}
}

func TestParseCSVDropsRowsMissingRequired(t *testing.T) {
	data := "title,start\n,2025-01-10T09:00:00Z\nNo start,\n"

	events := Parse(data, FormatCSV)
	if len(events) != 0 {
		t.Fatalf("expected 0 events, got %d", len(events))
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	events := Parse("title,start\n", FormatCSV)
	if len(events) != 0 {
		t.Fatalf("expected 0 events, got %d", len(events))
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "rfc3339 utc",
			input: "2025-01-10T09:00:00Z",
			want:  "2025-01-10T09:00:00.000Z",
		},
		{
			name:  "rfc3339 with offset",
			input: "2025-01-10T09:00:00+02:00",
			want:  "2025-01-10T07:00:00.000Z",
		},
		{
			name:  "bare date",
			input: "2025-01-10",
			want:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local).UTC().Format(isoLayout),
		},
		{
			name:  "us style",
			input: "01/10/2025",
			want:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local).UTC().Format(isoLayout),
		},
		{
			name:  "unparseable",
			input: "next tuesday",
			want:  "",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDate(tt.input); got != tt.want {
				t.Errorf("normalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
