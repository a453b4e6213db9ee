// Package calimport converts uploaded or fetched calendar data (iCalendar or
// CSV) into draft events ready for preview and bulk persistence. Parsing is
// deliberately soft: records missing a title or start time are dropped, and a
// document that cannot be parsed at all yields an empty list rather than an
// error.
package calimport

import (
	"encoding/csv"
	"log"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// Format selects the parser applied to the raw content.
type Format string

const (
	FormatICal Format = "ical"
	FormatCSV  Format = "csv"
)

// DraftEvent is an in-memory, not-yet-persisted calendar event. All
// timestamps are ISO-8601 UTC strings.
type DraftEvent struct {
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// isoLayout renders timestamps the way the web client expects them.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Parse converts raw calendar text into draft events, in source order.
func Parse(content string, format Format) []DraftEvent {
	if format == FormatCSV {
		return parseCSV(content)
	}
	return parseICal(content)
}

func parseICal(content string) []DraftEvent {
	events := make([]DraftEvent, 0)

	cal, err := ics.ParseCalendar(strings.NewReader(content))
	if err != nil {
		log.Printf("calimport: ical parse failed: %v", err)
		return events
	}

	for _, ve := range cal.Events() {
		var ev DraftEvent
		if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
			ev.Title = strings.TrimSpace(p.Value)
		}
		if p := ve.GetProperty(ics.ComponentPropertyDtStart); p != nil {
			if t, ok := parseICalTime(p.Value, p.ICalParameters); ok {
				ev.Start = t.UTC().Format(isoLayout)
			}
		}
		if p := ve.GetProperty(ics.ComponentPropertyDtEnd); p != nil {
			if t, ok := parseICalTime(p.Value, p.ICalParameters); ok {
				ev.End = t.UTC().Format(isoLayout)
			}
		}
		if p := ve.GetProperty(ics.ComponentPropertyDescription); p != nil {
			ev.Description = unescapeText(p.Value)
		}
		if p := ve.GetProperty(ics.ComponentPropertyLocation); p != nil {
			ev.Location = unescapeText(p.Value)
		}

		if ev.Title == "" || ev.Start == "" {
			continue
		}
		if ev.End == "" {
			ev.End = ev.Start
		}
		events = append(events, ev)
	}

	return events
}

// parseICalTime parses a DTSTART/DTEND value. UTC values end in "Z"; local
// date-times are interpreted in the TZID parameter's zone when present,
// otherwise in the server's zone; bare dates become local midnight.
func parseICalTime(value string, params map[string][]string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	loc := time.Local
	if tzs, ok := params["TZID"]; ok && len(tzs) > 0 {
		if l, err := time.LoadLocation(tzs[0]); err == nil {
			loc = l
		}
	}

	switch {
	case strings.HasSuffix(value, "Z"):
		t, err := time.Parse("20060102T150405Z", value)
		return t, err == nil
	case strings.Contains(value, "T"):
		t, err := time.ParseInLocation("20060102T150405", value, loc)
		return t, err == nil
	default:
		t, err := time.ParseInLocation("20060102", value, loc)
		return t, err == nil
	}
}

// unescapeText reverses RFC 5545 TEXT escaping (literal "\n" back to a
// newline, escaped commas, semicolons and backslashes).
var textUnescaper = strings.NewReplacer(
	`\n`, "\n",
	`\N`, "\n",
	`\,`, ",",
	`\;`, ";",
	`\\`, `\`,
)

func unescapeText(s string) string {
	return textUnescaper.Replace(s)
}

// csvHeaderField maps a lowercased CSV header cell to the draft event field
// it feeds. Unknown headers are ignored.
func csvHeaderField(name string) string {
	switch name {
	case "title", "subject", "summary":
		return "title"
	case "start", "start date", "start time":
		return "start"
	case "end", "end date", "end time":
		return "end"
	case "description", "notes":
		return "description"
	case "location":
		return "location"
	}
	return ""
}

func parseCSV(content string) []DraftEvent {
	events := make([]DraftEvent, 0)

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		log.Printf("calimport: csv parse failed: %v", err)
		return events
	}
	if len(rows) < 2 {
		// Header only, or nothing at all.
		return events
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	for _, row := range rows[1:] {
		if len(row) < len(header) {
			// Malformed row, skip it and keep going.
			continue
		}

		var ev DraftEvent
		for i, name := range header {
			value := strings.Trim(strings.TrimSpace(row[i]), `"`)
			switch csvHeaderField(name) {
			case "title":
				ev.Title = value
			case "start":
				ev.Start = normalizeDate(value)
			case "end":
				ev.End = normalizeDate(value)
			case "description":
				ev.Description = value
			case "location":
				ev.Location = value
			}
		}

		if ev.Title == "" || ev.Start == "" {
			continue
		}
		if ev.End == "" {
			ev.End = ev.Start
		}
		events = append(events, ev)
	}

	return events
}

// dateLayouts are tried in order when normalizing CSV date cells. Layouts
// without zone information are interpreted in the server's zone.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
}

// normalizeDate parses a free-form date cell and renders it as ISO-8601 UTC.
// Returns "" if no layout matches.
func normalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		var t time.Time
		var err error
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, value)
		} else {
			t, err = time.ParseInLocation(layout, value, time.Local)
		}
		if err == nil {
			return t.UTC().Format(isoLayout)
		}
	}
	return ""
}
