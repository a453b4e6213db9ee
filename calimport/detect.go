package calimport

import "strings"

// DetectFormat resolves the import format from a file name or URL path, a
// Content-Type header, and finally the body itself (looking for the
// BEGIN:VCALENDAR marker). The boolean is false when nothing matches.
func DetectFormat(path, contentType, body string) (Format, bool) {
	ct := strings.ToLower(contentType)
	name := strings.ToLower(path)

	switch {
	case strings.Contains(ct, "text/calendar"), strings.HasSuffix(name, ".ics"):
		return FormatICal, true
	case strings.Contains(ct, "text/csv"), strings.Contains(ct, "application/csv"), strings.HasSuffix(name, ".csv"):
		return FormatCSV, true
	case strings.Contains(body, "BEGIN:VCALENDAR"):
		return FormatICal, true
	}
	return "", false
}
