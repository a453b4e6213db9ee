package calimport

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		want        Format
		ok          bool
	}{
		{
			name: "ics extension",
			path: "/calendars/holidays.ics",
			want: FormatICal,
			ok:   true,
		},
		{
			name:        "calendar content type",
			contentType: "text/calendar; charset=utf-8",
			want:        FormatICal,
			ok:          true,
		},
		{
			name: "csv extension",
			path: "/export/schedule.csv",
			want: FormatCSV,
			ok:   true,
		},
		{
			name:        "csv content type",
			contentType: "text/csv",
			want:        FormatCSV,
			ok:          true,
		},
		{
			name: "body sniff",
			path: "/feed",
			body: "BEGIN:VCALENDAR\nVERSION:2.0\nEND:VCALENDAR",
			want: FormatICal,
			ok:   true,
		},
		{
			name:        "unsupported",
			path:        "/notes.txt",
			contentType: "text/plain",
			body:        "just some text",
			ok:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectFormat(tt.path, tt.contentType, tt.body)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("format = %q, want %q", got, tt.want)
			}
		})
	}
}
