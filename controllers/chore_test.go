package controllers

import (
	"testing"
	"time"
)

func TestChoreOccurrences(t *testing.T) {
	dtstart := time.Date(2025, 1, 4, 9, 0, 0, 0, time.UTC) // a Saturday
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rule    string
		want    int
		wantErr bool
	}{
		{
			name: "weekly saturdays in january",
			rule: "FREQ=WEEKLY;BYDAY=SA",
			want: 4, // Jan 4, 11, 18, 25
		},
		{
			name: "daily",
			rule: "FREQ=DAILY",
			want: 28, // Jan 4 through Jan 31
		},
		{
			name: "one-off inside window",
			rule: "",
			want: 1,
		},
		{
			name:    "garbage rule",
			rule:    "FREQ=SOMETIMES",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occ, err := choreOccurrences(tt.rule, dtstart, from, to)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(occ) != tt.want {
				t.Errorf("got %d occurrences, want %d", len(occ), tt.want)
			}
		})
	}
}

func TestChoreOccurrencesOneOffOutsideWindow(t *testing.T) {
	dtstart := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	occ, err := choreOccurrences("", dtstart, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(occ) != 0 {
		t.Errorf("got %d occurrences, want 0", len(occ))
	}
}
