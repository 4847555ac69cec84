package schedule

import (
	"testing"
	"time"
)

func TestTermRange(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		term      string
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{name: "fall", term: "Fall 2025", wantStart: "2025-08-15", wantEnd: "2025-12-15", wantOK: true},
		{name: "spring", term: "Spring 2026", wantStart: "2026-01-15", wantEnd: "2026-05-15", wantOK: true},
		{name: "case_insensitive", term: "FALL 2025 semester", wantStart: "2025-08-15", wantEnd: "2025-12-15", wantOK: true},
		{name: "unknown_term_full_year", term: "Summer 2025", wantStart: "2025-01-01", wantEnd: "2025-12-31", wantOK: true},
		{name: "no_year_uses_now", term: "fall", wantStart: "2025-08-15", wantEnd: "2025-12-15", wantOK: true},
		{name: "empty_absent", term: "", wantOK: false},
		{name: "whitespace_absent", term: "   ", wantOK: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, ok := TermRange(tc.term, now)
			if ok != tc.wantOK {
				t.Fatalf("TermRange(%q) ok=%v, want %v", tc.term, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if got := start.Format("2006-01-02"); got != tc.wantStart {
				t.Fatalf("TermRange(%q) start=%s, want %s", tc.term, got, tc.wantStart)
			}
			if got := end.Format("2006-01-02"); got != tc.wantEnd {
				t.Fatalf("TermRange(%q) end=%s, want %s", tc.term, got, tc.wantEnd)
			}
		})
	}
}

func TestTermYear(t *testing.T) {
	cases := []struct {
		name string
		term string
		def  int
		want int
	}{
		{name: "year_in_label", term: "Fall 2025", def: 2024, want: 2025},
		{name: "no_digits", term: "Fall", def: 2024, want: 2024},
		{name: "implausible_year_ignored", term: "Term 42", def: 2024, want: 2024},
		{name: "empty", term: "", def: 2024, want: 2024},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TermYear(tc.term, tc.def); got != tc.want {
				t.Fatalf("TermYear(%q, %d)=%d, want %d", tc.term, tc.def, got, tc.want)
			}
		})
	}
}
