package schedule

import (
	"strconv"
	"strings"
	"time"
)

// TermRange resolves a free-text term label like "Fall 2025" into a concrete
// date range. The year is the first run of digits in the label, else now's
// year. "spring" maps to Jan 15..May 15, "fall" to Aug 15..Dec 15, anything
// else to the full calendar year.
//
// This is a heuristic, not an academic-calendar registry: the boundary dates
// are approximations and would need a configurable term table to be exact.
func TermRange(term string, now time.Time) (start, end time.Time, ok bool) {
	s := strings.ToLower(strings.TrimSpace(term))
	if s == "" {
		return time.Time{}, time.Time{}, false
	}
	year := firstDigitRun(s)
	if year == 0 {
		year = now.Year()
	}
	switch {
	case strings.Contains(s, "spring"):
		return midMonth(year, time.January), midMonth(year, time.May), true
	case strings.Contains(s, "fall"):
		return midMonth(year, time.August), midMonth(year, time.December), true
	default:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), true
	}
}

// TermYear extracts the year a class's term refers to, for correcting bare
// or stale dates. Values outside 2000..2100 are treated as noise.
func TermYear(term string, defaultYear int) int {
	y := firstDigitRun(strings.ToLower(term))
	if y >= 2000 && y <= 2100 {
		return y
	}
	return defaultYear
}

func midMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
}

func firstDigitRun(s string) int {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}
