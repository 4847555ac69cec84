package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	stampSeconds = "2006-01-02T15:04:05"
	stampMinutes = "2006-01-02T15:04"
	stampDate    = "2006-01-02"

	// Date-only inputs are pinned to a default time-of-day rather than
	// midnight so they land inside normal waking hours on the calendar.
	defaultTimeOfDay = "09:00"
)

// NormalizeDate accepts "YYYY-MM-DD", "MM/DD" or a full ISO timestamp and
// returns "YYYY-MM-DD" (or better). Inputs it cannot improve are returned
// unchanged; this never fails. Bare "MM/DD" dates get defaultYear injected.
func NormalizeDate(raw string, defaultYear int) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}
	if strings.Contains(s, "T") {
		return s
	}
	if strings.Contains(s, "-") && len(s) >= 8 {
		return s
	}
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 2 {
			return raw
		}
		month, mErr := strconv.Atoi(strings.TrimSpace(parts[0]))
		day, dErr := strconv.Atoi(strings.TrimSpace(parts[1]))
		if mErr != nil || dErr != nil {
			return raw
		}
		return fmt.Sprintf("%04d-%02d-%02d", defaultYear, month, day)
	}
	return raw
}

// ParseStamp is the forgiving timestamp parse used throughout the engine.
// It accepts second precision, minute precision and bare dates, then falls
// back to the 16-character "YYYY-MM-DDTHH:MM" prefix for inputs carrying
// fractional seconds or timezone suffixes.
func ParseStamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{stampSeconds, stampMinutes, stampDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if len(s) > 16 {
		if t, err := time.Parse(stampMinutes, s[:16]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EnsureTimestamp canonicalizes a date or datetime string to a naive
// timestamp with at least minute precision. Datetime inputs are re-rendered
// at second precision; when they cannot be parsed the 16-character prefix is
// kept as a last resort. Date-only inputs get the default time-of-day
// appended. Empty input passes through.
func EnsureTimestamp(raw string) string {
	if raw == "" {
		return raw
	}
	s := strings.TrimSpace(raw)
	if strings.Contains(s, "T") {
		if t, ok := ParseStamp(s); ok {
			return t.Format(stampSeconds)
		}
		if len(s) > 16 {
			return s[:16]
		}
		return s
	}
	return s + "T" + defaultTimeOfDay
}

// EnsureYear canonicalizes a deadline or suggestion date and lifts any year
// numerically below fallbackYear up to it. Years are never moved backward,
// so a correctly dated future event is left alone while stale "last year"
// outputs land in the intended term.
func EnsureYear(raw string, fallbackYear int) string {
	if raw == "" {
		return raw
	}
	s := strings.TrimSpace(raw)
	if strings.Contains(s, "T") {
		t, ok := ParseStamp(s)
		if !ok {
			return s
		}
		if t.Year() < fallbackYear {
			t = time.Date(fallbackYear, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
		}
		return t.Format(stampSeconds)
	}
	if strings.Contains(s, "-") && len(s) >= 8 {
		parts := strings.SplitN(s, "-", 2)
		if y, err := strconv.Atoi(parts[0]); err == nil && y < fallbackYear {
			s = strconv.Itoa(fallbackYear) + "-" + parts[1]
		}
		return s + "T" + defaultTimeOfDay
	}
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 2 {
			month, mErr := strconv.Atoi(strings.TrimSpace(parts[0]))
			day, dErr := strconv.Atoi(strings.TrimSpace(parts[1]))
			if mErr == nil && dErr == nil {
				return fmt.Sprintf("%04d-%02d-%02dT%s", fallbackYear, month, day, defaultTimeOfDay)
			}
		}
	}
	return s + "T" + defaultTimeOfDay
}
