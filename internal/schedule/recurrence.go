package schedule

import (
	"strings"
	"time"

	"github.com/classcal/classcal-backend/internal/types"
)

// Weekday synonym table: full names, three-letter abbreviations and the
// short forms syllabi actually use. Note "t" is Tuesday and "s" Saturday;
// Thursday and Sunday need their two-letter forms.
var weekdayNames = map[string]time.Weekday{
	"m": time.Monday, "mon": time.Monday, "monday": time.Monday,
	"t": time.Tuesday, "tue": time.Tuesday, "tuesday": time.Tuesday,
	"w": time.Wednesday, "wed": time.Wednesday, "wednesday": time.Wednesday,
	"th": time.Thursday, "thu": time.Thursday, "thursday": time.Thursday,
	"f": time.Friday, "fri": time.Friday, "friday": time.Friday,
	"s": time.Saturday, "sat": time.Saturday, "saturday": time.Saturday,
	"su": time.Sunday, "sun": time.Sunday, "sunday": time.Sunday,
}

// ResolveWeekday maps a weekday token to its weekday. Unrecognized tokens
// report no match rather than guessing.
func ResolveWeekday(day string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(day))]
	return wd, ok
}

// ExpandMeeting expands a weekly meeting into concrete start stamps within
// the inclusive term range. An unrecognized weekday, a missing start time or
// a missing term range all yield an empty expansion: partial syllabus data
// degrades the calendar, it does not error.
func ExpandMeeting(m types.Meeting, termStart, termEnd time.Time, hasTerm bool) []string {
	if !hasTerm {
		return nil
	}
	startTime := strings.TrimSpace(m.StartTime)
	if startTime == "" {
		return nil
	}
	wd, ok := ResolveWeekday(m.Day)
	if !ok {
		return nil
	}

	current := termStart
	for current.Weekday() != wd {
		current = current.AddDate(0, 0, 1)
	}

	var out []string
	for !current.After(termEnd) {
		out = append(out, current.Format(stampDate)+"T"+startTime)
		current = current.AddDate(0, 0, 7)
	}
	return out
}
