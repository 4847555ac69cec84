package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/classcal/classcal-backend/internal/types"
)

// Preferences are the user's scheduling constraints for AI study sessions.
type Preferences struct {
	StartHour       int
	EndHour         int
	AvoidWeekends   bool
	SessionsPerWeek int
}

// DefaultPreferences returns the stock working profile: 09..18, weekdays
// only, three sessions per week.
func DefaultPreferences() Preferences {
	return Preferences{StartHour: 9, EndHour: 18, AvoidWeekends: true, SessionsPerWeek: 3}
}

// RawSuggestion is one untrusted study session proposed by the AI planner.
type RawSuggestion struct {
	Title     string `json:"title"`
	ClassCode string `json:"class_code"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// ValidateSuggestions filters raw AI-proposed sessions down to the accepted
// subset. Stages apply in strict order and the first failing stage drops the
// suggestion silently:
//
//  1. required fields present
//  2. stale years lifted to the class's term year
//  3. start/end clamped into working hours
//  4. sessions ending at-or-before now, or with end not after start, dropped
//  5. weekend endpoints dropped when AvoidWeekends is set
//  6. sessions starting after the class's latest known deadline dropped
//  7. sessions overlapping an already-accepted session or any persisted
//     event dropped
//
// Accepted sessions come back as study/ai custom events carrying the owning
// class's display color. Nothing is persisted here; decisions are complete
// before the caller writes anything.
func ValidateSuggestions(
	raw []RawSuggestion,
	prefs Preferences,
	classes []*types.Class,
	existing []types.CustomEvent,
	now time.Time,
) []types.CustomEvent {
	termYears := make(map[string]int, len(classes))
	for _, c := range classes {
		termYears[c.Label()] = TermYear(c.Term, now.Year())
	}
	latest := LatestDeadlines(CollectDeadlines(classes, now))

	pool := append([]types.CustomEvent(nil), existing...)
	var accepted []types.CustomEvent

	for _, sug := range raw {
		if sug.Title == "" || sug.ClassCode == "" || sug.Start == "" || sug.End == "" {
			continue
		}
		termYear, known := termYears[sug.ClassCode]
		if !known {
			// Suggestion for a class the user doesn't have; nowhere to attach it.
			continue
		}

		start, okStart := ParseStamp(EnsureYear(sug.Start, termYear))
		end, okEnd := ParseStamp(EnsureYear(sug.End, termYear))
		if !okStart || !okEnd {
			continue
		}

		start, end = ClampToHours(start, end, prefs.StartHour, prefs.EndHour)

		if !end.After(now) {
			continue
		}
		if !end.After(start) {
			continue
		}
		if prefs.AvoidWeekends && (isWeekend(start) || isWeekend(end)) {
			continue
		}
		if deadline, ok := latest[sug.ClassCode]; ok && start.After(deadline) {
			continue
		}

		startStr := start.Format(stampSeconds)
		endStr := end.Format(stampSeconds)
		if ConflictsWithAny(startStr, endStr, pool) {
			continue
		}

		ev := types.CustomEvent{
			ID:        uuid.NewString(),
			Title:     sug.Title,
			Start:     startStr,
			End:       endStr,
			Type:      "study",
			Repeat:    "none",
			Color:     ClassColor(sug.ClassCode),
			TextColor: eventTextColor,
			DotColor:  DotColor("study"),
			Class:     sug.ClassCode,
			Origin:    "ai",
		}
		pool = append(pool, ev)
		accepted = append(accepted, ev)
	}

	return accepted
}

// ClampToHours pulls a session's start forward to the working-day start and
// its end back to the working-day end. It clamps rather than rejects.
func ClampToHours(start, end time.Time, startHour, endHour int) (time.Time, time.Time) {
	if start.Hour() < startHour {
		start = time.Date(start.Year(), start.Month(), start.Day(), startHour, 0, 0, 0, start.Location())
	}
	if end.Hour() > endHour || (end.Hour() == endHour && end.Minute() > 0) {
		end = time.Date(end.Year(), end.Month(), end.Day(), endHour, 0, 0, 0, end.Location())
	}
	return start, end
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
