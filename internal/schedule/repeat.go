package schedule

import (
	"github.com/google/uuid"

	"github.com/classcal/classcal-backend/internal/types"
)

const repeatOccurrences = 7 // future copies beyond the base event

// ExpandRepeat expands a custom event into its repeat series: the base plus
// seven further copies spaced 7 (weekly) or 14 (biweekly) days apart. Every
// copy gets a fresh id and shifted start/end; everything else is carried
// verbatim. Policies other than weekly/biweekly, and bases whose start
// cannot be parsed, yield just the base event.
func ExpandRepeat(base types.CustomEvent) []types.CustomEvent {
	events := []types.CustomEvent{base}

	var interval int
	switch base.Repeat {
	case "weekly":
		interval = 7
	case "biweekly":
		interval = 14
	default:
		return events
	}

	start, ok := ParseStamp(EnsureTimestamp(base.Start))
	if !ok {
		return events
	}
	for i := 1; i <= repeatOccurrences; i++ {
		next := base
		next.ID = uuid.NewString()
		next.Start = start.AddDate(0, 0, interval*i).Format(stampSeconds)
		if base.End != "" {
			if e, okEnd := ParseStamp(EnsureTimestamp(base.End)); okEnd {
				next.End = e.AddDate(0, 0, interval*i).Format(stampSeconds)
			}
		}
		events = append(events, next)
	}
	return events
}
