package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/classcal/classcal-backend/internal/types"
)

// Materialize builds the unified event timeline for a user's classes. It is
// a pure function of the stored class state: generated events (meetings,
// assignments, exams) are recomputed on every call with fresh ids, while
// persisted custom/ai events are emitted with their stored identity.
//
// Custom events are re-tagged with the *current* class label and colors so a
// class rename or recolor retroactively updates everything attached to it.
//
// Output is grouped by class and kind in production order; no global time
// sort is guaranteed.
func Materialize(classes []*types.Class, now time.Time) []types.MaterializedEvent {
	events := make([]types.MaterializedEvent, 0)

	for _, c := range classes {
		label := c.Label()
		color := ClassColor(label)
		termStart, termEnd, hasTerm := TermRange(c.Term, now)
		year := now.Year()
		if hasTerm {
			year = termStart.Year()
		}

		for _, a := range c.Assignments {
			raw := a.DueDate
			if raw == "" {
				raw = a.Start
			}
			if raw == "" {
				continue
			}
			title := a.Title
			if title == "" {
				title = "Assignment"
			}
			events = append(events, types.MaterializedEvent{
				ID:        uuid.NewString(),
				Title:     label + ": " + title,
				Start:     EnsureTimestamp(NormalizeDate(raw, year)),
				Type:      "assignment",
				Color:     color,
				DotColor:  DotColor("assignment"),
				TextColor: eventTextColor,
				Class:     label,
				Origin:    "generated",
			})
		}

		for _, e := range c.Exams {
			raw := e.Date
			if raw == "" {
				raw = e.Start
			}
			if raw == "" {
				continue
			}
			title := e.Title
			if title == "" {
				title = "Exam"
			}
			events = append(events, types.MaterializedEvent{
				ID:        uuid.NewString(),
				Title:     label + ": " + title,
				Start:     EnsureTimestamp(NormalizeDate(raw, year)),
				Type:      "exam",
				Color:     color,
				DotColor:  DotColor("exam"),
				TextColor: eventTextColor,
				Class:     label,
				Origin:    "generated",
			})
		}

		for _, m := range c.Meetings {
			meetingType := m.Type
			if meetingType == "" {
				meetingType = "Lecture"
			}
			location := m.Location
			if location == "" {
				location = "TBD"
			}
			for _, stamp := range ExpandMeeting(m, termStart, termEnd, hasTerm) {
				events = append(events, types.MaterializedEvent{
					ID:        uuid.NewString(),
					Title:     label + " " + meetingType + " @ " + location,
					Start:     EnsureTimestamp(stamp),
					Type:      "meeting",
					Color:     color,
					DotColor:  DotColor("lecture"),
					TextColor: eventTextColor,
					Class:     label,
					Origin:    "generated",
				})
			}
		}

		for _, ce := range c.CustomEvents {
			eventType := ce.Type
			if eventType == "" {
				eventType = "custom"
			}
			origin := ce.Origin
			if origin == "" {
				origin = "custom"
			}
			ev := types.MaterializedEvent{
				ID:        ce.ID,
				Title:     ce.Title,
				Start:     EnsureTimestamp(ce.Start),
				Type:      eventType,
				Repeat:    ce.Repeat,
				Color:     color,
				DotColor:  DotColor(eventType),
				TextColor: eventTextColor,
				Class:     label,
				Origin:    origin,
			}
			if ce.End != "" {
				ev.End = EnsureTimestamp(ce.End)
			}
			events = append(events, ev)
		}
	}

	return events
}
