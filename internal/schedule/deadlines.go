package schedule

import (
	"time"

	"github.com/classcal/classcal-backend/internal/types"
)

// Deadline is an upcoming assignment or exam resolved to an absolute,
// year-corrected timestamp. Deadlines feed both the planner prompt and the
// latest-deadline bound of the validation pipeline.
type Deadline struct {
	Class string
	Kind  string
	Title string
	Date  string
}

// CollectDeadlines flattens every dated assignment and exam across the
// given classes. Entries without a date are skipped.
func CollectDeadlines(classes []*types.Class, now time.Time) []Deadline {
	var out []Deadline
	for _, c := range classes {
		label := c.Label()
		termYear := TermYear(c.Term, now.Year())
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
			out = append(out, Deadline{Class: label, Kind: "assignment", Title: title, Date: EnsureYear(raw, termYear)})
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
			out = append(out, Deadline{Class: label, Kind: "exam", Title: title, Date: EnsureYear(raw, termYear)})
		}
	}
	return out
}

// LatestDeadlines keeps the farthest-future deadline per class, the
// conservative bound past which study sessions make no sense.
func LatestDeadlines(deadlines []Deadline) map[string]time.Time {
	latest := make(map[string]time.Time)
	for _, d := range deadlines {
		t, ok := ParseStamp(d.Date)
		if !ok {
			continue
		}
		if cur, seen := latest[d.Class]; !seen || t.After(cur) {
			latest[d.Class] = t
		}
	}
	return latest
}
