package schedule

import (
	"testing"

	"github.com/classcal/classcal-backend/internal/types"
)

func plannerClasses() []*types.Class {
	return []*types.Class{
		{
			Code: "CS101",
			Term: "Fall 2025",
			Assignments: []types.Assignment{
				{Title: "Project 1", DueDate: "2025-12-01"},
			},
			Exams: []types.Exam{
				{Title: "Final", Date: "2025-12-10"},
			},
		},
		{
			Code: "MATH221",
			Term: "Fall 2025",
			Assignments: []types.Assignment{
				{Title: "Problem set", DueDate: "2025-10-15"},
			},
		},
	}
}

func suggestion(start, end string) RawSuggestion {
	return RawSuggestion{Title: "Study", ClassCode: "CS101", Start: start, End: end}
}

func TestValidateSuggestionsAccepts(t *testing.T) {
	now := testNow()
	got := ValidateSuggestions(
		[]RawSuggestion{suggestion("2025-09-02T10:00:00", "2025-09-02T11:00:00")},
		DefaultPreferences(), plannerClasses(), nil, now,
	)
	if len(got) != 1 {
		t.Fatalf("accepted count: want=1 got=%d", len(got))
	}
	ev := got[0]
	if ev.Type != "study" || ev.Origin != "ai" {
		t.Fatalf("accepted session tagged %s/%s, want study/ai", ev.Type, ev.Origin)
	}
	if ev.Color != ClassColor("CS101") {
		t.Fatalf("accepted session color=%q, want class color %q", ev.Color, ClassColor("CS101"))
	}
	if ev.DotColor != DotColor("study") {
		t.Fatalf("accepted session dotColor=%q", ev.DotColor)
	}
	if ev.Class != "CS101" {
		t.Fatalf("accepted session class=%q", ev.Class)
	}
	if ev.ID == "" {
		t.Fatalf("accepted session has no id")
	}
}

func TestValidateSuggestionsStageDrops(t *testing.T) {
	now := testNow()
	prefs := DefaultPreferences()
	classes := plannerClasses()

	cases := []struct {
		name string
		raw  RawSuggestion
	}{
		{name: "missing_title", raw: RawSuggestion{ClassCode: "CS101", Start: "2025-09-02T10:00:00", End: "2025-09-02T11:00:00"}},
		{name: "missing_class", raw: RawSuggestion{Title: "Study", Start: "2025-09-02T10:00:00", End: "2025-09-02T11:00:00"}},
		{name: "missing_start", raw: RawSuggestion{Title: "Study", ClassCode: "CS101", End: "2025-09-02T11:00:00"}},
		{name: "missing_end", raw: RawSuggestion{Title: "Study", ClassCode: "CS101", Start: "2025-09-02T10:00:00"}},
		{name: "unknown_class", raw: RawSuggestion{Title: "Study", ClassCode: "HIST400", Start: "2025-09-02T10:00:00", End: "2025-09-02T11:00:00"}},
		{name: "in_the_past", raw: suggestion("2025-08-01T10:00:00", "2025-08-01T11:00:00")},
		{name: "weekend_saturday", raw: suggestion("2025-09-06T10:00:00", "2025-09-06T11:00:00")},
		{name: "weekend_sunday", raw: suggestion("2025-09-07T10:00:00", "2025-09-07T11:00:00")},
		{name: "after_latest_deadline", raw: suggestion("2025-12-12T10:00:00", "2025-12-12T11:00:00")},
		{name: "unparseable_start", raw: suggestion("whenever", "2025-09-02T11:00:00")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateSuggestions([]RawSuggestion{tc.raw}, prefs, classes, nil, now)
			if len(got) != 0 {
				t.Fatalf("suggestion accepted, want dropped: %+v", got)
			}
		})
	}
}

func TestValidateSuggestionsYearCorrectionAndClamp(t *testing.T) {
	now := testNow()
	// Hallucinated 2023 dates on a Fall 2025 class: lifted to 2025, then the
	// 08:00 start clamps forward to 09:00.
	got := ValidateSuggestions(
		[]RawSuggestion{suggestion("2023-09-02T08:00:00", "2023-09-02T10:00:00")},
		DefaultPreferences(), plannerClasses(), nil, now,
	)
	if len(got) != 1 {
		t.Fatalf("accepted count: want=1 got=%d", len(got))
	}
	if got[0].Start != "2025-09-02T09:00:00" {
		t.Fatalf("start=%q, want year-corrected and clamped 2025-09-02T09:00:00", got[0].Start)
	}
	if got[0].End != "2025-09-02T10:00:00" {
		t.Fatalf("end=%q", got[0].End)
	}

	// Late end clamps back to 18:00.
	got = ValidateSuggestions(
		[]RawSuggestion{suggestion("2025-09-02T17:00:00", "2025-09-02T19:30:00")},
		DefaultPreferences(), plannerClasses(), nil, now,
	)
	if len(got) != 1 || got[0].End != "2025-09-02T18:00:00" {
		t.Fatalf("late end not clamped: %+v", got)
	}
}

func TestValidateSuggestionsInvertedIntervalDropped(t *testing.T) {
	// A stale-dated suggestion whose end precedes its start survives year
	// correction and clamping but must be dropped before acceptance.
	now := testNow()
	got := ValidateSuggestions(
		[]RawSuggestion{suggestion("2023-09-01T08:00:00", "2023-09-01T07:00:00")},
		DefaultPreferences(), plannerClasses(), nil, now,
	)
	if len(got) != 0 {
		t.Fatalf("inverted interval accepted: %+v", got)
	}
}

func TestValidateSuggestionsConflicts(t *testing.T) {
	now := testNow()
	existing := []types.CustomEvent{
		{ID: "busy", Start: "2025-09-02T10:00:00", End: "2025-09-02T12:00:00"},
	}

	// Conflicts with a persisted event.
	got := ValidateSuggestions(
		[]RawSuggestion{suggestion("2025-09-02T11:00:00", "2025-09-02T13:00:00")},
		DefaultPreferences(), plannerClasses(), existing, now,
	)
	if len(got) != 0 {
		t.Fatalf("conflicting suggestion accepted")
	}

	// Second suggestion conflicts with the first accepted one.
	got = ValidateSuggestions(
		[]RawSuggestion{
			suggestion("2025-09-02T13:00:00", "2025-09-02T14:00:00"),
			suggestion("2025-09-02T13:30:00", "2025-09-02T14:30:00"),
		},
		DefaultPreferences(), plannerClasses(), nil, now,
	)
	if len(got) != 1 {
		t.Fatalf("accepted count with internal conflict: want=1 got=%d", len(got))
	}
}

func TestValidateSuggestionsWeekendsAllowed(t *testing.T) {
	now := testNow()
	prefs := DefaultPreferences()
	prefs.AvoidWeekends = false
	got := ValidateSuggestions(
		[]RawSuggestion{suggestion("2025-09-06T10:00:00", "2025-09-06T11:00:00")},
		prefs, plannerClasses(), nil, now,
	)
	if len(got) != 1 {
		t.Fatalf("weekend session dropped despite AvoidWeekends=false")
	}
}

// Each filtering stage can only remove sessions: relaxing a constraint must
// never shrink the accepted set.
func TestValidateSuggestionsMonotonicFiltering(t *testing.T) {
	now := testNow()
	classes := plannerClasses()
	raw := []RawSuggestion{
		suggestion("2025-09-02T10:00:00", "2025-09-02T11:00:00"),
		suggestion("2025-09-06T10:00:00", "2025-09-06T11:00:00"), // Saturday
		suggestion("2025-09-02T07:00:00", "2025-09-02T08:00:00"), // clamps to empty interval
	}

	strict := DefaultPreferences()
	relaxed := strict
	relaxed.AvoidWeekends = false
	relaxed.StartHour = 0
	relaxed.EndHour = 23

	nStrict := len(ValidateSuggestions(raw, strict, classes, nil, now))
	nRelaxed := len(ValidateSuggestions(raw, relaxed, classes, nil, now))
	if nRelaxed < nStrict {
		t.Fatalf("relaxing constraints shrank acceptance: strict=%d relaxed=%d", nStrict, nRelaxed)
	}
}
