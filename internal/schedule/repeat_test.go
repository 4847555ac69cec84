package schedule

import (
	"testing"
	"time"

	"github.com/classcal/classcal-backend/internal/types"
)

func TestExpandRepeatWeekly(t *testing.T) {
	base := types.CustomEvent{
		ID:     "base-id",
		Title:  "Office hours",
		Start:  "2025-09-01T10:00:00",
		End:    "2025-09-01T11:00:00",
		Type:   "custom",
		Repeat: "weekly",
	}
	got := ExpandRepeat(base)
	if len(got) != 8 {
		t.Fatalf("weekly expansion: want=8 got=%d", len(got))
	}
	if got[0].ID != "base-id" {
		t.Fatalf("base event id changed: %q", got[0].ID)
	}
	prev, _ := ParseStamp(got[0].Start)
	ids := map[string]bool{got[0].ID: true}
	for i := 1; i < len(got); i++ {
		cur, ok := ParseStamp(got[i].Start)
		if !ok {
			t.Fatalf("copy %d start unparseable: %q", i, got[i].Start)
		}
		if diff := cur.Sub(prev); diff != 7*24*time.Hour {
			t.Fatalf("copy %d spacing: want=168h got=%s", i, diff)
		}
		end, ok := ParseStamp(got[i].End)
		if !ok {
			t.Fatalf("copy %d end unparseable: %q", i, got[i].End)
		}
		if end.Sub(cur) != time.Hour {
			t.Fatalf("copy %d duration changed: %s", i, end.Sub(cur))
		}
		if got[i].Title != base.Title || got[i].Type != base.Type {
			t.Fatalf("copy %d fields not carried verbatim", i)
		}
		if ids[got[i].ID] {
			t.Fatalf("copy %d reuses id %q", i, got[i].ID)
		}
		ids[got[i].ID] = true
		prev = cur
	}
}

func TestExpandRepeatBiweekly(t *testing.T) {
	base := types.CustomEvent{ID: "b", Title: "Gym", Start: "2025-09-01T17:00:00", Repeat: "biweekly"}
	got := ExpandRepeat(base)
	if len(got) != 8 {
		t.Fatalf("biweekly expansion: want=8 got=%d", len(got))
	}
	first, _ := ParseStamp(got[0].Start)
	last, _ := ParseStamp(got[7].Start)
	if want := 7 * 14 * 24 * time.Hour; last.Sub(first) != want {
		t.Fatalf("biweekly span: want=%s got=%s", want, last.Sub(first))
	}
}

func TestExpandRepeatNoneAndUnknown(t *testing.T) {
	for _, policy := range []string{"", "none", "daily", "fortnightly"} {
		base := types.CustomEvent{ID: "x", Start: "2025-09-01T10:00:00", Repeat: policy}
		got := ExpandRepeat(base)
		if len(got) != 1 {
			t.Fatalf("policy %q: want=1 got=%d", policy, len(got))
		}
		if got[0] != base {
			t.Fatalf("policy %q: base event mutated", policy)
		}
	}
}

func TestExpandRepeatDateOnlyBase(t *testing.T) {
	base := types.CustomEvent{ID: "d", Start: "2025-09-01", Repeat: "weekly"}
	got := ExpandRepeat(base)
	if len(got) != 8 {
		t.Fatalf("date-only weekly expansion: want=8 got=%d", len(got))
	}
	second, ok := ParseStamp(got[1].Start)
	if !ok {
		t.Fatalf("second occurrence unparseable: %q", got[1].Start)
	}
	if second.Hour() != 9 || second.Minute() != 0 {
		t.Fatalf("date-only base should default to 09:00, got %02d:%02d", second.Hour(), second.Minute())
	}
}
